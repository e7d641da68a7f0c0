package mariaql_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/mariaql"
)

func TestJoin_Helpers(t *testing.T) {
	cond := mariaql.Raw("`a`.`id` = `b`.`id`")
	from := func() *mariaql.SelectStatement { return mariaql.Select().From("a") }

	tests := []struct {
		name string
		stmt *mariaql.SelectStatement
		want string
	}{
		{"plain", from().Join("b"), " JOIN `b`"},
		{"on", from().JoinOn("b", cond), " JOIN `b` ON `a`.`id` = `b`.`id`"},
		{"using", from().JoinUsing("b", "id", "v"), " JOIN `b` USING (`id`, `v`)"},
		{"inner on", from().InnerJoinOn("b", cond), " INNER JOIN `b` ON `a`.`id` = `b`.`id`"},
		{"inner using", from().InnerJoinUsing("b", "id"), " INNER JOIN `b` USING (`id`)"},
		{"cross", from().CrossJoin("b"), " CROSS JOIN `b`"},
		{"cross on", from().CrossJoinOn("b", cond), " CROSS JOIN `b` ON `a`.`id` = `b`.`id`"},
		{"cross using", from().CrossJoinUsing("b", "id"), " CROSS JOIN `b` USING (`id`)"},
		{"left on", from().LeftJoinOn("b", cond), " LEFT JOIN `b` ON `a`.`id` = `b`.`id`"},
		{"left using", from().LeftJoinUsing("b", "id"), " LEFT JOIN `b` USING (`id`)"},
		{"left outer on", from().LeftOuterJoinOn("b", cond), " LEFT OUTER JOIN `b` ON `a`.`id` = `b`.`id`"},
		{"left outer using", from().LeftOuterJoinUsing("b", "id"), " LEFT OUTER JOIN `b` USING (`id`)"},
		{"right on", from().RightJoinOn("b", cond), " RIGHT JOIN `b` ON `a`.`id` = `b`.`id`"},
		{"right using", from().RightJoinUsing("b", "id"), " RIGHT JOIN `b` USING (`id`)"},
		{"right outer on", from().RightOuterJoinOn("b", cond), " RIGHT OUTER JOIN `b` ON `a`.`id` = `b`.`id`"},
		{"right outer using", from().RightOuterJoinUsing("b", "id"), " RIGHT OUTER JOIN `b` USING (`id`)"},
		{"natural", from().NaturalJoin("b"), " NATURAL JOIN `b`"},
		{"natural left", from().NaturalLeftJoin("b"), " NATURAL LEFT JOIN `b`"},
		{"natural left outer", from().NaturalLeftOuterJoin("b"), " NATURAL LEFT OUTER JOIN `b`"},
		{"natural right", from().NaturalRightJoin("b"), " NATURAL RIGHT JOIN `b`"},
		{"natural right outer", from().NaturalRightOuterJoin("b"), " NATURAL RIGHT OUTER JOIN `b`"},
		{"subquery table", from().JoinOn(mariaql.As(mariaql.Sub(func(mariaql.Executor) (string, error) {
			return "SELECT `id` FROM `c`", nil
		}), "b"), cond), " JOIN (SELECT `id` FROM `c`) AS `b` ON `a`.`id` = `b`.`id`"},
		{"lower-case type", from().AddJoin(mariaql.Join{Table: "b", Type: "left outer", Clause: "using", Columns: []string{"id"}}), " LEFT OUTER JOIN `b` USING (`id`)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.stmt.Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if want := "SELECT\n *\n FROM `a`\n" + tt.want + "\n"; got != want {
				t.Errorf("SQL = %q, want %q", got, want)
			}
		})
	}
}

func TestJoin_Errors(t *testing.T) {
	cond := mariaql.Raw("1 = 1")
	tests := []struct {
		name string
		join mariaql.Join
		want error
	}{
		{"natural with using", mariaql.Join{Table: "b", Type: mariaql.NaturalLeftJoin, Clause: mariaql.Using, Columns: []string{"id"}}, mariaql.ErrNaturalJoinHasCondition},
		{"on without condition", mariaql.Join{Table: "b", Clause: mariaql.On}, mariaql.ErrInvalidConditionClause},
		{"on with columns", mariaql.Join{Table: "b", Clause: mariaql.On, Condition: cond, Columns: []string{"id"}}, mariaql.ErrInvalidConditionClause},
		{"using without columns", mariaql.Join{Table: "b", Clause: mariaql.Using}, mariaql.ErrInvalidConditionClause},
		{"using with condition", mariaql.Join{Table: "b", Clause: mariaql.Using, Condition: cond, Columns: []string{"id"}}, mariaql.ErrInvalidConditionClause},
		{"condition without clause", mariaql.Join{Table: "b", Condition: cond}, mariaql.ErrInvalidConditionClause},
		{"unknown clause", mariaql.Join{Table: "b", Clause: "WHEN", Condition: cond}, mariaql.ErrInvalidConditionClause},
		{"unknown type", mariaql.Join{Table: "b", Type: "OUTER"}, mariaql.ErrInvalidJoinType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mariaql.Select().From("a").AddJoin(tt.join).Render()
			if !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}
}

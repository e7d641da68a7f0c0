package mariaql_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/mariaql"
)

func TestDelete_Render(t *testing.T) {
	tests := []struct {
		name string
		stmt *mariaql.DeleteStatement
		want string
	}{
		{
			name: "basic",
			stmt: mariaql.DeleteFrom("sessions").WhereLessThan("expires", 1700000000),
			want: "DELETE\n FROM `sessions`\n WHERE `expires` < 1700000000\n",
		},
		{
			name: "options order limit",
			stmt: mariaql.DeleteFrom("log").Options(mariaql.DeleteQuick, mariaql.DeleteLowPriority).OrderBy("id").Limit(100),
			want: "DELETE\n QUICK LOW_PRIORITY\n FROM `log`\n ORDER BY `id`\n LIMIT 100\n",
		},
		{
			name: "multi table",
			stmt: mariaql.DeleteFrom("orders").
				Table("orders", "items").
				JoinUsing("items", "order_id").
				WhereEqual("orders.status", "void"),
			want: "DELETE\n `orders`, `items`\n FROM `orders`\n JOIN `items` USING (`order_id`)\n WHERE `orders`.`status` = 'void'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.stmt.Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDelete_Errors(t *testing.T) {
	if _, err := mariaql.DeleteFrom().Table("t").Render(); !errors.Is(err, mariaql.ErrMissingClause) {
		t.Errorf("Render() error = %v, want %v", err, mariaql.ErrMissingClause)
	}
	if _, err := mariaql.DeleteFrom("t").Options("HIGH_PRIORITY").Render(); !errors.Is(err, mariaql.ErrInvalidOption) {
		t.Errorf("Render() error = %v, want %v", err, mariaql.ErrInvalidOption)
	}
}

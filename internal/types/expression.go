package types

// Expression is a SQL fragment that may stand in place of an identifier or a
// literal value. The set of expressions is closed: Identifier, Raw, Literal,
// Subquery and Aliased.
type Expression interface {
	isExpression()
}

// Identifier is a table or column name that is protected when rendered.
type Identifier struct {
	Name string
}

// Raw is SQL text rendered verbatim. It bypasses quoting entirely.
type Raw struct {
	SQL string
}

// Literal is a scalar value rendered through the quoting primitive.
type Literal struct {
	Value any
}

// SubqueryFunc produces SQL text for a deferred expression. It is invoked once
// per render and must not mutate state reachable from the statement.
type SubqueryFunc func(ex Executor) (string, error)

// Subquery is a deferred expression rendered in parentheses.
type Subquery struct {
	Fn SubqueryFunc
}

// Aliased renders its expression followed by AS and the protected alias.
type Aliased struct {
	Expr  Expression
	Alias string
}

func (Identifier) isExpression() {}
func (Raw) isExpression()        {}
func (Literal) isExpression()    {}
func (Subquery) isExpression()   {}
func (Aliased) isExpression()    {}

// Renderer is anything that renders to a complete SQL statement.
type Renderer interface {
	Render() (string, error)
}

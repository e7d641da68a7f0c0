// Package clause renders the statement-agnostic SQL clauses shared by the
// MariaDB statements: WHERE/HAVING conditions, joins, ORDER BY/GROUP BY,
// SET assignments, VALUES rows, LIMIT and keyword options.
//
// Every renderer returns one or more clause lines. A line starts with a single
// space and carries no trailing newline; statements are responsible for
// joining lines. Renderers return "" when the clause is empty.
package clause

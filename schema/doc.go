// Package schema builds MariaDB data definition statements.
//
// Column and index definitions are closed sets: a column is one of the
// ColumnKind values and each kind declares the length arity and attributes it
// accepts; an index is one of the IndexKind values. Definitions are validated
// when the enclosing statement renders:
//
//	stmt := schema.CreateTable("users").
//		Column("id", schema.BigInt().Unsigned().AutoIncrement().PrimaryKey()).
//		Column("email", schema.Varchar(255).NotNull()).
//		Index(schema.UniqueKey("email").Name("users_email")).
//		Option(schema.OptionEngine, "InnoDB")
//
//	sql, err := stmt.Render()
//
// Table options are keyed by the TableOption enum and validated per option.
// ParseTableOption maps a MariaDB option name to its enum value.
package schema

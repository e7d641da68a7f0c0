package mariaql

import "github.com/zoobzio/mariaql/schema"

// DB starts statements bound to one executor.
type DB struct {
	ex Executor
}

// New returns a DB whose statements run on ex.
func New(ex Executor) *DB {
	return &DB{ex: ex}
}

// Executor returns the executor statements are bound to.
func (db *DB) Executor() Executor { return db.ex }

// Select starts a bound SELECT statement.
func (db *DB) Select(expressions ...any) *SelectStatement {
	return Select(expressions...).Bind(db.ex)
}

// InsertInto starts a bound INSERT statement.
func (db *DB) InsertInto(table any) *InsertStatement {
	return InsertInto(table).Bind(db.ex)
}

// ReplaceInto starts a bound REPLACE statement.
func (db *DB) ReplaceInto(table any) *ReplaceStatement {
	return ReplaceInto(table).Bind(db.ex)
}

// Update starts a bound UPDATE statement.
func (db *DB) Update(tables ...any) *UpdateStatement {
	return Update(tables...).Bind(db.ex)
}

// DeleteFrom starts a bound DELETE statement.
func (db *DB) DeleteFrom(tables ...any) *DeleteStatement {
	return DeleteFrom(tables...).Bind(db.ex)
}

// With starts a bound WITH statement.
func (db *DB) With() *WithStatement {
	return With().Bind(db.ex)
}

// CreateSchema starts a bound CREATE SCHEMA statement.
func (db *DB) CreateSchema(name string) *schema.CreateSchemaStatement {
	return schema.CreateSchema(name).Bind(db.ex)
}

// AlterSchema starts a bound ALTER SCHEMA statement.
func (db *DB) AlterSchema(name string) *schema.AlterSchemaStatement {
	return schema.AlterSchema(name).Bind(db.ex)
}

// DropSchema starts a bound DROP SCHEMA statement.
func (db *DB) DropSchema(name string) *schema.DropSchemaStatement {
	return schema.DropSchema(name).Bind(db.ex)
}

// CreateTable starts a bound CREATE TABLE statement.
func (db *DB) CreateTable(name string) *schema.CreateTableStatement {
	return schema.CreateTable(name).Bind(db.ex)
}

// AlterTable starts a bound ALTER TABLE statement.
func (db *DB) AlterTable(name string) *schema.AlterTableStatement {
	return schema.AlterTable(name).Bind(db.ex)
}

// DropTable starts a bound DROP TABLE statement.
func (db *DB) DropTable(tables ...string) *schema.DropTableStatement {
	return schema.DropTable(tables...).Bind(db.ex)
}

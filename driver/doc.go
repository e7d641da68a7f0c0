// Package driver executes rendered statements against MariaDB through
// database/sql and github.com/go-sql-driver/mysql.
//
// A Driver satisfies the Executor interface statements are bound to:
//
//	cfg, err := driver.ParseDSN("app:secret@tcp(127.0.0.1:3306)/app?parseTime=true")
//	if err != nil {
//		return err
//	}
//	drv, err := driver.Open(cfg, driver.WithSlowQueryLog(200*time.Millisecond))
//	if err != nil {
//		return err
//	}
//	defer drv.Close()
//
//	rows, err := mariaql.New(drv).Select().From("users").WhereEqual("id", 7).Query(ctx)
//
// Statements are sent as plain text; every literal has already been quoted by
// the builder.
package driver

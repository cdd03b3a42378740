package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite/compat"

	"github.com/hbacademy/hbtrack/dialect"
)

var Entry = &dialect.Entry{
	Usage:  "hbtrack sqlite3 :memory: OR <FILEPATH>",
	Driver: "sqlite3",
	SqlForTab: `
	select      'master' AS schema,name,rootpage,sql FROM sqlite_master
	where type = 'table'
	union all
	select 'temp_schema' AS schema,name,rootpage,sql FROM sqlite_temp_schema
	where type = 'temp_schema'`,
	SqlForDesc:  `PRAGMA table_info({table_name})`,
	PlaceHolder: &placeHolder{},
}

type placeHolder struct {
	values []any
}

func (ph *placeHolder) Make(v any) string {
	ph.values = append(ph.values, v)
	return fmt.Sprintf("$v%d", len(ph.values))
}

func (ph *placeHolder) Values() (result []any) {
	for i, v := range ph.values {
		result = append(result, sql.Named(fmt.Sprintf("v%d", i+1), v))
	}
	ph.values = ph.values[:0]
	return
}

func init() {
	dialect.Register("SQLITE3", Entry)
	dialect.Register("SQLITE", Entry)
}

package sqlserver

import (
	_ "github.com/microsoft/go-mssqldb"
	_ "github.com/microsoft/go-mssqldb/namedpipe"
	_ "github.com/microsoft/go-mssqldb/sharedmemory"

	"github.com/hbacademy/hbtrack/dialect"
)

var sqlServerSpec = &dialect.Entry{
	Usage: "hbtrack sqlserver://@<HOSTNAME>?database=<DBNAME>",
	SqlForDesc: `
	select c.column_id as "ID",
		   c.name as "NAME",
		   case
			 when c.max_length > 0 then
			   t.name + '(' + convert(varchar,c.max_length) + ')'
			 else
			   t.name
		   end as "TYPE",
		   case c.is_nullable
			 when 1 then 'NULL'
			 else 'NOT NULL'
		   end as "NULL?"
	  from sys.columns c,
		   sys.objects o,
		   sys.types t
	 where c.object_id = o.object_id
	   and o.name = @p1
	   and c.user_type_id = t.user_type_id
	 order by c.column_id`,
	SqlForTab:   `select * from sys.objects where type = 'U'`,
	PlaceHolder: &dialect.PlaceHolderName{Prefix: "@", Format: "p"},
}

func init() {
	dialect.Register("SQLSERVER", sqlServerSpec)
}

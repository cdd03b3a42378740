package oracle

import (
	_ "github.com/sijms/go-ora/v2"

	"github.com/hbacademy/hbtrack/dialect"
)

var oracleSpec = &dialect.Entry{
	Usage: "hbtrack oracle://<USERNAME>:<PASSWORD>@<HOSTNAME>:<PORT>/<SERVICE>",
	SqlForDesc: `
  select column_id as "ID",
		 column_name as "NAME",
		 case
		   when data_type = 'NUMBER' then data_type
		   when data_type = 'DATE' then data_type
		   when data_type like 'TIMESTAMP%' then data_type
		   else data_type || '(' || data_length || ')'
		 end as "TYPE",
		 case
		   when nullable = 'Y' THEN 'NULL'
		   else 'NOT NULL'
		 end as "NULL?"
	from all_tab_columns
   where table_name = UPPER(:1)
   order by column_id`,
	SqlForTab:   `select * from tab where tname not like 'BIN$%'`,
	PlaceHolder: &dialect.PlaceHolderName{Prefix: ":", Format: "p"},
}

func init() {
	dialect.Register("ORACLE", oracleSpec)
}

package hbtrack

import (
	_ "github.com/hbacademy/hbtrack/dialect/mysql"
	_ "github.com/hbacademy/hbtrack/dialect/oracle"
	_ "github.com/hbacademy/hbtrack/dialect/postgres"
	_ "github.com/hbacademy/hbtrack/dialect/sqlite"
	_ "github.com/hbacademy/hbtrack/dialect/sqlserver"
)

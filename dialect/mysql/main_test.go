package mysql

import (
	"strings"
	"testing"
)

func TestDSNFilter(t *testing.T) {
	dsn, err := mySQLDSNFilter("jane:pw@/tracker")
	if err != nil {
		t.Fatal(err.Error())
	}
	if !strings.HasPrefix(dsn, "jane:pw@/tracker?") {
		t.Errorf("base DSN damaged: %q", dsn)
	}
	for _, expect := range []string{"parseTime=true", "loc=Local"} {
		if !strings.Contains(dsn, expect) {
			t.Errorf("%q: not found in %q", expect, dsn)
		}
	}

	dsn, err = mySQLDSNFilter("jane:pw@/tracker?parseTime=false")
	if err != nil {
		t.Fatal(err.Error())
	}
	if strings.Contains(dsn, "parseTime=true") {
		t.Errorf("explicit parseTime must not be overridden: %q", dsn)
	}
}

package hbtrack

import (
	"path/filepath"
	"strings"
	"testing"
)

// Drives the interactive editor with the autopilot tty, the way a user
// would type at the prompt.
func TestInteractiveAutoPilot(t *testing.T) {
	restoreColor := disableColor()
	defer restoreColor()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "tracker.db")
	createSchema(t, dbPath)

	spoolPath := filepath.Join(tmpDir, "output.lst")
	cfg := New()
	cfg.Auto = "spool " + spoolPath + "|" +
		"new_student Jane Hacker jhacks|" +
		"student jhacks|" +
		"history|" +
		"spool off|" +
		"quit|"

	if err := cfg.Run("sqlite3", dbPath, mustDialect(t, "sqlite3")); err != nil {
		t.Fatal(err.Error())
	}

	output := readSpool(t, spoolPath)
	for _, expect := range []string{
		"Successfully added Jane Hacker.",
		"Student: Jane Hacker",
		"GitHub account: jhacks",
		"new_student Jane Hacker jhacks", // history output
	} {
		if !strings.Contains(output, expect) {
			t.Errorf("%q: not found in spool output:\n%s", expect, output)
		}
	}
	for _, reject := range []string{"# spool", "# quit"} {
		if strings.Contains(output, reject) {
			t.Errorf("%q: must not be echoed into the spool:\n%s", reject, output)
		}
	}
	if !strings.Contains(output, "# new_student") {
		t.Errorf("command echo missing from spool output:\n%s", output)
	}
}

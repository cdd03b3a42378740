package hbtrack

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hbacademy/hbtrack/internal/misc"
)

type commandIn interface {
	// Read returns the next command line. It may return a final line
	// together with io.EOF.
	Read(context.Context) (string, error)
	ShouldRecordHistory() bool
	OnErrorAbort() bool
}

// Loop reads command lines until the quit token or end of input. The
// first whitespace-delimited field selects the command; everything
// else is passed to the handler unparsed.
func (ss *session) Loop(ctx context.Context, commandIn commandIn) error {
	for {
		if ss.spool != nil {
			fmt.Fprintf(ss.termErr, "Spooling to '%s' now\n", ss.spool.Name())
		}
		line, err := commandIn.Read(ctx)
		if err != nil && err != io.EOF {
			return err
		}
		atEOF := err == io.EOF

		line = strings.TrimSpace(line)
		if line == "" {
			if atEOF {
				return nil
			}
			continue
		}
		if commandIn.ShouldRecordHistory() {
			ss.history.Add(line)
		}
		cmd, arg := misc.CutField(line)
		cmdLower := strings.ToLower(cmd)

		// Loop control and spool management do not belong in the
		// transcript itself.
		switch cmdLower {
		case "spool", "start", "host", "rem", "exit", "quit":
		default:
			misc.Echo(ss.spool, line)
		}

		var cmdErr error
		switch cmdLower {
		case "student":
			cmdErr = ss.doStudent(ctx, arg)
		case "new_student":
			cmdErr = ss.doNewStudent(ctx, arg)
		case "project":
			cmdErr = ss.doProject(ctx, arg)
		case "grade":
			cmdErr = ss.doGrade(ctx, arg)
		case "assign_grade":
			cmdErr = ss.doAssignGrade(ctx, arg)
		case "students":
			cmdErr = ss.doStudents(ctx)
		case "projects":
			cmdErr = ss.doProjects(ctx)
		case "grades":
			cmdErr = ss.doGrades(ctx)
		case "tables":
			cmdErr = ss.doTables(ctx)
		case "desc", `\d`:
			cmdErr = ss.doDesc(ctx, arg)
		case "history":
			cmdErr = ss.doHistory()
		case "spool":
			ss.doSpool(arg)
		case "start":
			fname, _ := misc.CutField(arg)
			cmdErr = ss.Start(ctx, fname)
		case "host":
			cmdErr = ss.doHost(arg)
		case "rem":
			// comment line
		case "exit", "quit":
			return nil
		default:
			fmt.Fprintln(ss.stdOut, "Invalid Entry. Try again.")
		}
		if cmdErr != nil {
			fmt.Fprintln(ss.stdErr, cmdErr.Error())
			if commandIn.OnErrorAbort() {
				return cmdErr
			}
		}
		if atEOF {
			return nil
		}
	}
}

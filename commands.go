package hbtrack

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hymkor/go-shellcommand"

	"github.com/hbacademy/hbtrack/internal/lftocrlf"
	"github.com/hbacademy/hbtrack/internal/misc"
)

func (ss *session) doStudent(ctx context.Context, args string) error {
	github, _ := misc.CutField(args)
	if github == "" {
		return errors.New("student: requires <github>")
	}
	student, err := ss.store.StudentByGitHub(ctx, github)
	if err != nil {
		return err
	}
	fmt.Fprintf(ss.stdOut, "Student: %s %s\nGitHub account: %s\n",
		student.FirstName, student.LastName, student.GitHub)
	return nil
}

func (ss *session) doNewStudent(ctx context.Context, args string) error {
	firstName, rest := misc.CutField(args)
	lastName, rest := misc.CutField(rest)
	github, _ := misc.CutField(rest)
	if firstName == "" || lastName == "" || github == "" {
		return errors.New("new_student: requires <first> <last> <github>")
	}
	if err := ss.store.CreateStudent(ctx, firstName, lastName, github); err != nil {
		return err
	}
	fmt.Fprintf(ss.stdOut, "Successfully added %s %s.\n", firstName, lastName)
	return nil
}

func (ss *session) doProject(ctx context.Context, args string) error {
	title, _ := misc.CutField(args)
	if title == "" {
		return errors.New("project: requires <title>")
	}
	project, err := ss.store.ProjectByTitle(ctx, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(ss.stdOut, "%s: %s\nMax grade: %d\n",
		project.Title, project.Description, project.MaxGrade)
	return nil
}

func (ss *session) doGrade(ctx context.Context, args string) error {
	github, rest := misc.CutField(args)
	title, _ := misc.CutField(rest)
	if github == "" || title == "" {
		return errors.New("grade: requires <github> <title>")
	}
	grade, err := ss.store.GradeByGitHubAndTitle(ctx, github, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(ss.stdOut, "%s %s's %s project received %d points\n",
		grade.FirstName, grade.LastName, title, grade.Points)
	return nil
}

func (ss *session) doAssignGrade(ctx context.Context, args string) error {
	github, rest := misc.CutField(args)
	title, rest := misc.CutField(rest)
	pointsStr, _ := misc.CutField(rest)
	if github == "" || title == "" || pointsStr == "" {
		return errors.New("assign_grade: requires <github> <title> <points>")
	}
	points, err := strconv.Atoi(pointsStr)
	if err != nil {
		return fmt.Errorf("assign_grade: %q is not an integer grade", pointsStr)
	}
	if err := ss.store.AssignGrade(ctx, github, title, points); err != nil {
		return err
	}
	fmt.Fprintf(ss.stdOut, "Successfully graded %s's %s project %d points.\n",
		github, title, points)
	return nil
}

func (ss *session) doStudents(ctx context.Context) error {
	rows, err := ss.store.Students(ctx)
	return ss.dumpQuery(ctx, rows, err)
}

func (ss *session) doProjects(ctx context.Context) error {
	rows, err := ss.store.Projects(ctx)
	return ss.dumpQuery(ctx, rows, err)
}

func (ss *session) doGrades(ctx context.Context) error {
	rows, err := ss.store.Grades(ctx)
	return ss.dumpQuery(ctx, rows, err)
}

func (ss *session) doTables(ctx context.Context) error {
	if ss.Dialect.SqlForTab == "" {
		return fmt.Errorf("tables: %w", ErrNotSupported)
	}
	if ss.debug {
		fmt.Fprintln(ss.termErr, ss.Dialect.SqlForTab)
	}
	rows, err := ss.conn.QueryContext(ctx, ss.Dialect.SqlForTab)
	return ss.dumpQuery(ctx, rows, err)
}

func (ss *session) doDesc(ctx context.Context, args string) error {
	tableName, _ := misc.CutField(args)
	if tableName == "" {
		return ss.doTables(ctx)
	}
	if ss.Dialect.SqlForDesc == "" {
		return fmt.Errorf("desc: %w", ErrNotSupported)
	}
	query := ss.Dialect.SqlForDesc
	var arguments []any
	if strings.Contains(query, "{table_name}") {
		query = strings.ReplaceAll(query, "{table_name}", tableName)
	} else {
		arguments = append(arguments, tableName)
	}
	if ss.debug {
		fmt.Fprintln(ss.termErr, query)
	}
	rows, err := ss.conn.QueryContext(ctx, query, arguments...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	_rows, ok := rowsHasNext(rows)
	if !ok {
		return fmt.Errorf("%s: table not found", tableName)
	}
	return ss.RowToCsv.Dump(ctx, _rows, ss.stdOut)
}

func (ss *session) doHistory() error {
	csvw := csv.NewWriter(ss.stdOut)
	for i, end := 0, ss.history.Len(); i < end; i++ {
		text, stamp := ss.history.TextAndStamp(i)
		csvw.Write([]string{
			strconv.Itoa(i),
			stamp.Local().Format(time.DateTime),
			text})
	}
	csvw.Flush()
	return csvw.Error()
}

func (ss *session) openedSpool(fd lftocrlf.WriteNameCloser) {
	if ss.crlf {
		ss.spool = lftocrlf.New(fd)
	} else {
		ss.spool = fd
	}
	ss.stdOut = io.MultiWriter(ss.termOut, ss.spool)
	ss.stdErr = io.MultiWriter(ss.termErr, ss.spool)
	WriteSignature(ss.spool)
}

func (ss *session) doSpool(arg string) {
	fname, _ := misc.CutField(arg)
	if fname == "" {
		if ss.spool != nil {
			fmt.Fprintf(ss.termErr, "Spooling to '%s' now\n", ss.spool.Name())
		} else {
			fmt.Fprintln(ss.termErr, "Not Spooling")
		}
		return
	}
	if ss.spool != nil {
		ss.spool.Close()
		fmt.Fprintln(ss.termErr, "Spool closed.")
		ss.spool = nil
		ss.stdOut = ss.termOut
		ss.stdErr = ss.termErr
	}
	if !strings.EqualFold(fname, "off") {
		if fd, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			ss.openedSpool(fd)
			fmt.Fprintf(ss.termErr, "Spool to %s\n", fname)
		}
	}
}

func (ss *session) doHost(arg string) error {
	process, err := shellcommand.System(arg)
	if err != nil {
		return fmt.Errorf("host: %w", err)
	}
	process.Wait()
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/hbacademy/hbtrack/dialect/sqlite"
)

var schema = []string{
	`CREATE TABLE students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name VARCHAR(30),
		last_name VARCHAR(30),
		github VARCHAR(30))`,
	`CREATE TABLE projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title VARCHAR(30),
		description TEXT,
		max_grade INTEGER)`,
	`CREATE TABLE grades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_github VARCHAR(30),
		project_title VARCHAR(30),
		grade INTEGER)`,
}

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err.Error())
	}
	t.Cleanup(func() { conn.Close() })
	for _, ddl := range schema {
		if _, err := conn.Exec(ddl); err != nil {
			t.Fatal(err.Error())
		}
	}
	return New(conn, sqlite.Entry), conn
}

func TestCreateAndFindStudent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateStudent(ctx, "Jane", "Hacker", "jhacks"); err != nil {
		t.Fatal(err.Error())
	}
	student, err := s.StudentByGitHub(ctx, "jhacks")
	if err != nil {
		t.Fatal(err.Error())
	}
	if student.FirstName != "Jane" || student.LastName != "Hacker" || student.GitHub != "jhacks" {
		t.Fatalf("unexpected student: %#v", student)
	}
}

func TestStudentNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.StudentByGitHub(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound, but %v", err)
	}
}

func TestProjectByTitle(t *testing.T) {
	s, conn := newTestStore(t)
	ctx := context.Background()

	_, err := conn.Exec(`INSERT INTO projects (title, description, max_grade)
		VALUES ('Markdown Challenge', 'Write a file in markdown', 100)`)
	if err != nil {
		t.Fatal(err.Error())
	}
	project, err := s.ProjectByTitle(ctx, "Markdown Challenge")
	if err != nil {
		t.Fatal(err.Error())
	}
	if project.Description != "Write a file in markdown" || project.MaxGrade != 100 {
		t.Fatalf("unexpected project: %#v", project)
	}

	if _, err := s.ProjectByTitle(ctx, "No Such Project"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound, but %v", err)
	}
}

func TestAssignAndLookupGrade(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateStudent(ctx, "Jane", "Hacker", "jhacks"); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.AssignGrade(ctx, "jhacks", "Markdown Challenge", 98); err != nil {
		t.Fatal(err.Error())
	}
	grade, err := s.GradeByGitHubAndTitle(ctx, "jhacks", "Markdown Challenge")
	if err != nil {
		t.Fatal(err.Error())
	}
	if grade.FirstName != "Jane" || grade.LastName != "Hacker" || grade.Points != 98 {
		t.Fatalf("unexpected grade: %#v", grade)
	}
}

// An existing but ungraded student must come back as not found: the
// WHERE clause re-filters the left join on the grades columns.
func TestUngradedStudentIsNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateStudent(ctx, "Jane", "Hacker", "jhacks"); err != nil {
		t.Fatal(err.Error())
	}
	_, err := s.GradeByGitHubAndTitle(ctx, "jhacks", "Markdown Challenge")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound, but %v", err)
	}
}

// Duplicate grades are inserted as additional rows; the lookup keeps
// returning the first row.
func TestDuplicateGradeKeepsFirstRow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateStudent(ctx, "Jane", "Hacker", "jhacks"); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.AssignGrade(ctx, "jhacks", "Markdown Challenge", 98); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.AssignGrade(ctx, "jhacks", "Markdown Challenge", 50); err != nil {
		t.Fatal(err.Error())
	}
	grade, err := s.GradeByGitHubAndTitle(ctx, "jhacks", "Markdown Challenge")
	if err != nil {
		t.Fatal(err.Error())
	}
	if grade.Points != 98 {
		t.Fatalf("expect the first inserted grade 98, but %d", grade.Points)
	}
}

func TestStudentsListing(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, st := range [][3]string{
		{"Jane", "Hacker", "jhacks"},
		{"Sarah", "Developer", "sdevelops"},
	} {
		if err := s.CreateStudent(ctx, st[0], st[1], st[2]); err != nil {
			t.Fatal(err.Error())
		}
	}
	rows, err := s.Students(ctx)
	if err != nil {
		t.Fatal(err.Error())
	}
	defer rows.Close()
	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err.Error())
	}
	if count != 2 {
		t.Fatalf("expect 2 students, but %d", count)
	}
}

// Package store holds the record accessors for the project-tracker
// schema: students, projects, and the grades students received on
// projects. Each accessor issues a single parameterized statement
// through the dialect's placeholder style.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/hbacademy/hbtrack/dialect"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("no matching record")

// Student is a row of the students table.
type Student struct {
	FirstName string
	LastName  string
	GitHub    string
}

// Project is a row of the projects table.
type Project struct {
	Title       string
	Description string
	MaxGrade    int
}

// Grade is the result of the grade lookup: the student's name joined
// with the points they received on one project.
type Grade struct {
	FirstName string
	LastName  string
	Points    int
}

// Store runs the accessors on an injected connection. Debug, when not
// nil, receives each statement before it is issued.
type Store struct {
	conn    *sql.DB
	dialect *dialect.Entry
	Debug   io.Writer
}

func New(conn *sql.DB, d *dialect.Entry) *Store {
	return &Store{conn: conn, dialect: d}
}

func (s *Store) trace(query string) {
	if s.Debug != nil {
		fmt.Fprintln(s.Debug, query)
	}
}

// StudentByGitHub looks one student up by GitHub account name. When
// more than one row matches, the first row wins.
func (s *Store) StudentByGitHub(ctx context.Context, github string) (*Student, error) {
	ph := s.dialect.PlaceHolder
	query := `SELECT first_name, last_name, github FROM students WHERE github = ` + ph.Make(github)
	s.trace(query)

	student := &Student{}
	err := s.conn.QueryRowContext(ctx, query, ph.Values()...).
		Scan(&student.FirstName, &student.LastName, &student.GitHub)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student %q: %w", github, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	return student, nil
}

// CreateStudent inserts one student row. No uniqueness pre-check: a
// duplicate GitHub account is left to the datastore's constraints.
func (s *Store) CreateStudent(ctx context.Context, firstName, lastName, github string) error {
	ph := s.dialect.PlaceHolder
	query := `INSERT INTO students (first_name, last_name, github) VALUES (` +
		ph.Make(firstName) + `, ` + ph.Make(lastName) + `, ` + ph.Make(github) + `)`
	s.trace(query)

	if _, err := s.conn.ExecContext(ctx, query, ph.Values()...); err != nil {
		return fmt.Errorf("insert students: %w", err)
	}
	return nil
}

// ProjectByTitle looks one project up by its title.
func (s *Store) ProjectByTitle(ctx context.Context, title string) (*Project, error) {
	ph := s.dialect.PlaceHolder
	query := `SELECT title, description, max_grade FROM projects WHERE title = ` + ph.Make(title)
	s.trace(query)

	project := &Project{}
	err := s.conn.QueryRowContext(ctx, query, ph.Values()...).
		Scan(&project.Title, &project.Description, &project.MaxGrade)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %q: %w", title, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	return project, nil
}

// GradeByGitHubAndTitle reports the points a student received on one
// project. The left join is re-filtered on the grades columns in WHERE,
// so an ungraded student yields no row, not a null-grade row. When the
// same pair was graded more than once, the earliest inserted row wins.
func (s *Store) GradeByGitHubAndTitle(ctx context.Context, github, title string) (*Grade, error) {
	ph := s.dialect.PlaceHolder
	query := `SELECT first_name, last_name, grade` +
		` FROM students` +
		` LEFT JOIN grades ON (grades.student_github = students.github)` +
		` WHERE grades.project_title = ` + ph.Make(title) +
		` AND grades.student_github = ` + ph.Make(github) +
		` ORDER BY grades.id`
	s.trace(query)

	grade := &Grade{}
	err := s.conn.QueryRowContext(ctx, query, ph.Values()...).
		Scan(&grade.FirstName, &grade.LastName, &grade.Points)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("grade for %q on %q: %w", github, title, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query grades: %w", err)
	}
	return grade, nil
}

// AssignGrade inserts one grade row. Neither the student nor the
// project is checked for existence, and repeated calls insert
// additional rows for the same pair.
func (s *Store) AssignGrade(ctx context.Context, github, title string, points int) error {
	ph := s.dialect.PlaceHolder
	query := `INSERT INTO grades (student_github, project_title, grade) VALUES (` +
		ph.Make(github) + `, ` + ph.Make(title) + `, ` + ph.Make(points) + `)`
	s.trace(query)

	if _, err := s.conn.ExecContext(ctx, query, ph.Values()...); err != nil {
		return fmt.Errorf("insert grades: %w", err)
	}
	return nil
}

// Students returns all student rows in id order.
func (s *Store) Students(ctx context.Context) (*sql.Rows, error) {
	query := `SELECT id, first_name, last_name, github FROM students ORDER BY id`
	s.trace(query)
	return s.conn.QueryContext(ctx, query)
}

// Projects returns all project rows in id order.
func (s *Store) Projects(ctx context.Context) (*sql.Rows, error) {
	query := `SELECT id, title, description, max_grade FROM projects ORDER BY id`
	s.trace(query)
	return s.conn.QueryContext(ctx, query)
}

// Grades returns all grade rows in id order.
func (s *Store) Grades(ctx context.Context) (*sql.Rows, error) {
	query := `SELECT id, student_github, project_title, grade FROM grades ORDER BY id`
	s.trace(query)
	return s.conn.QueryContext(ctx, query)
}

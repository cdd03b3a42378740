package hbtrack

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hymkor/struct2flag"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"

	"github.com/hbacademy/hbtrack/dialect"
	"github.com/hbacademy/hbtrack/internal/history"
	"github.com/hbacademy/hbtrack/internal/lftocrlf"
	"github.com/hbacademy/hbtrack/store"
)

var version = "dev"

// defaultDataSource is the datasource used when no driver/DSN argument
// is given: the class project-tracker database on the local postgres.
const defaultDataSource = "postgresql:///project-tracker"

var (
	ErrNoDataFound  = errors.New("data not found")
	ErrNotSupported = errors.New("not supported")
)

type Config struct {
	Auto           string `flag:"auto,feed this key sequence to the line editor (for tests)"`
	Script         string `flag:"f,execute the commands in the file and exit"`
	SpoolFilename  string `flag:"spool,begin spooling to the file on startup"`
	Null           string `flag:"null,visible string for NULL in CSV output"`
	FieldSeperator string `flag:"fs,field separator for CSV output"`
	Tsv            bool   `flag:"tsv,use TAB as the field separator"`
	CrLf           bool   `flag:"crlf,write CRLF line endings into spool files"`
	Debug          bool   `flag:"debug,echo issued SQL to stderr"`
}

func New() *Config {
	return &Config{
		Null:           "<NULL>",
		FieldSeperator: ",",
	}
}

// NewConfigFromFlag binds the config to the default flag set. Call the
// returned function after flag.Parse to obtain the parsed config.
func NewConfigFromFlag() func() *Config {
	cfg := New()
	struct2flag.BindDefault(cfg)
	return func() *Config { return cfg }
}

func WriteSignature(w io.Writer) {
	fmt.Fprintf(w, "hbtrack %s-%s-%s by %s\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func Usage() {
	w := os.Stdout
	fmt.Fprintln(w, "Usage: hbtrack [OPTIONS] {DRIVERNAME DSN | DSN}")
	fmt.Fprintf(w, "  (default datasource: %s)\n", defaultDataSource)
	fmt.Fprintln(w)
	seen := map[*dialect.Entry]struct{}{}
	dialect.Each(func(name string, entry *dialect.Entry) bool {
		if _, ok := seen[entry]; !ok {
			seen[entry] = struct{}{}
			fmt.Fprintf(w, "  %s\n", entry.Usage)
		}
		return true
	})
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  student <github>                        - show the student's name")
	fmt.Fprintln(w, "  new_student <first> <last> <github>     - register a student")
	fmt.Fprintln(w, "  project <title>                         - show a project and its max grade")
	fmt.Fprintln(w, "  grade <github> <title>                  - show the grade a student received")
	fmt.Fprintln(w, "  assign_grade <github> <title> <points>  - record a grade")
	fmt.Fprintln(w, "  students / projects / grades            - dump a table as CSV")
	fmt.Fprintln(w, "  tables / desc <table>                   - datastore metadata")
	fmt.Fprintln(w, "  history / spool <file> / start <file> / host <cmdline> / rem")
	fmt.Fprintln(w, "  quit")
	fmt.Fprintln(w)
	flag.PrintDefaults()
}

type session struct {
	RowToCsv
	Dialect *dialect.Entry
	conn    *sql.DB
	store   *store.Store
	history *history.History
	spool   lftocrlf.WriteNameCloser

	stdOut, termOut io.Writer
	stdErr, termErr io.Writer

	auto  string
	crlf  bool
	debug bool
}

func (ss *session) Close() {
	if ss.spool != nil {
		ss.spool.Close()
		ss.spool = nil
		ss.stdOut = ss.termOut
		ss.stdErr = ss.termErr
	}
}

func (cfg *Config) Run(driver, dataSourceName string, dbDialect *dialect.Entry) error {
	disabler := colorable.EnableColorsStdout(nil)
	defer disabler()
	termOut := colorable.NewColorableStdout()
	termErr := colorable.NewColorableStderr()

	conn, err := sql.Open(driver, dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		return err
	}

	var spool lftocrlf.WriteNameCloser
	if fn := cfg.SpoolFilename; fn != "" &&
		!strings.EqualFold(fn, os.DevNull) &&
		!strings.EqualFold(fn, "off") {

		fd, err := os.OpenFile(fn, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		} else {
			spool = fd
		}
	}

	var history history.History

	ss := &session{
		Dialect: dbDialect,
		conn:    conn,
		store:   store.New(conn, dbDialect),
		history: &history,
		stdOut:  termOut,
		termOut: termOut,
		stdErr:  termErr,
		termErr: termErr,
		auto:    cfg.Auto,
		crlf:    cfg.CrLf,
		debug:   cfg.Debug,
	}
	defer ss.Close()

	if spool != nil {
		ss.openedSpool(spool)
	}
	if cfg.Debug {
		ss.store.Debug = termErr
	}

	ss.RowToCsv.Null = cfg.Null
	ss.RowToCsv.TimeLayout = time.DateTime
	if cfg.Tsv {
		ss.RowToCsv.Comma = '\t'
	} else {
		ss.RowToCsv.Comma, _ = utf8.DecodeRuneInString(cfg.FieldSeperator)
	}

	ctx := context.Background()
	if cfg.Script != "" {
		return ss.Start(ctx, cfg.Script)
	}
	if cfg.Auto == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		return ss.StartFromStdin(ctx)
	}
	return ss.Loop(ctx, ss.newInteractiveIn())
}

// Main connects using the argument list (driver name and/or DSN) and
// enters the command loop.
func (cfg *Config) Main(args []string) error {
	if len(args) <= 0 {
		args = []string{defaultDataSource}
	}
	d, err := dialect.ReadDBInfoFromArgs(args)
	if err != nil {
		return err
	}
	return cfg.Run(d.Driver, d.DataSource, d.Dialect)
}

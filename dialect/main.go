package dialect

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PlaceHolder builds driver-specific bind markers. Make records the value
// and returns the marker text; Values drains the recorded values in order.
type PlaceHolder interface {
	Make(any) string
	Values() []any
}

type Entry struct {
	Usage       string
	Driver      string // name registered with database/sql, when it differs from the dialect name
	SqlForDesc  string
	SqlForTab   string
	PlaceHolder PlaceHolder
	DSNFilter   func(string) (string, error)
}

var registry = map[string]*Entry{}

func Register(name string, setting *Entry) {
	registry[strings.ToUpper(name)] = setting
}

func Find(name string) (*Entry, bool) {
	r, ok := registry[strings.ToUpper(name)]
	return r, ok
}

func Each(yield func(string, *Entry) bool) {
	for key, val := range registry {
		if !yield(key, val) {
			break
		}
	}
}

func findFromArgs(args []string) (*Entry, []string, error) {
	if len(args) <= 0 {
		return nil, nil, errors.New("too few arguments")
	}
	entry, ok := Find(args[0])
	if ok {
		if len(args) < 2 {
			return nil, nil, errors.New("DSN String is not specified")
		}
		return entry, []string{args[0], strings.Join(args[1:], " ")}, nil
	}
	scheme, _, ok := strings.Cut(args[0], ":")
	if ok {
		entry, ok = Find(scheme)
		if ok {
			return entry, []string{scheme, strings.Join(args, " ")}, nil
		}
	}
	return nil, nil, fmt.Errorf("support driver not found: %s", args[0])
}

type DBInfo struct {
	Driver     string
	DataSource string
	Dialect    *Entry
}

// ReadDBInfoFromArgs resolves a driver name or a DSN whose scheme names a
// registered driver into connection information.
func ReadDBInfoFromArgs(args []string) (*DBInfo, error) {
	entry, args, err := findFromArgs(args)
	if err != nil {
		return nil, err
	}
	driver := strings.ToLower(args[0])
	if entry.Driver != "" {
		driver = entry.Driver
	}
	d := &DBInfo{
		Driver:     driver,
		DataSource: args[1],
		Dialect:    entry,
	}
	if entry.DSNFilter != nil {
		if d.DataSource, err = entry.DSNFilter(d.DataSource); err != nil {
			return nil, err
		}
	}
	return d, nil
}

type PlaceHolderQuestion struct {
	values []any
}

func (ph *PlaceHolderQuestion) Make(v any) string {
	ph.values = append(ph.values, v)
	return "?"
}

func (ph *PlaceHolderQuestion) Values() (result []any) {
	result = ph.values
	ph.values = ph.values[:0]
	return
}

type PlaceHolderName struct {
	Prefix string
	Format string
	values []any
}

func (ph *PlaceHolderName) Make(v any) string {
	ph.values = append(ph.values, v)
	return fmt.Sprintf("%s%s%d", ph.Prefix, ph.Format, len(ph.values))
}

func (ph *PlaceHolderName) Values() (result []any) {
	for i, v := range ph.values {
		result = append(result, sql.Named(fmt.Sprintf("%s%d", ph.Format, i+1), v))
	}
	ph.values = ph.values[:0]
	return
}

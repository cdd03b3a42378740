package hbtrack

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/nyaosorg/go-readline-ny"
	"github.com/nyaosorg/go-ttyadapter/auto"
)

type reserveWordPattern map[string]struct{}

var rxWords = regexp.MustCompile(`\b\w+\b`)

func (h reserveWordPattern) FindAllStringIndex(s string, n int) [][]int {
	matches := rxWords.FindAllStringIndex(s, n)
	for i := len(matches) - 1; i >= 0; i-- {
		word := s[matches[i][0]:matches[i][1]]
		if _, ok := h[strings.ToUpper(word)]; !ok {
			copy(matches[i:], matches[i+1:])
			matches = matches[:len(matches)-1]
		}
	}
	return matches
}

func newReservedWordPattern(list ...string) reserveWordPattern {
	m := reserveWordPattern{}
	for _, word := range list {
		m[strings.ToUpper(word)] = struct{}{}
	}
	return m
}

type interactiveIn struct {
	editor *readline.Editor
}

func (*interactiveIn) ShouldRecordHistory() bool { return true }
func (*interactiveIn) OnErrorAbort() bool        { return false }

func (i *interactiveIn) Read(ctx context.Context) (string, error) {
	line, err := i.editor.ReadLine(ctx)
	if err == readline.CtrlC {
		fmt.Fprintln(i.editor.Out, err.Error())
		i.editor.Out.Flush()
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (ss *session) newInteractiveIn() *interactiveIn {
	editor := &readline.Editor{
		PromptWriter: func(w io.Writer) (int, error) {
			return io.WriteString(w, "\x1B[0mHBA Database> ")
		},
		Writer:  ss.termOut,
		History: ss.history,
	}

	if noColor := os.Getenv("NO_COLOR"); noColor == "" {
		editor.ResetColor = "\x1B[0m"
		editor.DefaultColor = "\x1B[39;49;1m"
		editor.Highlight = []readline.Highlight{
			{Pattern: newReservedWordPattern(
				"STUDENT", "NEW_STUDENT", "PROJECT", "GRADE", "ASSIGN_GRADE",
				"STUDENTS", "PROJECTS", "GRADES", "TABLES", "DESC",
				"HISTORY", "SPOOL", "START", "HOST", "REM",
				"EXIT", "QUIT"), Sequence: "\x1B[36;49;1m"},
			{Pattern: regexp.MustCompile(`[0-9]+`), Sequence: "\x1B[35;49;1m"},
			{Pattern: regexp.MustCompile(`"[^"]*"|"[^"]*$`), Sequence: "\x1B[31;49;1m"},
		}
	}

	if ss.auto != "" {
		// "|" stands for Enter so one flag value can hold a whole
		// command sequence.
		text := strings.ReplaceAll(ss.auto, "|", "\r")
		if text[len(text)-1] != '\r' {
			text = text + "\r"
		}
		editor.Tty = &auto.Pilot{
			Text: strings.Split(text, ""),
		}
	}
	return &interactiveIn{editor: editor}
}

package hbtrack

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// script replays commands from a file or piped stdin, one per line,
// echoing each line so the transcript shows what ran.
type script struct {
	br   *bufio.Reader
	echo io.Writer
}

func (*script) ShouldRecordHistory() bool { return false }
func (*script) OnErrorAbort() bool        { return true }

func (s *script) Read(context.Context) (string, error) {
	line, err := s.br.ReadString('\n')
	if line == "" && err != nil {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	fmt.Fprintln(s.echo, line)
	return line, err
}

func (ss *session) StartFromStdin(ctx context.Context) error {
	return ss.Loop(ctx, &script{
		br:   bufio.NewReader(os.Stdin),
		echo: ss.stdErr,
	})
}

func (ss *session) Start(ctx context.Context, fname string) error {
	if fname == "-" {
		return ss.StartFromStdin(ctx)
	}
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()
	return ss.Loop(ctx, &script{
		br:   bufio.NewReader(fd),
		echo: ss.stdErr,
	})
}

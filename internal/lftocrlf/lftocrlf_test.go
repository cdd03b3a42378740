package lftocrlf

import (
	"strings"
	"testing"
)

type fakeFile struct {
	strings.Builder
}

func (*fakeFile) Name() string { return "fake" }
func (*fakeFile) Close() error { return nil }

func TestLfToCrLf(t *testing.T) {
	cases := [][2]string{
		{"foo\nbar\nbaz", "foo\r\nbar\r\nbaz"},
		{"no newline", "no newline"},
		{"\n\n", "\r\n\r\n"},
	}
	for i, c := range cases {
		var f fakeFile
		w := New(&f)
		if _, err := w.Write([]byte(c[0])); err != nil {
			t.Fatal(err.Error())
		}
		w.Close()
		if result := f.String(); result != c[1] {
			t.Fatalf("(%d) expect %#v, but %#v", i+1, c[1], result)
		}
	}
}

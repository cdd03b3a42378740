package misc

import (
	"testing"
)

func TestCutField(t *testing.T) {
	tc := [][3]string{
		[...]string{`student jhacks`, "student", " jhacks"},
		[...]string{`"Markdown Challenge" 98`, "Markdown Challenge", " 98"},
		[...]string{`"say ""hi""" rest`, `say "hi"`, " rest"},
		[...]string{`  	new_student Jane`, "new_student", " Jane"},
	}
	for i, tc1 := range tc {
		result1, result2 := CutField(tc1[0])
		if result1 != tc1[1] || result2 != tc1[2] {
			t.Fatalf("%d: %#v: expect %#v and %#v, but %#v and %#v",
				i, tc1[0], tc1[1], tc1[2], result1, result2)
		}
	}
}

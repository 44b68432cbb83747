package report

import (
	"strings"
	"testing"

	"github.com/sgothel/classdiff/internal/classinfo"
)

func TestDescribeClassIncludesAccessSupernameAndMembers(t *testing.T) {
	c := classinfo.NewClassInfo(61, classinfo.Public, "a/X", "", "a/Root",
		[]string{"a/I"},
		map[string]*classinfo.MethodInfo{
			"m()V": classinfo.NewMethodInfo("a/X", classinfo.Public, "m", "()V", "", nil),
		},
		map[string]*classinfo.FieldInfo{
			"f": classinfo.NewFieldInfo("a/X", classinfo.Public|classinfo.Final, "f", "I", "", nil),
		},
	)

	out := DescribeClass(c)
	for _, want := range []string{"class a/X", "extends a/Root", "implements a/I", "field I f", "method m()V"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestThrowsClauseDiffShowsAddedException(t *testing.T) {
	oldM := classinfo.NewMethodInfo("a/X", classinfo.Public, "m", "()V", "", []string{"a/IOException"})
	newM := classinfo.NewMethodInfo("a/X", classinfo.Public, "m", "()V", "", []string{"a/IOException", "a/SQLException"})

	out, err := ThrowsClauseDiff("a/X.m", oldM, newM)
	if err != nil {
		t.Fatalf("ThrowsClauseDiff: %v", err)
	}
	if !strings.Contains(out, "+a/SQLException") {
		t.Fatalf("expected diff to show added SQLException, got:\n%s", out)
	}
}

func TestInterfaceSetDiffShowsRemovedInterface(t *testing.T) {
	oldC := classinfo.NewClassInfo(61, classinfo.Public, "a/X", "", "", []string{"a/I", "a/J"}, nil, nil)
	newC := classinfo.NewClassInfo(61, classinfo.Public, "a/X", "", "", []string{"a/I"}, nil, nil)

	out, err := InterfaceSetDiff("a/X", oldC, newC)
	if err != nil {
		t.Fatalf("InterfaceSetDiff: %v", err)
	}
	if !strings.Contains(out, "-a/J") {
		t.Fatalf("expected diff to show removed a/J, got:\n%s", out)
	}
}

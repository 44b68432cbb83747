package diffhandler

import (
	"testing"

	"github.com/sgothel/classdiff/internal/classinfo"
	"github.com/sgothel/classdiff/internal/delta"
)

func classStub(name string) *classinfo.ClassInfo {
	return classinfo.NewClassInfo(61, classinfo.Public, name, "", "", nil, nil, nil)
}

func TestAccumulatingHandlerBuildsDeltaFromEvents(t *testing.T) {
	h := NewAccumulatingHandler()
	h.StartDiff("old-1.2.3", "new-1.3.0")

	h.StartRemoved()
	h.EndRemoved()

	h.StartAdded()
	h.ClassAdded("a/New", classStub("a/New"))
	h.EndAdded()

	h.StartChanged()
	h.StartClassChanged("a/B")
	f := classinfo.NewFieldInfo("a/B", classinfo.Public, "f", "I", "", nil)
	h.FieldDeprecated("a/B", f, f)
	h.EndClassChanged("a/B")
	h.EndChanged()

	h.EndDiff()

	oldLabel, newLabel := h.Labels()
	if oldLabel != "old-1.2.3" || newLabel != "new-1.3.0" {
		t.Fatalf("labels not recorded: %q %q", oldLabel, newLabel)
	}

	d := h.Delta(false)
	diffs := d.Differences()
	if len(diffs) != 2 {
		t.Fatalf("expected 2 differences, got %d", len(diffs))
	}
	if d.Category() != delta.BackwardCompatibleUser {
		t.Fatalf("expected BackwardCompatibleUser, got %s", d.Category())
	}
}

func TestAccumulatingHandlerFreshInstanceIsEmpty(t *testing.T) {
	h := NewAccumulatingHandler()
	d := h.Delta(false)
	if len(d.Differences()) != 0 {
		t.Fatalf("expected no differences from an untouched handler")
	}
	if d.Category() != delta.BackwardCompatibleImplementer {
		t.Fatalf("expected BackwardCompatibleImplementer for an empty delta, got %s", d.Category())
	}
}

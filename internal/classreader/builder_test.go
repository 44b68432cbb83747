package classreader

import (
	"testing"

	"github.com/sgothel/classdiff/internal/classinfo"
)

func TestBuilderHappyPath(t *testing.T) {
	b := NewBuilder()
	if err := b.VisitHeader(52, classinfo.Public, "a/B", "", "java/lang/Object", []string{"a/Iface"}); err != nil {
		t.Fatalf("VisitHeader: %v", err)
	}
	if err := b.VisitField(classinfo.Public, "x", "I", "", nil); err != nil {
		t.Fatalf("VisitField: %v", err)
	}
	if err := b.VisitMethod(classinfo.Public, "m", "()V", "", nil); err != nil {
		t.Fatalf("VisitMethod: %v", err)
	}
	ci, err := b.VisitEnd()
	if err != nil {
		t.Fatalf("VisitEnd: %v", err)
	}
	if ci.Name != "a/B" || ci.Supername != "java/lang/Object" {
		t.Fatalf("unexpected class header: %+v", ci)
	}
	if len(ci.FieldMap) != 1 || len(ci.MethodMap) != 1 {
		t.Fatalf("unexpected member counts: fields=%d methods=%d", len(ci.FieldMap), len(ci.MethodMap))
	}
}

func TestBuilderDuplicateMethodKeyIsMalformed(t *testing.T) {
	b := NewBuilder()
	_ = b.VisitHeader(52, classinfo.Public, "a/B", "", "", nil)
	if err := b.VisitMethod(classinfo.Public, "m", "()V", "", nil); err != nil {
		t.Fatalf("first VisitMethod: %v", err)
	}
	err := b.VisitMethod(classinfo.Public, "m", "()V", "", nil)
	if err == nil {
		t.Fatalf("expected MalformedClassError for duplicate method key")
	}
	var malformed *MalformedClassError
	if _, ok := err.(*MalformedClassError); !ok {
		t.Fatalf("expected *MalformedClassError, got %T", err)
	}
	_ = malformed
}

func TestBuilderOverloadsAreDistinctKeys(t *testing.T) {
	b := NewBuilder()
	_ = b.VisitHeader(52, classinfo.Public, "a/B", "", "", nil)
	if err := b.VisitMethod(classinfo.Public, "m", "()V", "", nil); err != nil {
		t.Fatalf("VisitMethod()V: %v", err)
	}
	if err := b.VisitMethod(classinfo.Public, "m", "(I)V", "", nil); err != nil {
		t.Fatalf("VisitMethod(I)V: %v", err)
	}
	ci, err := b.VisitEnd()
	if err != nil {
		t.Fatalf("VisitEnd: %v", err)
	}
	if len(ci.MethodMap) != 2 {
		t.Fatalf("expected 2 distinct overload entries, got %d", len(ci.MethodMap))
	}
}

func TestBuilderMemberBeforeHeaderIsMalformed(t *testing.T) {
	b := NewBuilder()
	if err := b.VisitField(classinfo.Public, "x", "I", "", nil); err == nil {
		t.Fatalf("expected error for field visited before header")
	}
}

func TestBuilderResetAllowsReuse(t *testing.T) {
	b := NewBuilder()
	_ = b.VisitHeader(52, classinfo.Public, "a/B", "", "", nil)
	_, _ = b.VisitEnd()

	b.Reset()
	if err := b.VisitHeader(52, classinfo.Public, "a/C", "", "", nil); err != nil {
		t.Fatalf("VisitHeader after reset: %v", err)
	}
	ci, err := b.VisitEnd()
	if err != nil {
		t.Fatalf("VisitEnd after reset: %v", err)
	}
	if ci.Name != "a/C" {
		t.Fatalf("expected reused builder to describe a/C, got %s", ci.Name)
	}
}

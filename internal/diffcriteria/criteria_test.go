package diffcriteria

import (
	"testing"

	"github.com/sgothel/classdiff/internal/classinfo"
)

func TestPublicValidClassExcludesSynthetic(t *testing.T) {
	c := NewPublic()
	pub := &classinfo.ClassInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Public, Name: "a/B"}}
	if !c.ValidClass(pub) {
		t.Fatalf("public class should be valid")
	}
	synth := &classinfo.ClassInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Public | classinfo.Synthetic, Name: "a/B"}}
	if c.ValidClass(synth) {
		t.Fatalf("synthetic public class must not be valid")
	}
	priv := &classinfo.ClassInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Private, Name: "a/B"}}
	if c.ValidClass(priv) {
		t.Fatalf("private class must not be valid under Public")
	}
}

func TestPublicProtectedIncludesProtected(t *testing.T) {
	c := NewPublicProtected()
	m := &classinfo.MethodInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Protected, Name: "m"}}
	if !c.ValidMethod(m) {
		t.Fatalf("protected method should be valid under PublicProtected")
	}
}

func TestSimpleIncludePrivateToggle(t *testing.T) {
	excl := NewSimple(false)
	incl := NewSimple(true)
	f := &classinfo.FieldInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Private, Name: "x"}}
	if excl.ValidField(f) {
		t.Fatalf("private field must not be valid when includePrivate=false")
	}
	if !incl.ValidField(f) {
		t.Fatalf("private field must be valid when includePrivate=true")
	}
}

func TestDiffersClassAccessChangeIgnoresSuperDeprecatedSynthetic(t *testing.T) {
	c := NewPublic()
	oldC := &classinfo.ClassInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Public | classinfo.Super, Name: "a/B"}}
	newC := &classinfo.ClassInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Public | classinfo.Deprecated | classinfo.Synthetic, Name: "a/B"}}
	if c.DiffersClass(oldC, newC) {
		t.Fatalf("super/deprecated/synthetic-only access change must not count as a class difference")
	}
}

func TestDiffersClassDetectsAddedFinal(t *testing.T) {
	c := NewPublic()
	oldC := &classinfo.ClassInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Public, Name: "a/B"}}
	newC := &classinfo.ClassInfo{AbstractInfo: classinfo.AbstractInfo{Access: classinfo.Public | classinfo.Final, Name: "a/B"}}
	if !c.DiffersClass(oldC, newC) {
		t.Fatalf("adding final must count as a class access change")
	}
}

func TestDiffersMethodDeprecatedAloneIsNotADifference(t *testing.T) {
	c := NewPublic()
	oldM := classinfo.NewMethodInfo("a/B", classinfo.Public, "m", "()V", "", nil)
	newM := oldM.CloneWithDeprecated()
	if c.DiffersMethod(oldM, newM) {
		t.Fatalf("deprecated-only change must not be reported by DiffersMethod (handled separately as Deprecate)")
	}
}

func TestDiffersMethodThrowsClauseIsSetValued(t *testing.T) {
	c := NewPublic()
	oldM := classinfo.NewMethodInfo("a/B", classinfo.Public, "m", "()V", "", []string{"java/io/IOException"})
	newM := classinfo.NewMethodInfo("a/B", classinfo.Public, "m", "()V", "", []string{"java/io/IOException", "java/io/IOException"})
	if c.DiffersMethod(oldM, newM) {
		t.Fatalf("duplicate entries must not be treated as a throws-clause change")
	}
	newM2 := classinfo.NewMethodInfo("a/B", classinfo.Public, "m", "()V", "", []string{"java/io/IOException", "java/sql/SQLException"})
	if !c.DiffersMethod(oldM, newM2) {
		t.Fatalf("adding an exception type must be a logical difference")
	}
	if c.DiffersBinaryMethod(oldM, newM2) {
		t.Fatalf("throws-clause widening alone must not be a binary-incompatible difference")
	}
}

func TestDiffersFieldValueConsidersWireType(t *testing.T) {
	c := NewPublic()
	oldF := classinfo.NewFieldInfo("a/B", classinfo.Public, "x", "I", "", &classinfo.FieldValue{Type: "I", Data: int32(0)})
	newF := classinfo.NewFieldInfo("a/B", classinfo.Public, "x", "J", "", &classinfo.FieldValue{Type: "J", Data: int64(0)})
	if !c.DiffersField(oldF, newF) {
		t.Fatalf("int(0) -> long(0) must be a field difference")
	}
	if c.DiffersBinaryField(oldF, newF) {
		t.Fatalf("value-only field change must not be binary-incompatible")
	}
}

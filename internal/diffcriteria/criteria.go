// Package diffcriteria implements the pluggable visibility and
// difference policy consumed by internal/differ: which
// members are visible, what constitutes a logical difference, and what
// constitutes a binary-incompatible difference.
package diffcriteria

import "github.com/sgothel/classdiff/internal/classinfo"

// Criteria is a policy object selecting which entities participate in a
// diff and which changes between two versions of an entity count as
// differences.
type Criteria interface {
	ValidClass(c *classinfo.ClassInfo) bool
	ValidMethod(m *classinfo.MethodInfo) bool
	ValidField(f *classinfo.FieldInfo) bool

	DiffersClass(oldC, newC *classinfo.ClassInfo) bool
	DiffersMethod(oldM, newM *classinfo.MethodInfo) bool
	DiffersField(oldF, newF *classinfo.FieldInfo) bool

	DiffersBinaryMethod(oldM, newM *classinfo.MethodInfo) bool
	DiffersBinaryField(oldF, newF *classinfo.FieldInfo) bool
}

// classAccessChange reports whether two classes' access differs on any bit
// outside {super, deprecated, synthetic}.
func classAccessChange(oldAccess, newAccess classinfo.Access) bool {
	const ignore = classinfo.Super | classinfo.Deprecated | classinfo.Synthetic
	return (oldAccess &^ ignore) != (newAccess &^ ignore)
}

// memberAccessChange reports a widening/narrowing/any-other access change
// for a method or field, ignoring the deprecated bit (that case is
// reported separately as Deprecate) and ignoring synthetic (never part of
// a diff once the member passed ValidMethod/ValidField).
func memberAccessChange(oldAccess, newAccess classinfo.Access) bool {
	const ignore = classinfo.Deprecated | classinfo.Synthetic
	return (oldAccess &^ ignore) != (newAccess &^ ignore)
}

// throwsClauseDiffers reports whether two exception lists differ as sets
// (order and duplicates ignored).
func throwsClauseDiffers(oldEx, newEx []string) bool {
	oldSet := toSet(oldEx)
	newSet := toSet(newEx)
	if len(oldSet) != len(newSet) {
		return true
	}
	for k := range oldSet {
		if _, ok := newSet[k]; !ok {
			return true
		}
	}
	return false
}

func toSet(ss []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		m[s] = struct{}{}
	}
	return m
}

// fieldValueDiffers reports whether two optional constant field values
// differ; the value's wire type is part of the comparison, so int(0) and
// long(0) are considered different.
func fieldValueDiffers(oldV, newV *classinfo.FieldValue) bool {
	if oldV == nil && newV == nil {
		return false
	}
	if oldV == nil || newV == nil {
		return true
	}
	return !oldV.Equal(newV)
}

// interfaceSetChange reports whether two ordered interface sequences
// differ when compared as sets.
func interfaceSetChange(oldIfaces, newIfaces []string) bool {
	oldSet := toSet(oldIfaces)
	newSet := toSet(newIfaces)
	if len(oldSet) != len(newSet) {
		return true
	}
	for k := range oldSet {
		if _, ok := newSet[k]; !ok {
			return true
		}
	}
	return false
}

// supernameChange reports whether two (possibly absent) supernames differ.
func supernameChange(oldSuper, newSuper string) bool {
	return oldSuper != newSuper
}

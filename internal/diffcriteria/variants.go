package diffcriteria

import "github.com/sgothel/classdiff/internal/classinfo"

// baseCriteria implements the difference rules shared by every canonical
// variant; only ValidClass/ValidMethod/ValidField vary between variants.
type baseCriteria struct{}

func (baseCriteria) DiffersClass(oldC, newC *classinfo.ClassInfo) bool {
	if classAccessChange(oldC.Access, newC.Access) {
		return true
	}
	if supernameChange(oldC.Supername, newC.Supername) {
		return true
	}
	return interfaceSetChange(oldC.Interfaces, newC.Interfaces)
}

func (baseCriteria) DiffersMethod(oldM, newM *classinfo.MethodInfo) bool {
	// Descriptor is part of the method key and is deliberately not
	// compared here, to preserve overload identity through the differ's
	// `changed` intersection.
	if memberAccessChange(oldM.Access, newM.Access) {
		return true
	}
	return throwsClauseDiffers(oldM.Exceptions, newM.Exceptions)
}

func (baseCriteria) DiffersBinaryMethod(oldM, newM *classinfo.MethodInfo) bool {
	return memberAccessChange(oldM.Access, newM.Access)
}

func (baseCriteria) DiffersField(oldF, newF *classinfo.FieldInfo) bool {
	if memberAccessChange(oldF.Access, newF.Access) {
		return true
	}
	return fieldValueDiffers(oldF.Value, newF.Value)
}

func (baseCriteria) DiffersBinaryField(oldF, newF *classinfo.FieldInfo) bool {
	return memberAccessChange(oldF.Access, newF.Access)
}

// Public is visible for non-synthetic public entities only.
type Public struct{ baseCriteria }

func NewPublic() *Public { return &Public{} }

func (Public) ValidClass(c *classinfo.ClassInfo) bool  { return !c.Access.IsSynthetic() && c.Access.IsPublic() }
func (Public) ValidMethod(m *classinfo.MethodInfo) bool { return !m.Access.IsSynthetic() && m.Access.IsPublic() }
func (Public) ValidField(f *classinfo.FieldInfo) bool   { return !f.Access.IsSynthetic() && f.Access.IsPublic() }

// PublicProtected is visible for non-synthetic public-or-protected entities.
type PublicProtected struct{ baseCriteria }

func NewPublicProtected() *PublicProtected { return &PublicProtected{} }

func (PublicProtected) ValidClass(c *classinfo.ClassInfo) bool {
	return !c.Access.IsSynthetic() && (c.Access.IsPublic() || c.Access.IsProtected())
}
func (PublicProtected) ValidMethod(m *classinfo.MethodInfo) bool {
	return !m.Access.IsSynthetic() && (m.Access.IsPublic() || m.Access.IsProtected())
}
func (PublicProtected) ValidField(f *classinfo.FieldInfo) bool {
	return !f.Access.IsSynthetic() && (f.Access.IsPublic() || f.Access.IsProtected())
}

// Simple is visible for all non-synthetic entities, optionally excluding
// private members (and private-access classes, for symmetry).
type Simple struct {
	baseCriteria
	includePrivate bool
}

// NewSimple returns a Simple criteria; includePrivate controls whether
// private members/classes are visible.
func NewSimple(includePrivate bool) *Simple { return &Simple{includePrivate: includePrivate} }

func (s *Simple) ValidClass(c *classinfo.ClassInfo) bool {
	if c.Access.IsSynthetic() {
		return false
	}
	return s.includePrivate || !c.Access.IsPrivate()
}

func (s *Simple) ValidMethod(m *classinfo.MethodInfo) bool {
	if m.Access.IsSynthetic() {
		return false
	}
	return s.includePrivate || !m.Access.IsPrivate()
}

func (s *Simple) ValidField(f *classinfo.FieldInfo) bool {
	if f.Access.IsSynthetic() {
		return false
	}
	return s.includePrivate || !f.Access.IsPrivate()
}

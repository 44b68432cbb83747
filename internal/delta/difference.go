package delta

import "github.com/sgothel/classdiff/internal/classinfo"

// Kind discriminates the Difference tagged union.
type Kind int

const (
	KindAdd Kind = iota
	KindRemove
	KindChange
	KindCompatChange
	KindDeprecate
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "Add"
	case KindRemove:
		return "Remove"
	case KindChange:
		return "Change"
	case KindCompatChange:
		return "CompatChange"
	case KindDeprecate:
		return "Deprecate"
	default:
		return "Unknown"
	}
}

// Difference is one reported change: Add/Remove carry a single Info;
// Change/CompatChange/Deprecate carry both the old and new Info.
type Difference struct {
	Kind    Kind
	ClassID string
	Old     Info
	New     Info
}

// Info is the narrow view the delta package needs of a class/method/field
// Info record: its name, for ordering, and a human label for reporting.
type Info struct {
	Name string
	Kind string // "class" | "method" | "field"
}

func classInfoRef(ci *classinfo.ClassInfo) Info   { return Info{Name: ci.Name, Kind: "class"} }
func methodInfoRef(mi *classinfo.MethodInfo) Info { return Info{Name: mi.Name + mi.Desc, Kind: "method"} }
func fieldInfoRef(fi *classinfo.FieldInfo) Info   { return Info{Name: fi.Name, Kind: "field"} }

// NewAddClass/NewAddMethod/NewAddField and their Remove/Change/CompatChange/
// Deprecate counterparts build a Difference from concrete Info records,
// keeping internal/differ from having to know about delta.Info's shape.

func NewAddClass(classID string, c *classinfo.ClassInfo) Difference {
	return Difference{Kind: KindAdd, ClassID: classID, New: classInfoRef(c)}
}
func NewRemoveClass(classID string, c *classinfo.ClassInfo) Difference {
	return Difference{Kind: KindRemove, ClassID: classID, Old: classInfoRef(c)}
}
func NewChangeClass(classID string, o, n *classinfo.ClassInfo) Difference {
	return Difference{Kind: KindChange, ClassID: classID, Old: classInfoRef(o), New: classInfoRef(n)}
}
func NewDeprecateClass(classID string, o, n *classinfo.ClassInfo) Difference {
	return Difference{Kind: KindDeprecate, ClassID: classID, Old: classInfoRef(o), New: classInfoRef(n)}
}

func NewAddMethod(classID string, m *classinfo.MethodInfo) Difference {
	return Difference{Kind: KindAdd, ClassID: classID, New: methodInfoRef(m)}
}
func NewRemoveMethod(classID string, m *classinfo.MethodInfo) Difference {
	return Difference{Kind: KindRemove, ClassID: classID, Old: methodInfoRef(m)}
}
func NewChangeMethod(classID string, o, n *classinfo.MethodInfo) Difference {
	return Difference{Kind: KindChange, ClassID: classID, Old: methodInfoRef(o), New: methodInfoRef(n)}
}
func NewCompatChangeMethod(classID string, o, n *classinfo.MethodInfo) Difference {
	return Difference{Kind: KindCompatChange, ClassID: classID, Old: methodInfoRef(o), New: methodInfoRef(n)}
}
func NewDeprecateMethod(classID string, o, n *classinfo.MethodInfo) Difference {
	return Difference{Kind: KindDeprecate, ClassID: classID, Old: methodInfoRef(o), New: methodInfoRef(n)}
}

func NewAddField(classID string, f *classinfo.FieldInfo) Difference {
	return Difference{Kind: KindAdd, ClassID: classID, New: fieldInfoRef(f)}
}
func NewRemoveField(classID string, f *classinfo.FieldInfo) Difference {
	return Difference{Kind: KindRemove, ClassID: classID, Old: fieldInfoRef(f)}
}
func NewChangeField(classID string, o, n *classinfo.FieldInfo) Difference {
	return Difference{Kind: KindChange, ClassID: classID, Old: fieldInfoRef(o), New: fieldInfoRef(n)}
}
func NewCompatChangeField(classID string, o, n *classinfo.FieldInfo) Difference {
	return Difference{Kind: KindCompatChange, ClassID: classID, Old: fieldInfoRef(o), New: fieldInfoRef(n)}
}
func NewDeprecateField(classID string, o, n *classinfo.FieldInfo) Difference {
	return Difference{Kind: KindDeprecate, ClassID: classID, Old: fieldInfoRef(o), New: fieldInfoRef(n)}
}

// name returns whichever of Old/New is populated, for ordering.
func (d Difference) name() string {
	if d.New.Name != "" {
		return d.New.Name
	}
	return d.Old.Name
}

// Less orders Differences by (classId, kindOrdinal, name), giving callers a
// deterministic iteration order.
func (d Difference) Less(o Difference) bool {
	if d.ClassID != o.ClassID {
		return d.ClassID < o.ClassID
	}
	if d.Kind != o.Kind {
		return d.Kind < o.Kind
	}
	return d.name() < o.name()
}

package classinfo

import "strings"

// AbstractInfo is the shared header of all three Info kinds: a VMCF access
// bitmask and the entity's name (VM-internal form with '/' separators for
// classes, simple name for members).
type AbstractInfo struct {
	Access Access
	Name   string
}

// IsDeprecated tests the deprecated bit alone, independent of visibility.
func (a AbstractInfo) IsDeprecated() bool { return a.Access.IsDeprecated() }

// ClassInfo is an immutable record of one class's declared public contract.
type ClassInfo struct {
	AbstractInfo
	Version    int
	Signature  string
	Supername  string // empty for the root class (e.g. java/lang/Object)
	Interfaces []string
	MethodMap  map[string]*MethodInfo // key: name+desc
	FieldMap   map[string]*FieldInfo  // key: name
}

// NewClassInfo constructs a ClassInfo. methodMap/fieldMap are taken by
// reference; callers must not mutate them afterwards (see the lifecycle
// note on classreader.Builder.VisitEnd).
func NewClassInfo(version int, access Access, name, signature, supername string, interfaces []string, methodMap map[string]*MethodInfo, fieldMap map[string]*FieldInfo) *ClassInfo {
	return &ClassInfo{
		AbstractInfo: AbstractInfo{Access: access, Name: name},
		Version:      version,
		Signature:    signature,
		Supername:    supername,
		Interfaces:   interfaces,
		MethodMap:    methodMap,
		FieldMap:     fieldMap,
	}
}

// CloneWithDeprecated returns a new ClassInfo with the deprecated bit
// forcibly set and everything else shared with the receiver. Used by the
// differ to probe "was the only change deprecation?".
func (c *ClassInfo) CloneWithDeprecated() *ClassInfo {
	clone := *c
	clone.Access = c.Access.WithDeprecated()
	return &clone
}

// MethodInfo is an immutable record of one method.
type MethodInfo struct {
	AbstractInfo
	ClassName  string
	Desc       string
	Signature  string
	Exceptions []string // declared checked-exception class ids; may be nil
}

// NewMethodInfo constructs a MethodInfo.
func NewMethodInfo(className string, access Access, name, desc, signature string, exceptions []string) *MethodInfo {
	return &MethodInfo{
		AbstractInfo: AbstractInfo{Access: access, Name: name},
		ClassName:    className,
		Desc:         desc,
		Signature:    signature,
		Exceptions:   exceptions,
	}
}

// Key is the method-key: name concatenated with descriptor, unique within
// an owning class's MethodMap.
func (m *MethodInfo) Key() string { return MethodKey(m.Name, m.Desc) }

// MethodKey builds the method-key used as MethodMap's index.
func MethodKey(name, desc string) string {
	var b strings.Builder
	b.Grow(len(name) + len(desc))
	b.WriteString(name)
	b.WriteString(desc)
	return b.String()
}

// CloneWithDeprecated returns a new MethodInfo with the deprecated bit
// forcibly set and everything else shared with the receiver.
func (m *MethodInfo) CloneWithDeprecated() *MethodInfo {
	clone := *m
	clone.Access = m.Access.WithDeprecated()
	return &clone
}

// FieldValue tags a compile-time constant field value with its VMCF wire
// type, so that e.g. int(0) and long(0) compare as different values.
type FieldValue struct {
	Type string // VMCF wire-type tag, e.g. "I", "J", "Ljava/lang/String;"
	Data any    // comparable scalar/string payload
}

// Equal reports structural equality including the wire type.
func (v *FieldValue) Equal(o *FieldValue) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.Type == o.Type && v.Data == o.Data
}

// FieldInfo is an immutable record of one field.
type FieldInfo struct {
	AbstractInfo
	ClassName string
	Desc      string
	Signature string
	Value     *FieldValue // optional compile-time constant
}

// NewFieldInfo constructs a FieldInfo.
func NewFieldInfo(className string, access Access, name, desc, signature string, value *FieldValue) *FieldInfo {
	return &FieldInfo{
		AbstractInfo: AbstractInfo{Access: access, Name: name},
		ClassName:    className,
		Desc:         desc,
		Signature:    signature,
		Value:        value,
	}
}

// CloneWithDeprecated returns a new FieldInfo with the deprecated bit
// forcibly set and everything else shared with the receiver.
func (f *FieldInfo) CloneWithDeprecated() *FieldInfo {
	clone := *f
	clone.Access = f.Access.WithDeprecated()
	return &clone
}

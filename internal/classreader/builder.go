// Package classreader adapts the external VMCF parser's event stream
// into an internal/classinfo.ClassInfo. It owns no bytecode
// parsing itself — the byte-level grammar is assumed to live in an
// external library that calls into a Builder the way a SAX-style visitor
// would.
package classreader

import (
	"github.com/sgothel/classdiff/internal/classinfo"
)

// Builder accumulates one class's parser events into a ClassInfo. It is
// reusable across classes via Reset, but is not concurrency-safe: the
// recommended idiom is one Builder per class being parsed, or serialized
// reuse guarded by the caller.
type Builder struct {
	started   bool
	className string

	version    int
	access     classinfo.Access
	name       string
	signature  string
	supername  string
	interfaces []string

	methodMap map[string]*classinfo.MethodInfo
	fieldMap  map[string]*classinfo.FieldInfo

	done bool
}

// NewBuilder returns a ready-to-use Builder.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Reset()
	return b
}

// Reset clears all accumulated state so the Builder can be reused for the
// next class. It must be called between classes.
func (b *Builder) Reset() {
	*b = Builder{
		methodMap: make(map[string]*classinfo.MethodInfo),
		fieldMap:  make(map[string]*classinfo.FieldInfo),
	}
}

// VisitHeader records a class's header. It must be the first event for a
// given class.
func (b *Builder) VisitHeader(version int, access classinfo.Access, name, signature, supername string, interfaces []string) error {
	if b.started {
		return NewMalformedClassError(b.className, "visitHeader called more than once")
	}
	b.started = true
	b.className = name
	b.version = version
	b.access = access
	b.name = name
	b.signature = signature
	b.supername = supername
	b.interfaces = append([]string(nil), interfaces...)
	return nil
}

// VisitField records one field. The field name must be unique within the class.
func (b *Builder) VisitField(access classinfo.Access, name, desc, signature string, value *classinfo.FieldValue) error {
	if !b.started {
		return NewMalformedClassError(b.className, "visitField called before visitHeader")
	}
	if _, dup := b.fieldMap[name]; dup {
		return NewMalformedClassError(b.className, "duplicate field %q", name)
	}
	b.fieldMap[name] = classinfo.NewFieldInfo(b.className, access, name, desc, signature, value)
	return nil
}

// VisitMethod records one method. Collision on name+desc indicates a
// malformed class.
func (b *Builder) VisitMethod(access classinfo.Access, name, desc, signature string, exceptions []string) error {
	if !b.started {
		return NewMalformedClassError(b.className, "visitMethod called before visitHeader")
	}
	key := classinfo.MethodKey(name, desc)
	if _, dup := b.methodMap[key]; dup {
		return NewMalformedClassError(b.className, "duplicate method key %q", key)
	}
	b.methodMap[key] = classinfo.NewMethodInfo(b.className, access, name, desc, signature, exceptions)
	return nil
}

// VisitEnd closes the class and returns the completed ClassInfo. After
// VisitEnd, methodMap and fieldMap are complete and closed — callers must not mutate the returned maps.
func (b *Builder) VisitEnd() (*classinfo.ClassInfo, error) {
	if !b.started {
		return nil, NewMalformedClassError(b.className, "visitEnd called before visitHeader")
	}
	if b.done {
		return nil, NewMalformedClassError(b.className, "visitEnd called more than once")
	}
	b.done = true
	return classinfo.NewClassInfo(b.version, b.access, b.name, b.signature, b.supername, b.interfaces, b.methodMap, b.fieldMap), nil
}

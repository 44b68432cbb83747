// Package diffhandler defines the event-style sink internal/differ pushes
// diff events into, and its canonical implementation that
// accumulates those events into an internal/delta.Delta.
package diffhandler

import "github.com/sgothel/classdiff/internal/classinfo"

// Handler receives the push-based event stream internal/differ drives
// during one Diff invocation. Method order within a call mirrors
// internal/differ's own traversal; streaming reporters may implement
// Handler directly instead of (or alongside) the accumulator.
type Handler interface {
	StartDiff(oldLabel, newLabel string)
	EndDiff()

	StartOldContents()
	OldContains(classID string, c *classinfo.ClassInfo)
	EndOldContents()

	StartNewContents()
	NewContains(classID string, c *classinfo.ClassInfo)
	EndNewContents()

	StartRemoved()
	ClassRemoved(classID string, c *classinfo.ClassInfo)
	EndRemoved()

	StartAdded()
	ClassAdded(classID string, c *classinfo.ClassInfo)
	EndAdded()

	StartChanged()
	StartClassChanged(classID string)

	StartFieldsRemoved()
	FieldRemoved(classID string, f *classinfo.FieldInfo)
	EndFieldsRemoved()

	StartMethodsRemoved()
	MethodRemoved(classID string, m *classinfo.MethodInfo)
	EndMethodsRemoved()

	StartFieldsAdded()
	FieldAdded(classID string, f *classinfo.FieldInfo)
	EndFieldsAdded()

	StartMethodsAdded()
	MethodAdded(classID string, m *classinfo.MethodInfo)
	EndMethodsAdded()

	ClassChanged(classID string, oldC, newC *classinfo.ClassInfo)
	ClassDeprecated(classID string, oldC, newC *classinfo.ClassInfo)

	FieldChanged(classID string, oldF, newF *classinfo.FieldInfo)
	FieldChangedCompat(classID string, oldF, newF *classinfo.FieldInfo)
	FieldDeprecated(classID string, oldF, newF *classinfo.FieldInfo)

	MethodChanged(classID string, oldM, newM *classinfo.MethodInfo)
	MethodChangedCompat(classID string, oldM, newM *classinfo.MethodInfo)
	MethodDeprecated(classID string, oldM, newM *classinfo.MethodInfo)

	EndClassChanged(classID string)
	EndChanged()
}

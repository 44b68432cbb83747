package diffhandler

import (
	"github.com/sgothel/classdiff/internal/classinfo"
	"github.com/sgothel/classdiff/internal/delta"
)

// AccumulatingHandler is the canonical Handler: it ignores the contents-
// announcement and boundary events and records exactly one delta.Difference
// per removed/added/changed/compat-changed/deprecated entity, in whatever
// order internal/differ emits them. delta.Delta sorts on construction,
// so emission order here does not need to match the final Delta order.
type AccumulatingHandler struct {
	oldLabel, newLabel string
	diffs              []delta.Difference
}

// NewAccumulatingHandler returns a fresh, empty accumulator.
func NewAccumulatingHandler() *AccumulatingHandler {
	return &AccumulatingHandler{}
}

func (h *AccumulatingHandler) StartDiff(oldLabel, newLabel string) {
	h.oldLabel, h.newLabel = oldLabel, newLabel
}
func (h *AccumulatingHandler) EndDiff() {}

func (h *AccumulatingHandler) StartOldContents()                                    {}
func (h *AccumulatingHandler) OldContains(classID string, c *classinfo.ClassInfo)    {}
func (h *AccumulatingHandler) EndOldContents()                                       {}
func (h *AccumulatingHandler) StartNewContents()                                     {}
func (h *AccumulatingHandler) NewContains(classID string, c *classinfo.ClassInfo)    {}
func (h *AccumulatingHandler) EndNewContents()                                       {}

func (h *AccumulatingHandler) StartRemoved() {}
func (h *AccumulatingHandler) ClassRemoved(classID string, c *classinfo.ClassInfo) {
	h.diffs = append(h.diffs, delta.NewRemoveClass(classID, c))
}
func (h *AccumulatingHandler) EndRemoved() {}

func (h *AccumulatingHandler) StartAdded() {}
func (h *AccumulatingHandler) ClassAdded(classID string, c *classinfo.ClassInfo) {
	h.diffs = append(h.diffs, delta.NewAddClass(classID, c))
}
func (h *AccumulatingHandler) EndAdded() {}

func (h *AccumulatingHandler) StartChanged()                    {}
func (h *AccumulatingHandler) StartClassChanged(classID string) {}

func (h *AccumulatingHandler) StartFieldsRemoved() {}
func (h *AccumulatingHandler) FieldRemoved(classID string, f *classinfo.FieldInfo) {
	h.diffs = append(h.diffs, delta.NewRemoveField(classID, f))
}
func (h *AccumulatingHandler) EndFieldsRemoved() {}

func (h *AccumulatingHandler) StartMethodsRemoved() {}
func (h *AccumulatingHandler) MethodRemoved(classID string, m *classinfo.MethodInfo) {
	h.diffs = append(h.diffs, delta.NewRemoveMethod(classID, m))
}
func (h *AccumulatingHandler) EndMethodsRemoved() {}

func (h *AccumulatingHandler) StartFieldsAdded() {}
func (h *AccumulatingHandler) FieldAdded(classID string, f *classinfo.FieldInfo) {
	h.diffs = append(h.diffs, delta.NewAddField(classID, f))
}
func (h *AccumulatingHandler) EndFieldsAdded() {}

func (h *AccumulatingHandler) StartMethodsAdded() {}
func (h *AccumulatingHandler) MethodAdded(classID string, m *classinfo.MethodInfo) {
	h.diffs = append(h.diffs, delta.NewAddMethod(classID, m))
}
func (h *AccumulatingHandler) EndMethodsAdded() {}

func (h *AccumulatingHandler) ClassChanged(classID string, oldC, newC *classinfo.ClassInfo) {
	h.diffs = append(h.diffs, delta.NewChangeClass(classID, oldC, newC))
}
func (h *AccumulatingHandler) ClassDeprecated(classID string, oldC, newC *classinfo.ClassInfo) {
	h.diffs = append(h.diffs, delta.NewDeprecateClass(classID, oldC, newC))
}

func (h *AccumulatingHandler) FieldChanged(classID string, oldF, newF *classinfo.FieldInfo) {
	h.diffs = append(h.diffs, delta.NewChangeField(classID, oldF, newF))
}
func (h *AccumulatingHandler) FieldChangedCompat(classID string, oldF, newF *classinfo.FieldInfo) {
	h.diffs = append(h.diffs, delta.NewCompatChangeField(classID, oldF, newF))
}
func (h *AccumulatingHandler) FieldDeprecated(classID string, oldF, newF *classinfo.FieldInfo) {
	h.diffs = append(h.diffs, delta.NewDeprecateField(classID, oldF, newF))
}

func (h *AccumulatingHandler) MethodChanged(classID string, oldM, newM *classinfo.MethodInfo) {
	h.diffs = append(h.diffs, delta.NewChangeMethod(classID, oldM, newM))
}
func (h *AccumulatingHandler) MethodChangedCompat(classID string, oldM, newM *classinfo.MethodInfo) {
	h.diffs = append(h.diffs, delta.NewCompatChangeMethod(classID, oldM, newM))
}
func (h *AccumulatingHandler) MethodDeprecated(classID string, oldM, newM *classinfo.MethodInfo) {
	h.diffs = append(h.diffs, delta.NewDeprecateMethod(classID, oldM, newM))
}

func (h *AccumulatingHandler) EndClassChanged(classID string) {}
func (h *AccumulatingHandler) EndChanged()                    {}

// Labels returns the old/new labels passed to the most recent StartDiff.
func (h *AccumulatingHandler) Labels() (oldLabel, newLabel string) {
	return h.oldLabel, h.newLabel
}

// Delta builds the accumulated Delta. oldIsDev records whether the old
// snapshot's semantic baseline version is a development (major=0) version
// — a fact about the caller's version history, not about the diffed
// classes themselves, so it is supplied here rather than inferred.
func (h *AccumulatingHandler) Delta(oldIsDev bool) *delta.Delta {
	return delta.NewDelta(h.diffs, oldIsDev)
}

// Package differ implements the two-set comparison that drives a
// diffhandler.Handler from two class maps under a diffcriteria.Criteria
// policy, including the inherited-member reconciliation that
// suppresses false "removed" reports for members pushed up into a
// superclass present in the new artifact.
package differ

import (
	"github.com/sgothel/classdiff/internal/classinfo"
	"github.com/sgothel/classdiff/internal/diffcriteria"
	"github.com/sgothel/classdiff/internal/diffhandler"
	"github.com/sgothel/classdiff/internal/sortutil"
)

// Diff compares oldClasses against newClasses under criteria and pushes
// the resulting event stream into handler. Classes are visited in sorted
// classId order; within a class, fields before methods, each in sorted
// key order.
func Diff(handler diffhandler.Handler, criteria diffcriteria.Criteria, oldLabel, newLabel string, oldClasses, newClasses map[string]*classinfo.ClassInfo) error {
	handler.StartDiff(oldLabel, newLabel)

	handler.StartOldContents()
	for _, id := range sortutil.SortedKeys(oldClasses) {
		handler.OldContains(id, oldClasses[id])
	}
	handler.EndOldContents()

	handler.StartNewContents()
	for _, id := range sortutil.SortedKeys(newClasses) {
		handler.NewContains(id, newClasses[id])
	}
	handler.EndNewContents()

	onlyOld, onlyNew, both := partition(oldClasses, newClasses)

	handler.StartRemoved()
	for _, id := range onlyOld {
		c := oldClasses[id]
		if criteria.ValidClass(c) {
			handler.ClassRemoved(id, c)
		}
	}
	handler.EndRemoved()

	handler.StartAdded()
	for _, id := range onlyNew {
		c := newClasses[id]
		if criteria.ValidClass(c) {
			handler.ClassAdded(id, c)
		}
	}
	handler.EndAdded()

	handler.StartChanged()
	for _, id := range both {
		oldC, newC := oldClasses[id], newClasses[id]
		if !criteria.ValidClass(oldC) && !criteria.ValidClass(newC) {
			continue
		}
		diffClass(handler, criteria, id, oldC, newC, newClasses)
	}
	handler.EndChanged()

	handler.EndDiff()
	return nil
}

// partition splits the union of both class maps' keys into classes only
// in old, only in new, and in both — each list sorted.
func partition(oldClasses, newClasses map[string]*classinfo.ClassInfo) (onlyOld, onlyNew, both []string) {
	for _, id := range sortutil.SortedKeys(oldClasses) {
		if _, ok := newClasses[id]; ok {
			both = append(both, id)
		} else {
			onlyOld = append(onlyOld, id)
		}
	}
	for _, id := range sortutil.SortedKeys(newClasses) {
		if _, ok := oldClasses[id]; !ok {
			onlyNew = append(onlyNew, id)
		}
	}
	return onlyOld, onlyNew, both
}

// extendedNewMethods builds the extended-new view for
// a class's methods: its own methodMap plus every non-private method
// reachable by walking supername within newClasses, stopping at an absent
// or already-visited supername.
func extendedNewMethods(classID string, newClasses map[string]*classinfo.ClassInfo) map[string]*classinfo.MethodInfo {
	view := make(map[string]*classinfo.MethodInfo)
	c, ok := newClasses[classID]
	if !ok {
		return view
	}
	for k, m := range c.MethodMap {
		view[k] = m
	}
	visited := map[string]struct{}{classID: {}}
	super := c.Supername
	for super != "" {
		if _, seen := visited[super]; seen {
			break
		}
		visited[super] = struct{}{}
		sc, ok := newClasses[super]
		if !ok {
			break
		}
		for k, m := range sc.MethodMap {
			if m.Access.IsPrivate() {
				continue
			}
			if _, present := view[k]; !present {
				view[k] = m
			}
		}
		super = sc.Supername
	}
	return view
}

// extendedNewFields is extendedNewMethods's field-map counterpart.
func extendedNewFields(classID string, newClasses map[string]*classinfo.ClassInfo) map[string]*classinfo.FieldInfo {
	view := make(map[string]*classinfo.FieldInfo)
	c, ok := newClasses[classID]
	if !ok {
		return view
	}
	for k, f := range c.FieldMap {
		view[k] = f
	}
	visited := map[string]struct{}{classID: {}}
	super := c.Supername
	for super != "" {
		if _, seen := visited[super]; seen {
			break
		}
		visited[super] = struct{}{}
		sc, ok := newClasses[super]
		if !ok {
			break
		}
		for k, f := range sc.FieldMap {
			if f.Access.IsPrivate() {
				continue
			}
			if _, present := view[k]; !present {
				view[k] = f
			}
		}
		super = sc.Supername
	}
	return view
}

// diffClass handles one classId present in both snapshots: computing the
// member-level removed/added/changed buckets (with inherited-member
// reconciliation), applying the deprecation-only shortcut, and emitting
// the resulting boundary and leaf events.
func diffClass(handler diffhandler.Handler, criteria diffcriteria.Criteria, classID string, oldC, newC *classinfo.ClassInfo, newClasses map[string]*classinfo.ClassInfo) {
	extFields := extendedNewFields(classID, newClasses)
	extMethods := extendedNewMethods(classID, newClasses)

	removedFields, addedFields, changedFields := memberBuckets(
		oldC.FieldMap, newC.FieldMap, extFields,
		func(k string) bool { return criteria.ValidField(oldC.FieldMap[k]) },
		func(k string) bool { return criteria.ValidField(newC.FieldMap[k]) },
	)
	removedMethods, addedMethods, changedMethods := memberBuckets(
		oldC.MethodMap, newC.MethodMap, extMethods,
		func(k string) bool { return criteria.ValidMethod(oldC.MethodMap[k]) },
		func(k string) bool { return criteria.ValidMethod(newC.MethodMap[k]) },
	)

	changedFields = filterDifferentFields(changedFields, oldC.FieldMap, newC.FieldMap, criteria)
	changedMethods = filterDifferentMethods(changedMethods, oldC.MethodMap, newC.MethodMap, criteria)

	classDiffers := criteria.DiffersClass(oldC, newC) || (!oldC.IsDeprecated() && newC.IsDeprecated())

	if len(removedFields) == 0 && len(removedMethods) == 0 &&
		len(addedFields) == 0 && len(addedMethods) == 0 &&
		len(changedFields) == 0 && len(changedMethods) == 0 && !classDiffers {
		return
	}

	handler.StartClassChanged(classID)

	handler.StartFieldsRemoved()
	for _, k := range sortutil.StablePathSort(removedFields) {
		handler.FieldRemoved(classID, oldC.FieldMap[k])
	}
	handler.EndFieldsRemoved()

	handler.StartMethodsRemoved()
	for _, k := range sortutil.StablePathSort(removedMethods) {
		handler.MethodRemoved(classID, oldC.MethodMap[k])
	}
	handler.EndMethodsRemoved()

	handler.StartFieldsAdded()
	for _, k := range sortutil.StablePathSort(addedFields) {
		handler.FieldAdded(classID, newC.FieldMap[k])
	}
	handler.EndFieldsAdded()

	handler.StartMethodsAdded()
	for _, k := range sortutil.StablePathSort(addedMethods) {
		handler.MethodAdded(classID, newC.MethodMap[k])
	}
	handler.EndMethodsAdded()

	if classDiffers {
		if !oldC.IsDeprecated() && newC.IsDeprecated() &&
			!criteria.DiffersClass(oldC.CloneWithDeprecated(), newC) {
			handler.ClassDeprecated(classID, oldC, newC)
		} else {
			handler.ClassChanged(classID, oldC, newC)
		}
	}

	for _, k := range sortutil.StablePathSort(changedFields) {
		emitFieldChange(handler, criteria, classID, oldC.FieldMap[k], newC.FieldMap[k])
	}
	for _, k := range sortutil.StablePathSort(changedMethods) {
		emitMethodChange(handler, criteria, classID, oldC.MethodMap[k], newC.MethodMap[k])
	}

	handler.EndClassChanged(classID)
}

// memberBuckets computes the removed/added/changed key sets for one
// member kind, applying the inherited-member reconciliation: a member
// only counts as removed if no new-side supertype still provides it.
func memberBuckets[T any](oldMap, newMap map[string]T, extendedNew map[string]T, validOld, validNew func(string) bool) (removed, added, changed []string) {
	removedSet := make(map[string]struct{})
	for k := range oldMap {
		if validOld(k) {
			removedSet[k] = struct{}{}
		}
	}
	addedSet := make(map[string]struct{})
	for k := range newMap {
		if validNew(k) {
			addedSet[k] = struct{}{}
		}
	}
	changedSet := make(map[string]struct{})
	for k := range removedSet {
		if _, ok := newMap[k]; ok {
			changedSet[k] = struct{}{}
		}
	}
	for k := range changedSet {
		delete(removedSet, k)
	}
	for k := range extendedNew {
		delete(removedSet, k)
	}
	for k := range changedSet {
		delete(addedSet, k)
	}

	for k := range removedSet {
		removed = append(removed, k)
	}
	for k := range addedSet {
		added = append(added, k)
	}
	for k := range changedSet {
		changed = append(changed, k)
	}
	return removed, added, changed
}

// filterDifferentFields keeps only the changed-bucket keys where
// criteria.DiffersField holds or the deprecated bit was newly set; the
// latter are reported by emitFieldChange's deprecation-only shortcut.
func filterDifferentFields(keys []string, oldMap, newMap map[string]*classinfo.FieldInfo, criteria diffcriteria.Criteria) []string {
	out := keys[:0]
	for _, k := range keys {
		oldF, newF := oldMap[k], newMap[k]
		if criteria.DiffersField(oldF, newF) || (!oldF.IsDeprecated() && newF.IsDeprecated()) {
			out = append(out, k)
		}
	}
	return out
}

// filterDifferentMethods is filterDifferentFields's method counterpart.
func filterDifferentMethods(keys []string, oldMap, newMap map[string]*classinfo.MethodInfo, criteria diffcriteria.Criteria) []string {
	out := keys[:0]
	for _, k := range keys {
		oldM, newM := oldMap[k], newMap[k]
		if criteria.DiffersMethod(oldM, newM) || (!oldM.IsDeprecated() && newM.IsDeprecated()) {
			out = append(out, k)
		}
	}
	return out
}

// emitFieldChange applies the deprecation-only shortcut and binary-
// incompatibility downgrade to one changed field.
func emitFieldChange(handler diffhandler.Handler, criteria diffcriteria.Criteria, classID string, oldF, newF *classinfo.FieldInfo) {
	if !oldF.IsDeprecated() && newF.IsDeprecated() &&
		!criteria.DiffersField(oldF.CloneWithDeprecated(), newF) {
		handler.FieldDeprecated(classID, oldF, newF)
		return
	}
	if criteria.DiffersBinaryField(oldF, newF) {
		handler.FieldChanged(classID, oldF, newF)
		return
	}
	handler.FieldChangedCompat(classID, oldF, newF)
}

// emitMethodChange is emitFieldChange's method counterpart.
func emitMethodChange(handler diffhandler.Handler, criteria diffcriteria.Criteria, classID string, oldM, newM *classinfo.MethodInfo) {
	if !oldM.IsDeprecated() && newM.IsDeprecated() &&
		!criteria.DiffersMethod(oldM.CloneWithDeprecated(), newM) {
		handler.MethodDeprecated(classID, oldM, newM)
		return
	}
	if criteria.DiffersBinaryMethod(oldM, newM) {
		handler.MethodChanged(classID, oldM, newM)
		return
	}
	handler.MethodChangedCompat(classID, oldM, newM)
}

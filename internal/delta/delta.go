package delta

import (
	"fmt"
	"sort"
)

// CompatibilityType classifies the strongest difference present in a Delta.
type CompatibilityType int

const (
	BackwardCompatibleImplementer CompatibilityType = iota
	BackwardCompatibleUser
	NonBackwardCompatible
)

func (c CompatibilityType) String() string {
	switch c {
	case BackwardCompatibleImplementer:
		return "BACKWARD_COMPATIBLE_IMPLEMENTER"
	case BackwardCompatibleUser:
		return "BACKWARD_COMPATIBLE_USER"
	case NonBackwardCompatible:
		return "NON_BACKWARD_COMPATIBLE"
	default:
		return "UNKNOWN"
	}
}

// Delta aggregates the set of Differences produced by one internal/differ
// run. It is immutable after construction.
type Delta struct {
	differences []Difference
	oldIsDev    bool
}

// NewDelta builds a Delta from an unordered slice of Differences, sorting
// them into the canonical (classId, kind, name) order. oldIsDev records
// whether the *old* snapshot's baseline version is a development (major=0)
// version; it is reported by OldIsDevelopment, while Infer and Validate
// decide development status from the versions passed to them.
func NewDelta(differences []Difference, oldIsDev bool) *Delta {
	cp := make([]Difference, len(differences))
	copy(cp, differences)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	return &Delta{differences: cp, oldIsDev: oldIsDev}
}

// Differences returns a defensive copy of the aggregated differences in
// canonical order.
func (d *Delta) Differences() []Difference {
	out := make([]Difference, len(d.differences))
	copy(out, d.differences)
	return out
}

// OldIsDevelopment reports whether the delta's baseline old version is a
// pre-1.0 development version.
func (d *Delta) OldIsDevelopment() bool { return d.oldIsDev }

// Category computes the compatibility category from the strongest
// difference kind present: any change or removal is non-backward-
// compatible, an add or deprecation is user-backward-compatible, and an
// empty or compat-only delta is implementer-backward-compatible.
func (d *Delta) Category() CompatibilityType {
	sawAdd := false
	sawDeprecate := false
	for _, diff := range d.differences {
		switch diff.Kind {
		case KindChange, KindRemove:
			return NonBackwardCompatible
		case KindAdd:
			sawAdd = true
		case KindDeprecate:
			sawDeprecate = true
		}
	}
	if sawAdd || sawDeprecate {
		return BackwardCompatibleUser
	}
	return BackwardCompatibleImplementer
}

// categoryElement maps a compatibility category to the Version.Element it
// bumps.
func categoryElement(cat CompatibilityType) Element {
	switch cat {
	case NonBackwardCompatible:
		return Major
	case BackwardCompatibleUser:
		return Minor
	default:
		return Patch
	}
}

// InferNextVersion infers the next version from a baseline and a
// compatibility category, independent of any particular Delta.
// Delta.Infer is a thin wrapper around this for the receiver's own
// category.
func InferNextVersion(baseline *Version, cat *CompatibilityType) (Version, error) {
	if baseline == nil || cat == nil {
		return Version{}, fmt.Errorf("%w: infer requires a non-nil baseline version and category", ErrInvalidArgument)
	}
	if baseline.IsDevelopment() {
		return Version{}, fmt.Errorf("%w: development version %s is not inferable", ErrInvalidArgument, baseline)
	}
	return baseline.Next(categoryElement(*cat)), nil
}

// Infer infers the next version from baseline given this Delta's category.
func (d *Delta) Infer(baseline *Version) (Version, error) {
	cat := d.Category()
	return InferNextVersion(baseline, &cat)
}

// Validate reports whether current is an acceptable next version given
// previous and this Delta's category.
func (d *Delta) Validate(previous, current *Version) (bool, error) {
	if previous == nil || current == nil {
		return false, fmt.Errorf("%w: validate requires non-nil previous and current versions", ErrInvalidArgument)
	}
	if !previous.Less(*current) {
		return false, fmt.Errorf("%w: current version %s must be greater than previous version %s", ErrInvalidArgument, current, previous)
	}
	if previous.IsDevelopment() {
		return true, nil
	}
	minimum, err := d.Infer(previous)
	if err != nil {
		return false, err
	}
	return !current.Less(minimum), nil
}

package delta

import (
	"fmt"
	"strconv"
	"strings"
)

// Element names a version component bumped by Next.
type Element int

const (
	Major Element = iota
	Minor
	Patch
)

// Version is a semantic version triple with an optional pre-release tag,
// following the grammar MAJOR.MINOR.PATCH(<sep><preRelease>)?.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Sep        rune   // zero value if no pre-release is present
	PreRelease string // empty if no pre-release is present
}

// HasPreRelease reports whether a pre-release tag is present.
func (v Version) HasPreRelease() bool { return v.PreRelease != "" }

// IsDevelopment reports whether this is a pre-1.0 development version.
func (v Version) IsDevelopment() bool { return v.Major == 0 }

// String formats the version using that grammar, re-emitting whatever
// separator rune was parsed (or '-' if none was ever seen and a
// pre-release is nonetheless present).
func (v Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if !v.HasPreRelease() {
		return base
	}
	sep := v.Sep
	if sep == 0 {
		sep = '-'
	}
	return base + string(sep) + v.PreRelease
}

// ParseVersion parses a version string in MAJOR.MINOR.PATCH(<sep><pre>)?
// form. sep is the delimiter the caller expects to introduce a
// pre-release tag (commonly '-'); if the string carries none, Sep/
// PreRelease are left zero.
func ParseVersion(s string, sep rune) (Version, error) {
	rest := s
	pre := ""
	var actualSep rune
	if idx := strings.IndexRune(s, sep); idx >= 0 {
		rest = s[:idx]
		pre = s[idx+len(string(sep)):]
		actualSep = sep
	}
	parts := strings.SplitN(rest, ".", 3)
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: version %q must have MAJOR.MINOR.PATCH", ErrInvalidArgument, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: version %q component %q is not a non-negative integer", ErrInvalidArgument, s, p)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Sep: actualSep, PreRelease: pre}, nil
}

// Compare orders versions lexicographically on (major, minor, patch), with
// a pre-release strictly less than no-pre-release at the same triple, and
// pre-release tags themselves compared lexicographically.
func (v Version) Compare(o Version) int {
	if d := v.Major - o.Major; d != 0 {
		return sign(d)
	}
	if d := v.Minor - o.Minor; d != 0 {
		return sign(d)
	}
	if d := v.Patch - o.Patch; d != 0 {
		return sign(d)
	}
	switch {
	case v.HasPreRelease() && !o.HasPreRelease():
		return -1
	case !v.HasPreRelease() && o.HasPreRelease():
		return 1
	case v.HasPreRelease() && o.HasPreRelease():
		return strings.Compare(v.PreRelease, o.PreRelease)
	default:
		return 0
	}
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Less reports v < o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// Next returns the version obtained by bumping the given element and
// zeroing every lower-order element.
func (v Version) Next(e Element) Version {
	switch e {
	case Major:
		return Version{Major: v.Major + 1}
	case Minor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case Patch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}

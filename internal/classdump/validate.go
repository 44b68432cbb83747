package classdump

import (
	"errors"
	"fmt"
	"strings"
)

// errlist aggregates multiple validation issues into a single error,
// the same way a bundle-manifest validator would, repurposed here for
// one class-dump document.
type errlist struct {
	msgs []string
}

func (e *errlist) add(format string, args ...any) {
	e.msgs = append(e.msgs, fmt.Sprintf(format, args...))
}

func (e *errlist) err() error {
	if len(e.msgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(e.msgs, "; "))
}

// validateClassDump checks structural constraints a class-dump document
// must satisfy before it can be replayed into a classreader.Builder: a
// non-empty class name, and that every field/method carries a name and a
// descriptor. Duplicate-key detection is left to
// classreader.Builder, which is the sole authority on what counts as a
// malformed class.
func validateClassDump(d classDump) error {
	var errs errlist

	if strings.TrimSpace(d.Name) == "" {
		errs.add("class name must be non-empty")
	}
	for i, f := range d.Fields {
		if strings.TrimSpace(f.Name) == "" {
			errs.add("fields[%d]: name must be non-empty", i)
		}
		if strings.TrimSpace(f.Desc) == "" {
			errs.add("fields[%d] (%s): desc must be non-empty", i, f.Name)
		}
	}
	for i, m := range d.Methods {
		if strings.TrimSpace(m.Name) == "" {
			errs.add("methods[%d]: name must be non-empty", i)
		}
		if strings.TrimSpace(m.Desc) == "" {
			errs.add("methods[%d] (%s): desc must be non-empty", i, m.Name)
		}
	}

	return errs.err()
}

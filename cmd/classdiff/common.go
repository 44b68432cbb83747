package main

import (
	"fmt"
	"log/slog"

	"github.com/sgothel/classdiff/internal/classdump"
	"github.com/sgothel/classdiff/internal/classinfo"
	"github.com/sgothel/classdiff/internal/delta"
	"github.com/sgothel/classdiff/internal/diffcriteria"
	"github.com/sgothel/classdiff/internal/differ"
	"github.com/sgothel/classdiff/internal/diffhandler"
	"github.com/sgothel/classdiff/internal/obslog"
)

// buildCriteria resolves the --criteria flag into one of the three
// canonical diffcriteria.Criteria variants.
func buildCriteria(name string, includePrivate bool) (diffcriteria.Criteria, error) {
	switch name {
	case "public":
		return diffcriteria.NewPublic(), nil
	case "public-protected":
		return diffcriteria.NewPublicProtected(), nil
	case "simple":
		return diffcriteria.NewSimple(includePrivate), nil
	default:
		return nil, fmt.Errorf("unknown --criteria %q (want public, public-protected, or simple)", name)
	}
}

// diffResult bundles a computed Delta together with the two class maps it
// was computed from, so --verbose can render a changed class's full
// contract without re-reading the class-dump directories.
type diffResult struct {
	delta      *delta.Delta
	oldClasses map[string]*classinfo.ClassInfo
	newClasses map[string]*classinfo.ClassInfo
}

// runDiff loads both class-dump directories and drives internal/differ
// into an accumulating handler, returning the resulting Delta plus the
// class maps it was built from.
func runDiff(oldDir, newDir string, criteria diffcriteria.Criteria, oldLabel, newLabel string, oldIsDev bool, logger *slog.Logger) (*diffResult, error) {
	if logger == nil {
		logger = obslog.Discard()
	}

	oldClasses, err := classdump.LoadDir(oldDir, logger)
	if err != nil {
		return nil, fmt.Errorf("loading old snapshot: %w", err)
	}
	newClasses, err := classdump.LoadDir(newDir, logger)
	if err != nil {
		return nil, fmt.Errorf("loading new snapshot: %w", err)
	}

	h := diffhandler.NewAccumulatingHandler()
	if err := differ.Diff(h, criteria, oldLabel, newLabel, oldClasses, newClasses); err != nil {
		return nil, fmt.Errorf("diffing: %w", err)
	}
	return &diffResult{delta: h.Delta(oldIsDev), oldClasses: oldClasses, newClasses: newClasses}, nil
}

package classdump

import (
	"fmt"

	"github.com/sgothel/classdiff/internal/classinfo"
)

var accessNames = map[string]classinfo.Access{
	"public":       classinfo.Public,
	"private":      classinfo.Private,
	"protected":    classinfo.Protected,
	"static":       classinfo.Static,
	"final":        classinfo.Final,
	"super":        classinfo.Super,
	"synchronized": classinfo.Synchronized,
	"volatile":     classinfo.Volatile,
	"bridge":       classinfo.Bridge,
	"varargs":      classinfo.Varargs,
	"transient":    classinfo.Transient,
	"native":       classinfo.Native,
	"interface":    classinfo.Interface,
	"abstract":     classinfo.Abstract,
	"strict":       classinfo.Strict,
	"synthetic":    classinfo.Synthetic,
	"annotation":   classinfo.Annotation,
	"enum":         classinfo.Enum,
	"deprecated":   classinfo.Deprecated,
}

// parseAccess decodes a class-dump's human-readable access-flag names into
// the classinfo.Access bitmask.
func parseAccess(names []string) (classinfo.Access, error) {
	var a classinfo.Access
	for _, n := range names {
		bit, ok := accessNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown access flag %q", n)
		}
		a |= bit
	}
	return a, nil
}

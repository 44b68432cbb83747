// Package report renders human-readable diagnostics for the CLI's
// --verbose flag: a Dumper-style textual description of a single class,
// and unified-diff text for throws-clause/interface-set changes. Nothing
// in internal/differ or internal/delta depends on this package — it is a
// pure consumer of their output.
package report

import (
	"fmt"
	"sort"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/sgothel/classdiff/internal/classinfo"
)

// DescribeClass renders a single ClassInfo's declared contract: its
// access flags, supername, interfaces, and sorted field/method summaries.
// Mirrors org.semver.Dumper's one-class-at-a-time textual report.
func DescribeClass(c *classinfo.ClassInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s%s\n", c.Name, accessSuffix(c.Access))
	if c.Supername != "" {
		fmt.Fprintf(&b, "  extends %s\n", c.Supername)
	}
	for _, iface := range sortedCopy(c.Interfaces) {
		fmt.Fprintf(&b, "  implements %s\n", iface)
	}
	for _, key := range sortedMapKeys(c.FieldMap) {
		f := c.FieldMap[key]
		fmt.Fprintf(&b, "  field %s %s%s\n", f.Desc, f.Name, accessSuffix(f.Access))
	}
	for _, key := range sortedMapKeys(c.MethodMap) {
		m := c.MethodMap[key]
		fmt.Fprintf(&b, "  method %s%s%s\n", m.Name, m.Desc, accessSuffix(m.Access))
	}
	return b.String()
}

// ThrowsClauseDiff renders a unified diff between two methods' sorted
// throws clauses, for --verbose CompatChange reporting.
func ThrowsClauseDiff(label string, oldM, newM *classinfo.MethodInfo) (string, error) {
	u := difflib.UnifiedDiff{
		A:        linesOf(oldM.Exceptions),
		B:        linesOf(newM.Exceptions),
		FromFile: label + " (old throws)",
		ToFile:   label + " (new throws)",
		Context:  len(oldM.Exceptions) + len(newM.Exceptions),
	}
	return difflib.GetUnifiedDiffString(u)
}

// InterfaceSetDiff renders a unified diff between two classes' sorted
// implemented-interface lists.
func InterfaceSetDiff(label string, oldC, newC *classinfo.ClassInfo) (string, error) {
	u := difflib.UnifiedDiff{
		A:        linesOf(oldC.Interfaces),
		B:        linesOf(newC.Interfaces),
		FromFile: label + " (old interfaces)",
		ToFile:   label + " (new interfaces)",
		Context:  len(oldC.Interfaces) + len(newC.Interfaces),
	}
	return difflib.GetUnifiedDiffString(u)
}

func linesOf(ss []string) []string {
	sorted := sortedCopy(ss)
	out := make([]string, len(sorted))
	for i, s := range sorted {
		out[i] = s + "\n"
	}
	return out
}

func sortedCopy(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	sort.Strings(out)
	return out
}

func sortedMapKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func accessSuffix(a classinfo.Access) string {
	var flags []string
	if a.IsPublic() {
		flags = append(flags, "public")
	}
	if a.IsProtected() {
		flags = append(flags, "protected")
	}
	if a.IsPrivate() {
		flags = append(flags, "private")
	}
	if a.IsStatic() {
		flags = append(flags, "static")
	}
	if a.IsFinal() {
		flags = append(flags, "final")
	}
	if a.IsAbstract() {
		flags = append(flags, "abstract")
	}
	if a.IsDeprecated() {
		flags = append(flags, "deprecated")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ",") + "]"
}

package classdump

import (
	"os"
	"path/filepath"
	"testing"
)

const classXJSON = `{
	"version": 61,
	"access": ["public"],
	"name": "a/X",
	"supername": "java/lang/Object",
	"fields": [
		{"access": ["public", "static", "final"], "name": "F", "desc": "I", "value": {"type": "I", "data": 1}}
	],
	"methods": [
		{"access": ["public"], "name": "m", "desc": "()V"}
	]
}`

const malformedJSON = `{
	"version": 61,
	"access": ["public"],
	"name": "a/Bad",
	"methods": [
		{"access": ["public"], "name": "m", "desc": "()V"},
		{"access": ["public"], "name": "m", "desc": "()V"}
	]
}`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

func TestLoadDirDecodesClassDump(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.X.json", classXJSON)

	classes, err := LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	c, ok := classes["a/X"]
	if !ok {
		t.Fatalf("expected class a/X, got %v", classes)
	}
	if !c.Access.IsPublic() {
		t.Fatalf("expected class a/X to be public")
	}
	m, ok := c.MethodMap["m()V"]
	if !ok {
		t.Fatalf("expected method m()V, got %v", c.MethodMap)
	}
	if !m.Access.IsPublic() {
		t.Fatalf("expected method m to be public")
	}
	f, ok := c.FieldMap["F"]
	if !ok || f.Value == nil || f.Value.Type != "I" {
		t.Fatalf("expected field F with wire type I, got %v", f)
	}
}

func TestLoadDirSkipsMalformedEntriesButKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.X.json", classXJSON)
	writeFixture(t, dir, "a.Bad.json", malformedJSON)

	classes, err := LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if _, ok := classes["a/X"]; !ok {
		t.Fatalf("expected a/X to still load despite a/Bad.json's duplicate method key")
	}
	if _, ok := classes["a/Bad"]; ok {
		t.Fatalf("expected a/Bad to be skipped, not partially loaded")
	}
}

func TestLoadDirOnAllMalformedFails(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.Bad.json", malformedJSON)

	if _, err := LoadDir(dir, nil); err == nil {
		t.Fatalf("expected an error when every entry is malformed")
	}
}

func TestLoadDirOnEmptyDirectorySucceeds(t *testing.T) {
	dir := t.TempDir()
	classes, err := LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir on empty dir: %v", err)
	}
	if len(classes) != 0 {
		t.Fatalf("expected no classes, got %v", classes)
	}
}

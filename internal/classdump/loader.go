package classdump

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"

	"github.com/sgothel/classdiff/internal/classinfo"
	"github.com/sgothel/classdiff/internal/classreader"
	"github.com/sgothel/classdiff/internal/textutil"
	"github.com/sgothel/classdiff/internal/walkwalk"
)

var jsonExt = map[string]struct{}{".json": {}}

// LoadDir walks dir for *.json class-dump documents and decodes each into
// an internal/classinfo.ClassInfo, keyed by class id (its VM-internal
// name). Malformed or invalid entries are logged and skipped rather than
// aborting the whole run, per the ambient logging contract; LoadDir only
// fails outright if dir itself cannot be walked or if every entry failed.
func LoadDir(dir string, logger *slog.Logger) (map[string]*classinfo.ClassInfo, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	files, err := walkwalk.CollectFiles(dir, jsonExt)
	if err != nil {
		return nil, fmt.Errorf("classdump: walk %s: %w", dir, err)
	}

	classes := make(map[string]*classinfo.ClassInfo, len(files))
	paths := make(map[string]string, len(files))
	var loaded, skipped int
	for _, fi := range files {
		c, err := loadOne(fi.AbsPath)
		if err != nil {
			logger.Warn("classdump: skipping malformed entry", "path", fi.RelPath, "error", err)
			skipped++
			continue
		}
		if _, dup := classes[c.Name]; dup {
			logger.Warn("classdump: duplicate class id, keeping first", "classId", c.Name, "keptPath", paths[c.Name], "skippedPath", fi.RelPath)
			skipped++
			continue
		}
		classes[c.Name] = c
		paths[c.Name] = fi.RelPath
		loaded++
	}

	if loaded == 0 && len(files) > 0 {
		return nil, fmt.Errorf("classdump: all %d entries under %s were malformed", len(files), dir)
	}
	logger.Info("classdump: loaded directory", "dir", dir, "loaded", loaded, "skipped", skipped)
	return classes, nil
}

// loadOne decodes and replays a single class-dump JSON document.
func loadOne(path string) (*classinfo.ClassInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	raw = textutil.NormalizeUTF8LF(raw)

	var d classDump
	if err := sonic.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validateClassDump(d); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return replay(d)
}

// replay drives a fresh classreader.Builder through the decoded
// document's header/field/method events, exactly the way an external byte-
// level VMCF parser would.
func replay(d classDump) (*classinfo.ClassInfo, error) {
	b := classreader.NewBuilder()

	access, err := parseAccess(d.Access)
	if err != nil {
		return nil, fmt.Errorf("class %s: access: %w", d.Name, err)
	}
	if err := b.VisitHeader(d.Version, access, d.Name, d.Signature, d.Supername, d.Interfaces); err != nil {
		return nil, err
	}

	for _, f := range d.Fields {
		fAccess, err := parseAccess(f.Access)
		if err != nil {
			return nil, fmt.Errorf("class %s field %s: access: %w", d.Name, f.Name, err)
		}
		if err := b.VisitField(fAccess, f.Name, f.Desc, f.Signature, toFieldValue(f.Value)); err != nil {
			return nil, err
		}
	}
	for _, m := range d.Methods {
		mAccess, err := parseAccess(m.Access)
		if err != nil {
			return nil, fmt.Errorf("class %s method %s: access: %w", d.Name, m.Name, err)
		}
		if err := b.VisitMethod(mAccess, m.Name, m.Desc, m.Signature, m.Exceptions); err != nil {
			return nil, err
		}
	}

	return b.VisitEnd()
}

func toFieldValue(v *fieldValueDump) *classinfo.FieldValue {
	if v == nil {
		return nil
	}
	return &classinfo.FieldValue{Type: v.Type, Data: v.Data}
}

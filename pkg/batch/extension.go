package batch

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExtensionSet is an immutable, case-sensitive set of file extensions
// including the leading dot.
type ExtensionSet struct {
	exts map[string]struct{}
}

// NewExtensionSet copies exts into a new set.
func NewExtensionSet(exts ...string) ExtensionSet {
	set := ExtensionSet{exts: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		set.exts[ext] = struct{}{}
	}
	return set
}

// Contains reports whether ext is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s.exts[ext]
	return ok
}

// Allows reports whether the extension of path is in the set.
func (s ExtensionSet) Allows(path string) bool {
	return s.Contains(Ext(path))
}

// List returns the extensions in sorted order.
func (s ExtensionSet) List() []string {
	list := make([]string, 0, len(s.exts))
	for ext := range s.exts {
		list = append(list, ext)
	}
	sort.Strings(list)
	return list
}

// String joins the sorted extensions with ", ".
func (s ExtensionSet) String() string {
	return strings.Join(s.List(), ", ")
}

// Ext returns the extension of the base name of path: the suffix starting at
// the final dot. Leading dots of the base name do not start an extension, so
// ".bashrc" and "..." have none.
func Ext(path string) string {
	base := filepath.Base(path)
	name := strings.TrimLeft(base, ".")
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i:]
}

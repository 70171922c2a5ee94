package recording

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// SurfaceFactory makes a fresh, unstarted surface.
type SurfaceFactory func() WriterSurface

// Format is a registered output format.
type Format struct {
	// Name selects the format explicitly, e.g. "raster".
	Name string
	// Extension is the lower-case file extension its surfaces encode,
	// e.g. ".png".
	Extension string

	factory SurfaceFactory
}

// New makes a surface of this format.
func (f Format) New() WriterSurface {
	return f.factory()
}

var (
	formatsMu sync.RWMutex
	formats   = make(map[string]Format)
	// extensions maps an extension to the first format registered for it.
	extensions = make(map[string]string)
)

// Register makes a format available by name and by the extension its
// surfaces report. Surface packages call it from init:
//
//	func init() {
//	    recording.Register("svg", func() recording.WriterSurface {
//	        return NewBackend()
//	    })
//	}
//
// The extension is read from one unstarted surface, which is then
// dropped; factories must not acquire resources before Begin. When two
// formats report the same extension, the first keeps it and the second is
// reachable by name only.
//
// Register panics on an empty name, a nil factory, or a duplicate name.
func Register(name string, factory SurfaceFactory) {
	if name == "" {
		panic("recording: Register with empty name")
	}
	if factory == nil {
		panic("recording: Register factory is nil")
	}
	ext := strings.ToLower(factory().Extension())

	formatsMu.Lock()
	defer formatsMu.Unlock()

	if _, dup := formats[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	formats[name] = Format{Name: name, Extension: ext, factory: factory}
	if _, taken := extensions[ext]; ext != "" && !taken {
		extensions[ext] = name
	}
}

// Unregister removes a format. It is meant for tests.
func Unregister(name string) {
	formatsMu.Lock()
	defer formatsMu.Unlock()

	f, ok := formats[name]
	if !ok {
		return
	}
	delete(formats, name)
	if extensions[f.Extension] == name {
		delete(extensions, f.Extension)
	}
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	f, ok := formats[name]
	return f, ok
}

// ForPath returns the format whose extension matches path, ignoring case.
func ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Format{}, false
	}

	formatsMu.RLock()
	defer formatsMu.RUnlock()
	name, ok := extensions[ext]
	if !ok {
		return Format{}, false
	}
	return formats[name], true
}

// NewSurface makes a surface of the named format.
func NewSurface(name string) (WriterSurface, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("recording: unknown surface %q (forgotten import?)", name)
	}
	return f.New(), nil
}

// Formats returns the registered formats sorted by name.
func Formats() []Format {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

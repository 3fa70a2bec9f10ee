package ggline

import (
	"sort"
	"sync"
)

// Algorithm is a line rasterizer passed around as a value: it plots the
// segment from (x0, y0) to (x1, y1) in color c into s.
type Algorithm func(s Sink, x0, y0, x1, y1 int, c RGBA)

// NewBresenham returns Bresenham bound to opts.
func NewBresenham(opts ...Option) Algorithm {
	return func(s Sink, x0, y0, x1, y1 int, c RGBA) {
		Bresenham(s, x0, y0, x1, y1, c, opts...)
	}
}

// NewWu returns Wu bound to opts.
func NewWu(opts ...Option) Algorithm {
	return func(s Sink, x0, y0, x1, y1 int, c RGBA) {
		Wu(s, x0, y0, x1, y1, c, opts...)
	}
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Algorithm{}
)

func init() {
	registry["bresenham"] = NewBresenham()
	registry["wu"] = NewWu()
}

// Register makes an algorithm available under name. Registering a name
// again replaces the previous entry. A nil algorithm removes the name.
//
// Sub-packages call Register from init, so importing them is enough to
// make their algorithm available:
//
//	import _ "github.com/gogpu/ggline/reference"
func Register(name string, alg Algorithm) {
	registryMu.Lock()
	_, replaced := registry[name]
	if alg == nil {
		delete(registry, name)
	} else {
		registry[name] = alg
	}
	registryMu.Unlock()

	if replaced && alg != nil {
		Logger().Warn("ggline: algorithm replaced", "name", name)
	} else {
		Logger().Debug("ggline: algorithm registered", "name", name, "removed", alg == nil)
	}
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	alg, ok := registry[name]
	return alg, ok
}

// Algorithms returns the registered names in sorted order.
func Algorithms() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}

package main

import (
	"maps"
)

// Some funcs are known for forcing the success payload out of a
// (value, error) outcome, panicking or substituting a fallback when the
// error is set. A bare-statement call of such a func both forces and
// drops the payload, which is exactly the unwrap-family discard shape.
type knownForceFuncs struct {
	known map[packagedFunc]ForceKind
}

func newKnownForceFuncs(custom map[packagedFunc]ForceKind) *knownForceFuncs {
	predefined := map[packagedFunc]ForceKind{
		// samber/lo is the most common must-helper source around.
		{pkgPath: "github.com/samber/lo", name: "Must"}:  ForceKindUnwrap,
		{pkgPath: "github.com/samber/lo", name: "Must0"}: ForceKindUnwrap,
		{pkgPath: "github.com/samber/lo", name: "Must1"}: ForceKindUnwrap,
		{pkgPath: "github.com/samber/lo", name: "Must2"}: ForceKindUnwrap,
	}

	if custom == nil {
		custom = map[packagedFunc]ForceKind{}
	} else {
		custom = maps.Clone(custom)
	}

	maps.Insert(custom, maps.All(predefined))

	return &knownForceFuncs{
		known: custom,
	}
}

// kindOf returns the registered kind of the function, if any.
func (f *knownForceFuncs) kindOf(fn packagedFunc) (ForceKind, bool) {
	kind, ok := f.known[fn]
	return kind, ok
}

package main

import (
	"fmt"

	"github.com/sirkon/ioful/internal/lint"
	"github.com/sirkon/ioful/internal/lir"
)

// capSpec describes one known partial-transfer capability interface and
// the canonical operations its methods stand for.
type capSpec struct {
	trait   lir.Reference
	kind    CapKind
	methods map[string]string // declared method name → canonical operation
}

// Partial-transfer capabilities are interfaces whose methods may process
// fewer bytes than requested, returning a count that must be checked.
// io.Reader and io.Writer are always known; configs may add project-local
// equivalents, including vectored variants the stdlib does not have.
type knownCapabilities struct {
	known map[lir.Reference]capSpec
	order []lir.Reference
}

func newKnownCapabilities(custom []CapabilitySpec) (*knownCapabilities, error) {
	predefined := []capSpec{
		{
			trait:   lir.Reference{Package: "io", Name: "Reader"},
			kind:    CapKindRead,
			methods: map[string]string{"Read": lint.OpRead},
		},
		{
			trait:   lir.Reference{Package: "io", Name: "Writer"},
			kind:    CapKindWrite,
			methods: map[string]string{"Write": lint.OpWrite},
		},
	}

	caps := &knownCapabilities{
		known: map[lir.Reference]capSpec{},
	}

	for _, c := range custom {
		methods := make(map[string]string, len(c.Methods))
		for name, op := range c.Methods {
			canon, err := canonOp(c.Kind, op)
			if err != nil {
				return nil, fmt.Errorf("capability %s, method %s: %w", c.Trait.String(), name, err)
			}
			methods[name] = canon
		}

		caps.add(capSpec{
			trait:   c.Trait.LIR(),
			kind:    c.Kind,
			methods: methods,
		})
	}

	// Predefined defs shadow custom ones on collision.
	for _, c := range predefined {
		caps.add(c)
	}

	return caps, nil
}

func (c *knownCapabilities) add(spec capSpec) {
	if _, ok := c.known[spec.trait]; !ok {
		c.order = append(c.order, spec.trait)
	}
	c.known[spec.trait] = spec
}

// ofKind returns the interfaces of the given kind in registration order.
func (c *knownCapabilities) ofKind(kind CapKind) []lir.Reference {
	var out []lir.Reference
	for _, ref := range c.order {
		if c.known[ref].kind == kind {
			out = append(out, ref)
		}
	}

	return out
}

// operation maps a declared method name to its canonical operation. A
// name no capability declares has no canonical operation, and calls to it
// can never be classified.
func (c *knownCapabilities) operation(methodName string) (string, bool) {
	for _, ref := range c.order {
		if op, ok := c.known[ref].methods[methodName]; ok {
			return op, true
		}
	}

	return "", false
}

package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/ioful/internal/lint"
)

type packagedFunc struct {
	pkgPath string
	name    string
}

// ForceKind describes varieties of must-style helpers: functions that
// force the success payload out of a (value, error) outcome and panic or
// substitute on failure. A helper's kind decides which unwrap-family
// method name its calls lower to.
type ForceKind int

const (
	ForceKindInvalid ForceKind = iota

	// ForceKindExpect panics with a caller-supplied message.
	ForceKindExpect

	// ForceKindUnwrap panics with a generic message.
	ForceKindUnwrap

	// ForceKindUnwrapOr substitutes a caller-supplied fallback value.
	ForceKindUnwrapOr

	// ForceKindUnwrapOrElse substitutes a lazily computed fallback value.
	ForceKindUnwrapOrElse
)

var forceKindValueMap = map[ForceKind]string{
	ForceKindExpect:       "expect",
	ForceKindUnwrap:       "unwrap",
	ForceKindUnwrapOr:     "unwrap-or",
	ForceKindUnwrapOrElse: "unwrap-or-else",
}

func (k ForceKind) String() string {
	v, ok := forceKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (k *ForceKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range forceKindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown force helper kind %q", text)
}

// UnmarshalYAML delegates to UnmarshalText: yaml.v3 does not look at
// encoding.TextUnmarshaler on its own.
func (k *ForceKind) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}

// Method returns the unwrap-family method name calls of this kind lower to.
func (k ForceKind) Method() string {
	switch k {
	case ForceKindExpect:
		return lint.ForceExpect
	case ForceKindUnwrap:
		return lint.ForceUnwrap
	case ForceKindUnwrapOr:
		return lint.ForceUnwrapOr
	case ForceKindUnwrapOrElse:
		return lint.ForceUnwrapOrElse
	default:
		return ""
	}
}

// CapKind describes which side of the partial-transfer contract a
// capability interface belongs to.
type CapKind int

const (
	CapKindInvalid CapKind = iota
	CapKindRead
	CapKindWrite
)

var capKindValueMap = map[CapKind]string{
	CapKindRead:  "read",
	CapKindWrite: "write",
}

func (k CapKind) String() string {
	v, ok := capKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

func (k *CapKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range capKindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown capability kind %q", text)
}

func (k *CapKind) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}

// MethodOp describes how a capability method maps onto the canonical
// operations: a plain partial-transfer call or its vectored variant.
type MethodOp int

const (
	MethodOpInvalid MethodOp = iota
	MethodOpPlain
	MethodOpVectored
)

var methodOpValueMap = map[MethodOp]string{
	MethodOpPlain:    "plain",
	MethodOpVectored: "vectored",
}

func (o MethodOp) String() string {
	v, ok := methodOpValueMap[o]
	if !ok {
		return fmt.Sprintf("invalid(%d)", o)
	}

	return v
}

func (o *MethodOp) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range methodOpValueMap {
		if v == text {
			*o = key
			return nil
		}
	}

	return fmt.Errorf("unknown method operation %q", text)
}

func (o *MethodOp) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}

	return o.UnmarshalText([]byte(s))
}

// canonOp resolves a (capability kind, method operation) pair into the
// canonical operation name of the engine.
func canonOp(kind CapKind, op MethodOp) (string, error) {
	switch {
	case kind == CapKindRead && op == MethodOpPlain:
		return lint.OpRead, nil
	case kind == CapKindRead && op == MethodOpVectored:
		return lint.OpReadVectored, nil
	case kind == CapKindWrite && op == MethodOpPlain:
		return lint.OpWrite, nil
	case kind == CapKindWrite && op == MethodOpVectored:
		return lint.OpWriteVectored, nil
	default:
		return "", fmt.Errorf("no canonical operation for kind %s and method operation %s", kind, op)
	}
}

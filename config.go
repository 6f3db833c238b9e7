package main

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/ioful/internal/lir"
)

// Config extends the predefined capability and helper tables. All entries
// are optional; an empty config means stock io.Reader/io.Writer checking.
type Config struct {
	// ForceHelpers lists must-style functions whose bare-statement calls
	// count as forcing and dropping a call's outcome.
	ForceHelpers []ForceHelperSpec `yaml:"force-helpers"`

	// Capabilities lists additional partial-transfer interfaces beyond
	// io.Reader and io.Writer.
	Capabilities []CapabilitySpec `yaml:"capabilities"`

	// OutcomeAdapter names a conversion function that may wrap the real
	// call inside a propagation construct.
	OutcomeAdapter *Reference `yaml:"outcome-adapter"`
}

// ForceHelperSpec registers one must-style helper.
type ForceHelperSpec struct {
	Ref  Reference `yaml:"ref"`
	Kind ForceKind `yaml:"kind"`
}

// CapabilitySpec registers one partial-transfer capability interface with
// its method operation mapping.
type CapabilitySpec struct {
	Trait   Reference           `yaml:"trait"`
	Kind    CapKind             `yaml:"kind"`
	Methods map[string]MethodOp `yaml:"methods"`
}

// loadConfig reads and parses the YAML config at path.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	for _, c := range cfg.Capabilities {
		if c.Kind == CapKindInvalid {
			return nil, fmt.Errorf("capability %s: kind is required", c.Trait.String())
		}
	}
	for _, f := range cfg.ForceHelpers {
		if f.Kind == ForceKindInvalid {
			return nil, fmt.Errorf("force helper %s: kind is required", f.Ref.String())
		}
	}

	return &cfg, nil
}

// Reference is a full twin of [lir.Reference] defined for proper layer isolation.
type Reference struct {
	Package string
	Type    string
	Name    string
}

func (r *Reference) LIR() lir.Reference {
	return lir.Reference{
		Package: r.Package,
		Type:    r.Type,
		Name:    r.Name,
	}
}

func (r Reference) String() string {
	v, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("reference-invalid(%q, %q, %q)", r.Package, r.Type, r.Name)
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Reference)(nil)

func (r *Reference) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}

	return r.UnmarshalText([]byte(s))
}

func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	// Expected forms:
	//   "pkg/path".Name
	//   "pkg/path".Type.Name

	// 1) split at the quoted package
	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted package in reference: %q", s)
	}
	end++ // include the first quote

	pkg := s[1:end]
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in reference: %q", s)
	}

	rest := strings.TrimPrefix(s[end+1:], ".")
	if rest == "" {
		return fmt.Errorf("reference must contain a name: %q", s)
	}

	parts := strings.Split(rest, ".")
	if len(parts) < 1 || len(parts) > 2 {
		return fmt.Errorf("reference must have 1 or 2 identifiers after package: %q", s)
	}

	for _, p := range parts {
		if !isIdent(p) {
			return fmt.Errorf("invalid identifier %q in reference %q", p, s)
		}
	}

	r.Package = pkg
	switch len(parts) {
	case 1:
		r.Type = ""
		r.Name = parts[0]
	case 2:
		r.Type = parts[0]
		r.Name = parts[1]
	}

	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Package")
	}
	if r.Name == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Name")
	}

	// Base: "pkg"
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteByte('"')
	b.WriteByte('.')

	// Optional type
	if r.Type != "" {
		b.WriteString(r.Type)
		b.WriteByte('.')
	}

	// Name
	b.WriteString(r.Name)

	return []byte(b.String()), nil
}

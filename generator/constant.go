package generator

import (
	"encoding/binary"
	"strings"
)

// Constant represents a generated constant, Value is already literal-ready
type Constant struct {
	Name  string // Constant name before identifier sanitization
	Value string // Literal value, emitted verbatim
}

// Hash returns structural hash of the constant
func (c Constant) Hash() uint64 {
	return Hash(c.encode(nil))
}

func (c Constant) encode(dest []byte) []byte {
	dest = appendField(dest, c.Name)
	return appendField(dest, c.Value)
}

// String returns constant description
func (c Constant) String() string {
	return "Name: " + c.Name + "; Value: " + c.Value
}

// Set represents an immutable, ordered sequence of constants.
// Two sets are equal when they hold the same constants in the same order.
type Set struct {
	constants []Constant
}

// NewSet creates a set with a copy of the supplied constants
func NewSet(constants ...Constant) Set {
	if len(constants) == 0 {
		return Set{}
	}
	items := make([]Constant, len(constants))
	copy(items, constants)
	return Set{constants: items}
}

// Len returns number of constants
func (s Set) Len() int {
	return len(s.constants)
}

// At returns constant at index
func (s Set) At(index int) Constant {
	return s.constants[index]
}

// Constants returns a copy of the set constants
func (s Set) Constants() []Constant {
	result := make([]Constant, len(s.constants))
	copy(result, s.constants)
	return result
}

// Has returns true if any constant uses the supplied name
func (s Set) Has(name string) bool {
	for _, candidate := range s.constants {
		if candidate.Name == name {
			return true
		}
	}
	return false
}

// Append returns a new set with constants added after the receiver's
func (s Set) Append(constants ...Constant) Set {
	items := make([]Constant, 0, len(s.constants)+len(constants))
	items = append(items, s.constants...)
	items = append(items, constants...)
	return Set{constants: items}
}

// Equal returns true if both sets hold pairwise equal constants in order
func (s Set) Equal(other Set) bool {
	if len(s.constants) != len(other.constants) {
		return false
	}
	for i := range s.constants {
		if s.constants[i] != other.constants[i] {
			return false
		}
	}
	return true
}

// Hash returns structural hash, equal sets always hash equal
func (s Set) Hash() uint64 {
	data := binary.AppendUvarint(nil, uint64(len(s.constants)))
	for _, constant := range s.constants {
		data = constant.encode(data)
	}
	return Hash(data)
}

// String returns set description
func (s Set) String() string {
	builder := &strings.Builder{}
	builder.WriteString("[")
	for i, constant := range s.constants {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(constant.String())
	}
	builder.WriteString("]")
	return builder.String()
}

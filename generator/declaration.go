package generator

import "strings"

// ArgumentType represents the literal type of a declaration argument
type ArgumentType string

const (
	ArgumentString     ArgumentType = "string"
	ArgumentBool       ArgumentType = "bool"
	ArgumentNumber     ArgumentType = "number"
	ArgumentChar       ArgumentType = "char"
	ArgumentNull       ArgumentType = "null"
	ArgumentExpression ArgumentType = "expression"
)

// Argument represents a constructor-style declaration argument
type Argument struct {
	Type  ArgumentType // Literal type
	Value string       // Raw, unescaped value
}

// String creates a string argument
func String(value string) Argument {
	return Argument{Type: ArgumentString, Value: value}
}

// Literal returns literal-ready form of the argument
func (a Argument) Literal() string {
	switch a.Type {
	case ArgumentString:
		return Quote(a.Value)
	case ArgumentChar:
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(a.Value) + "'"
	case ArgumentNull:
		return ""
	default:
		return a.Value
	}
}

// Text returns raw text of the argument
func (a Argument) Text() string {
	if a.Type == ArgumentNull {
		return ""
	}
	return a.Value
}

// Declaration represents a module level annotation as discovered by a host
type Declaration struct {
	Kind      string     // Declaration kind, e.g. AssemblyVersionAttribute
	Arguments []Argument // Constructor arguments in order
}

// NewDeclaration creates a declaration with string arguments
func NewDeclaration(kind string, args ...string) Declaration {
	ret := Declaration{Kind: kind, Arguments: make([]Argument, 0, len(args))}
	for _, arg := range args {
		ret.Arguments = append(ret.Arguments, String(arg))
	}
	return ret
}

// Entry represents a classified declaration, either SingleValue or KeyValue
type Entry interface {
	entry()
}

// SingleValue represents a one-argument declaration
type SingleValue struct {
	Name  string // Constant name derived from the declaration kind
	Value string // Literal-ready value
}

// KeyValue represents a two-argument metadata declaration
type KeyValue struct {
	Key   string // Raw key text
	Value string // Literal-ready value
}

func (SingleValue) entry() {}

func (KeyValue) entry() {}

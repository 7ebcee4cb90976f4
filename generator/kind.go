package generator

import "strings"

// Kinds represents the table of recognized declaration kinds
type Kinds struct {
	Names    []string // Recognized declaration kinds
	Prefix   string   // Prefix stripped from single-argument kinds
	Suffix   string   // Suffix stripped from single-argument kinds
	Metadata string   // Two-argument key/value kind

	index map[string]bool
}

// DefaultKinds returns assembly attribute kinds
func DefaultKinds() *Kinds {
	return NewKinds("Assembly", "Attribute", "AssemblyMetadataAttribute",
		"AssemblyCompanyAttribute",
		"AssemblyConfigurationAttribute",
		"AssemblyCopyrightAttribute",
		"AssemblyCultureAttribute",
		"AssemblyDelaySignAttribute",
		"AssemblyDescriptionAttribute",
		"AssemblyFileVersionAttribute",
		"AssemblyInformationalVersionAttribute",
		"AssemblyKeyFileAttribute",
		"AssemblyKeyNameAttribute",
		"AssemblyMetadataAttribute",
		"AssemblyProductAttribute",
		"AssemblySignatureKeyAttribute",
		"AssemblyTitleAttribute",
		"AssemblyTrademarkAttribute",
		"AssemblyVersionAttribute",
		"NeutralResourcesLanguageAttribute",
		"TargetFrameworkAttribute",
		"UserSecretsIdAttribute",
	)
}

// NewKinds creates a kind table
func NewKinds(prefix, suffix, metadata string, names ...string) *Kinds {
	ret := &Kinds{Prefix: prefix, Suffix: suffix, Metadata: metadata, Names: names}
	ret.init()
	return ret
}

func (k *Kinds) init() {
	k.index = make(map[string]bool, len(k.Names))
	for _, name := range k.Names {
		k.index[name] = true
	}
}

// Recognized returns true if kind is in the table
func (k *Kinds) Recognized(kind string) bool {
	if k.index != nil {
		return k.index[kind]
	}
	for _, name := range k.Names {
		if name == kind {
			return true
		}
	}
	return false
}

// ConstantName derives constant name from a single-argument kind
func (k *Kinds) ConstantName(kind string) string {
	name := kind
	if k.Prefix != "" && len(name) > len(k.Prefix) && strings.HasPrefix(name, k.Prefix) {
		name = name[len(k.Prefix):]
	}
	if k.Suffix != "" && len(name) > len(k.Suffix) && strings.HasSuffix(name, k.Suffix) {
		name = name[:len(name)-len(k.Suffix)]
	}
	return name
}

// Classify maps a declaration to its entry, ok is false for unrecognized or malformed declarations
func (k *Kinds) Classify(declaration Declaration) (Entry, bool) {
	if !k.Recognized(declaration.Kind) {
		return nil, false
	}
	switch len(declaration.Arguments) {
	case 1:
		return SingleValue{
			Name:  k.ConstantName(declaration.Kind),
			Value: declaration.Arguments[0].Literal(),
		}, true
	case 2:
		if declaration.Kind != k.Metadata {
			return nil, false
		}
		return KeyValue{
			Key:   declaration.Arguments[0].Text(),
			Value: declaration.Arguments[1].Literal(),
		}, true
	}
	return nil, false
}

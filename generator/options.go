package generator

// Reserved fallback constant names
const (
	AssemblyNameConstant    = "AssemblyName"
	DefineConstantsConstant = "DefineConstants"
	RootNamespaceConstant   = "RootNamespace"
)

// Options represents build configuration supplied by the host
type Options struct {
	AssemblyName          string `yaml:"assemblyName,omitempty"`          // Configured module identity name
	DefineConstants       string `yaml:"defineConstants,omitempty"`       // Build define string
	RootNamespace         string `yaml:"rootNamespace,omitempty"`         // Root namespace
	ThisAssemblyNamespace string `yaml:"thisAssemblyNamespace,omitempty"` // Namespace wrapping generated output
	FallbackAssemblyName  string `yaml:"-"`                               // Compilation name used when AssemblyName is empty
}

// Resolve appends fallback constants missing from set, existing constants are never overwritten
func (o *Options) Resolve(set Set) Set {
	var fallbacks []Constant
	if !set.Has(AssemblyNameConstant) {
		name := o.AssemblyName
		if name == "" {
			name = o.FallbackAssemblyName
		}
		fallbacks = append(fallbacks, Constant{Name: AssemblyNameConstant, Value: Quote(name)})
	}
	if !set.Has(DefineConstantsConstant) && o.DefineConstants != "" {
		fallbacks = append(fallbacks, Constant{Name: DefineConstantsConstant, Value: Quote(o.DefineConstants)})
	}
	if !set.Has(RootNamespaceConstant) && o.RootNamespace != "" {
		fallbacks = append(fallbacks, Constant{Name: RootNamespaceConstant, Value: Quote(o.RootNamespace)})
	}
	if len(fallbacks) == 0 {
		return set
	}
	return set.Append(fallbacks...)
}

// Merge returns options with empty fields filled from other
func (o Options) Merge(other Options) Options {
	if o.AssemblyName == "" {
		o.AssemblyName = other.AssemblyName
	}
	if o.DefineConstants == "" {
		o.DefineConstants = other.DefineConstants
	}
	if o.RootNamespace == "" {
		o.RootNamespace = other.RootNamespace
	}
	if o.ThisAssemblyNamespace == "" {
		o.ThisAssemblyNamespace = other.ThisAssemblyNamespace
	}
	if o.FallbackAssemblyName == "" {
		o.FallbackAssemblyName = other.FallbackAssemblyName
	}
	return o
}

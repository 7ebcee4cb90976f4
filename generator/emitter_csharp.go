package generator

// CSharpEmitter renders constants as a C# static class
type CSharpEmitter struct{}

// CSharpArtifact is the C# artifact name
const CSharpArtifact = "AssemblyMetadata.g.cs"

// Name returns artifact name
func (e *CSharpEmitter) Name() string {
	return CSharpArtifact
}

// Emit renders set as ThisAssembly class constants
func (e *CSharpEmitter) Emit(set Set, namespace string) ([]byte, error) {
	w := &codeWriter{}
	w.line("// <auto-generated />").line()

	if namespace != "" {
		w.line("namespace ", namespace).line("{")
		w.indent++
	}

	w.line("/// <summary>").
		line("/// Assembly attributes exposed as public constants").
		line("/// </summary>")
	w.line(`[global::System.CodeDom.Compiler.GeneratedCodeAttribute("`, generatorName, `", "`, Version, `")]`)
	w.line("[global::System.Diagnostics.DebuggerNonUserCodeAttribute]").
		line("[global::System.Diagnostics.DebuggerStepThroughAttribute]").
		line("internal static partial class ThisAssembly").
		line("{")
	w.indent++
	w.line()

	for _, constant := range set.constants {
		w.line("public const string ", SafeName(constant.Name), " = ", constant.Value, ";").line()
	}

	w.indent--
	w.line("}")

	if namespace != "" {
		w.indent--
		w.line("}")
	}
	return w.bytes(), nil
}

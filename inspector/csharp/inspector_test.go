package csharp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/inspector/csharp"
)

func TestInspector_InspectSource(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		expected    []generator.Declaration
		diagnostics int
	}{
		{
			name: "assembly attributes",
			source: `using System.Reflection;
using System.Runtime.Versioning;

[assembly: TargetFramework(".NETCoreApp,Version=v8.0", FrameworkDisplayName = ".NET 8.0")]
[assembly: AssemblyMetadata("Serviceable", "True")]
[assembly: AssemblyCompany("LoreSoft")]
[assembly: System.Reflection.AssemblyVersion("1.0.0.0")]
[assembly: AssemblyDelaySignAttribute(false)]
`,
			expected: []generator.Declaration{
				generator.NewDeclaration("TargetFrameworkAttribute", ".NETCoreApp,Version=v8.0"),
				generator.NewDeclaration("AssemblyMetadataAttribute", "Serviceable", "True"),
				generator.NewDeclaration("AssemblyCompanyAttribute", "LoreSoft"),
				generator.NewDeclaration("AssemblyVersionAttribute", "1.0.0.0"),
				{Kind: "AssemblyDelaySignAttribute", Arguments: []generator.Argument{{Type: generator.ArgumentBool, Value: "false"}}},
			},
		},
		{
			name: "escaped and verbatim literals",
			source: `[assembly: AssemblyMetadata("Verify.ProjectDirectory", "D:\\Projects\\")]
[assembly: AssemblyMetadata("Verify.SolutionDirectory", @"D:\Solution\")]
[assembly: AssemblyDescription("as constants in the global \"AssemblyMetadata\" \\ class")]
`,
			expected: []generator.Declaration{
				generator.NewDeclaration("AssemblyMetadataAttribute", "Verify.ProjectDirectory", `D:\Projects\`),
				generator.NewDeclaration("AssemblyMetadataAttribute", "Verify.SolutionDirectory", `D:\Solution\`),
				generator.NewDeclaration("AssemblyDescriptionAttribute", `as constants in the global "AssemblyMetadata" \ class`),
			},
		},
		{
			name: "type attributes ignored",
			source: `[assembly: AssemblyTitle("App")]

namespace App
{
    [Serializable]
    [Obsolete("not assembly")]
    public class Foo {}
}
`,
			expected: []generator.Declaration{
				generator.NewDeclaration("AssemblyTitleAttribute", "App"),
			},
		},
		{
			name:   "named arguments skipped",
			source: `[assembly: AssemblyMetadata("RepositoryUrl", "https://github.com/loresoft/AssemblyMetadata", Description = "repo")]`,
			expected: []generator.Declaration{
				generator.NewDeclaration("AssemblyMetadataAttribute", "RepositoryUrl", "https://github.com/loresoft/AssemblyMetadata"),
			},
		},
		{
			name:   "unsupported argument",
			source: `[assembly: AssemblyTitle(nameof(System))]` + "\n" + `[assembly: AssemblyProduct("App")]`,
			expected: []generator.Declaration{
				generator.NewDeclaration("AssemblyProductAttribute", "App"),
			},
			diagnostics: 1,
		},
	}

	inspector := csharp.NewInspector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := inspector.InspectSource([]byte(tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, source.Declarations)
			assert.Len(t, source.Diagnostics, tt.diagnostics)
		})
	}
}

func TestInspector_InspectPackage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Properties"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "obj"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Properties", "AssemblyInfo.cs"), []byte(`[assembly: AssemblyCompany("LoreSoft")]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "obj", "Generated.AssemblyInfo.cs"), []byte(`[assembly: AssemblyCompany("Ignored")]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Program.cs"), []byte(`class Program {}`), 0o644))

	pkg, err := csharp.NewInspector(nil).InspectPackage(dir)
	require.NoError(t, err)
	assert.Equal(t, []generator.Declaration{generator.NewDeclaration("AssemblyCompanyAttribute", "LoreSoft")}, pkg.Declarations())
}

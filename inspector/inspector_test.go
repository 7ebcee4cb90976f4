package inspector_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/inspector"
	"github.com/viant/thisassembly/inspector/info"
	"github.com/viant/thisassembly/inspector/repository"
)

func TestFactory_GetInspector(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantErr   bool
		inspector string
	}{
		{
			name:      "C# file",
			filename:  "AssemblyInfo.cs",
			wantErr:   false,
			inspector: "csharp",
		},
		{
			name:      "Go file",
			filename:  "main.go",
			wantErr:   false,
			inspector: "golang",
		},
		{
			name:      "Manifest",
			filename:  "thisassembly.yaml",
			wantErr:   false,
			inspector: "manifest",
		},
		{
			name:      "Unsupported file",
			filename:  "test.cpp",
			wantErr:   true,
			inspector: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := inspector.NewFactory(info.DefaultConfig())

			insp, err := factory.GetInspector(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("Factory.GetInspector() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if insp == nil {
					t.Errorf("Factory.GetInspector() returned nil inspector")
					return
				}

				inspType := GetInspectorType(insp)
				if !strings.Contains(inspType, tt.inspector) {
					t.Errorf("Factory.GetInspector() returned %s inspector, want %s", inspType, tt.inspector)
				}
			}
		})
	}
}

// GetInspectorType returns the package path of the inspector implementation
func GetInspectorType(i interface{}) string {
	return reflect.TypeOf(i).String()
}

func TestFactory_InspectProject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "App.csproj"), []byte(`<Project><PropertyGroup><RootNamespace>App</RootNamespace></PropertyGroup></Project>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "AssemblyInfo.cs"), []byte(`[assembly: AssemblyCompany("LoreSoft")]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "thisassembly.yaml"), []byte("declarations:\n  - kind: AssemblyMetadata\n    args: [RepositoryUrl, \"https://x\"]\n"), 0o644))

	project, err := repository.New().DetectProject(context.Background(), root)
	require.NoError(t, err)

	pkg, err := inspector.NewFactory(nil).InspectProject(project, "")
	require.NoError(t, err)
	assert.Equal(t, []generator.Declaration{
		generator.NewDeclaration("AssemblyCompanyAttribute", "LoreSoft"),
		generator.NewDeclaration("AssemblyMetadataAttribute", "RepositoryUrl", "https://x"),
	}, pkg.Declarations())
}

func TestFactory_InspectProject_ManifestOptions(t *testing.T) {
	root := t.TempDir()
	manifestPath := filepath.Join(root, "meta.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("options:\n  assemblyName: Custom\ndeclarations:\n  - kind: AssemblyTitle\n    args: [Title]\n"), 0o644))

	project, err := repository.New().DetectProject(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, repository.TypeUnknown, project.Type)

	pkg, err := inspector.NewFactory(nil).InspectProject(project, manifestPath)
	require.NoError(t, err)
	assert.Equal(t, "Custom", pkg.Options().AssemblyName)
	assert.Equal(t, []generator.Declaration{generator.NewDeclaration("AssemblyTitleAttribute", "Title")}, pkg.Declarations())
}

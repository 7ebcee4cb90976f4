package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/internal/output"
)

func newCSharpProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "LoreSoft.App.csproj"), []byte(`<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <RootNamespace>LoreSoft.App</RootNamespace>
  </PropertyGroup>
</Project>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "AssemblyInfo.cs"), []byte(`using System.Reflection;

[assembly: AssemblyCompany("LoreSoft")]
[assembly: AssemblyVersion("1.0.0.0")]
[assembly: AssemblyMetadata("RepositoryUrl", "https://x")]
`), 0o644))
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestGenerateCmd_CSharp(t *testing.T) {
	root := newCSharpProject(t)

	_, err := execute(t, "generate", root)
	require.NoError(t, err)

	artifact := filepath.Join(root, generator.CSharpArtifact)
	content, err := os.ReadFile(artifact)
	require.NoError(t, err)
	source := string(content)
	assert.Contains(t, source, `public const string Company = "LoreSoft";`)
	assert.Contains(t, source, `public const string RepositoryUrl = "https://x";`)
	assert.Contains(t, source, `public const string AssemblyName = "LoreSoft.App";`)
	assert.Contains(t, source, `public const string RootNamespace = "LoreSoft.App";`)

	info, err := os.Stat(artifact)
	require.NoError(t, err)
	_, err = execute(t, "generate", root)
	require.NoError(t, err)
	again, err := os.Stat(artifact)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())
}

func TestGenerateCmd_DryRun(t *testing.T) {
	root := newCSharpProject(t)

	stdout, err := execute(t, "generate", root, "--dry-run", "--language", "go", "--namespace", "meta", "--assembly-name", "Custom")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package meta")
	assert.Contains(t, stdout, `Company = "LoreSoft"`)
	assert.Contains(t, stdout, `AssemblyName = "Custom"`)
	_, err = os.Stat(filepath.Join(root, generator.GoArtifact))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCmd_NoDeclarations(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "App.csproj"), []byte(`<Project />`), 0o644))

	_, err := execute(t, "generate", root)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, generator.CSharpArtifact))
	assert.True(t, os.IsNotExist(err))
}

func TestVersionCmd(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, generator.Version)
}

func TestLogDiagnostic(t *testing.T) {
	tests := []struct {
		severity generator.Severity
		level    string
	}{
		{severity: generator.SeverityError, level: "ERRO"},
		{severity: generator.SeverityWarning, level: "WARN"},
		{severity: generator.SeverityInfo, level: "INFO"},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			buf := &bytes.Buffer{}
			output.SetupLoggingTo(buf, false)
			logDiagnostic("App", generator.Diagnostic{Severity: tt.severity, Code: "TA0001", Message: "syntax error", Location: "AssemblyInfo.cs:3"})
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "syntax error")
			assert.Contains(t, buf.String(), "code=TA0001")
		})
	}
}

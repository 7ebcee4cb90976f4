package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		literal  string
		expected string
		wantErr  bool
	}{
		{literal: `"plain"`, expected: "plain"},
		{literal: `"a\\b\"c\""`, expected: `a\b"c"`},
		{literal: `"\r\n\t"`, expected: "\r\n\t"},
		{literal: `"\u00A9 2023"`, expected: "© 2023"},
		{literal: `"\x41"`, expected: "A"},
		{literal: `@"C:\dir\""quoted"""`, expected: `C:\dir\"quoted"`},
		{literal: `"""raw "text" """`, expected: `raw "text" `},
		{literal: "\"\"\"\n    line one\n      line two\n    \"\"\"", expected: "line one\n  line two"},
		{literal: `"utf8"u8`, expected: "utf8"},
		{literal: `"bad\q"`, wantErr: true},
		{literal: `"\u12"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			actual, err := decodeString(tt.literal)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestNormalizeKind(t *testing.T) {
	assert.Equal(t, "AssemblyVersionAttribute", normalizeKind("AssemblyVersion"))
	assert.Equal(t, "AssemblyVersionAttribute", normalizeKind("AssemblyVersionAttribute"))
	assert.Equal(t, "AssemblyVersionAttribute", normalizeKind("System.Reflection.AssemblyVersion"))
	assert.Equal(t, "AssemblyVersionAttribute", normalizeKind("global::System.Reflection.AssemblyVersionAttribute"))
}

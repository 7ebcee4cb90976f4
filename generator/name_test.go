package generator_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/viant/thisassembly/generator"
)

func TestSafeName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "testName", expected: "TestName"},
		{input: "test Name", expected: "TestName"},
		{input: "test_Name", expected: "TestName"},
		{input: " test Name", expected: "TestName"},
		{input: "123testName", expected: "TestName"},
		{input: "%testName", expected: "TestName"},
		{input: "Who am I?", expected: "WhoAmI"},
		{input: "Hello|Who|Am|I?", expected: "HelloWhoAmI"},
		{input: "", expected: ""},
		{input: "123", expected: ""},
		{input: "Verify.ProjectDirectory", expected: "VerifyProjectDirectory"},
		{input: "v2 api", expected: "V2Api"},
		{input: "ünïcode näme", expected: "ÜnïcodeNäme"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			assert.Equal(t, testCase.expected, generator.SafeName(testCase.input))
		})
	}
}

func TestSafeName_Totality(t *testing.T) {
	inputs := []string{
		"", " ", "1", "_a", "a_1_b", "🙂smile", "Ω-omega", "\t\n", "9lives 9lives", "x́y",
	}
	for _, input := range inputs {
		actual := generator.SafeName(input)
		if actual == "" {
			continue
		}
		runes := []rune(actual)
		assert.True(t, unicode.IsLetter(runes[0]), "%q must start with letter", actual)
		assert.False(t, unicode.IsLower(runes[0]), "%q must not start lower-cased", actual)
		for _, r := range runes {
			assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r), "%q holds %q", actual, r)
		}
	}
}

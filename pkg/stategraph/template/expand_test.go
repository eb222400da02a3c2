package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_BraceStyle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		vars     map[string]any
		expected string
	}{
		{
			name:     "single variable",
			input:    "Summarize this ${doc_type}:",
			vars:     map[string]any{"doc_type": "contract"},
			expected: "Summarize this contract:",
		},
		{
			name:     "multiple variables",
			input:    "${greeting}, ${name}!",
			vars:     map[string]any{"greeting": "Hello", "name": "World"},
			expected: "Hello, World!",
		},
		{
			name:     "repeated variable",
			input:    "${x} and ${x}",
			vars:     map[string]any{"x": "again"},
			expected: "again and again",
		},
		{
			name:     "non-string value",
			input:    "score: ${score}",
			vars:     map[string]any{"score": 7.5},
			expected: "score: 7.5",
		},
		{
			name:     "no placeholders",
			input:    "plain text",
			vars:     map[string]any{"unused": "x"},
			expected: "plain text",
		},
		{
			name:     "empty string",
			input:    "",
			vars:     map[string]any{"x": "y"},
			expected: "",
		},
		{
			name:     "missing kept by default",
			input:    "keep ${unknown} here",
			vars:     map[string]any{},
			expected: "keep ${unknown} here",
		},
	}

	exp := NewExpander()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := exp.Expand(tt.input, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpand_DollarStyleOffByDefault(t *testing.T) {
	exp := NewExpander()
	result, err := exp.Expand("price is $amount", map[string]any{"amount": "100"})
	require.NoError(t, err)
	assert.Equal(t, "price is $amount", result)
}

func TestExpand_DollarStyleOptIn(t *testing.T) {
	exp := NewExpander(WithDollarStyle(true))

	result, err := exp.Expand("hello $name, and ${name} too", map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "hello Ada, and Ada too", result)

	// $doc must not match inside $docType.
	result, err = exp.Expand("$doc vs $docType", map[string]any{"doc": "a", "docType": "b"})
	require.NoError(t, err)
	assert.Equal(t, "a vs b", result)
}

func TestExpand_MissingEmpty(t *testing.T) {
	exp := NewExpander(WithMissingAction(MissingEmpty))
	result, err := exp.Expand("before ${gone} after", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "before  after", result)
}

func TestExpand_MissingError(t *testing.T) {
	exp := NewExpander(WithMissingAction(MissingError))

	_, err := exp.Expand("${a} ${b} ${c}", map[string]any{"b": "ok"})
	require.Error(t, err)

	var undefErr *UndefinedVariableError
	require.ErrorAs(t, err, &undefErr)
	assert.Equal(t, []string{"a", "c"}, undefErr.Names)
	assert.Contains(t, err.Error(), "undefined variables: a, c")
}

func TestExpand_MissingErrorSingular(t *testing.T) {
	exp := NewExpander(WithMissingAction(MissingError))
	_, err := exp.Expand("${only}", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, "undefined variable: only", err.Error())
}

func TestMustExpand(t *testing.T) {
	exp := NewExpander(WithMissingAction(MissingError))

	assert.Equal(t, "hi Ada", exp.MustExpand("hi ${name}", map[string]any{"name": "Ada"}))

	assert.Panics(t, func() {
		exp.MustExpand("hi ${name}", map[string]any{})
	})
}

func TestExpandAll(t *testing.T) {
	exp := NewExpander()

	results, err := exp.ExpandAll([]string{"${a}", "${b}"}, map[string]any{"a": "1", "b": "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, results)

	results, err = exp.ExpandAll(nil, map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestExpandAll_PropagatesError(t *testing.T) {
	exp := NewExpander(WithMissingAction(MissingError))
	results, err := exp.ExpandAll([]string{"${ok}", "${missing}"}, map[string]any{"ok": "1"})
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestExpand_PackageLevel(t *testing.T) {
	assert.Equal(t, "x=1 ${y}", Expand("x=${x} ${y}", map[string]any{"x": 1}))
}

func TestExpand_BraceStyleDisabled(t *testing.T) {
	exp := NewExpander(WithBraceStyle(false), WithDollarStyle(true))
	result, err := exp.Expand("${a} $a", map[string]any{"a": "v"})
	require.NoError(t, err)
	// Only the bare style expands; regex treats ${a} as "$" + "{a}" which
	// does not match the identifier pattern.
	assert.Equal(t, "${a} v", result)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/objects/pkg/schema"
)

type mapping struct {
	in, want any
}

// checkNormalization asserts that each mapping normalizes as expected, that
// normalizing the result again is a no-op, and that every invalid value is
// rejected with a normalization error.
func checkNormalization(t *testing.T, typeName string, mappings []mapping, invalid []any) {
	t.Helper()
	reg := NewRegistry()

	for _, m := range mappings {
		got, err := reg.Normalize(typeName, m.in)
		require.NoError(t, err, "normalizing %#v as %s", m.in, typeName)
		assert.Equal(t, m.want, got, "normalizing %#v as %s", m.in, typeName)

		again, err := reg.Normalize(typeName, got)
		require.NoError(t, err, "re-normalizing %#v as %s", got, typeName)
		assert.Equal(t, got, again, "%s is not idempotent", typeName)
	}

	for _, v := range invalid {
		_, err := reg.Normalize(typeName, v)
		assert.ErrorIs(t, err, schema.ErrNormalization, "%#v should not normalize as %s", v, typeName)
	}
}

func TestNull(t *testing.T) {
	checkNormalization(t, TypeNull,
		[]mapping{{"", nil}, {"20", nil}, {nil, nil}},
		nil)
}

func TestBoolean(t *testing.T) {
	checkNormalization(t, TypeBoolean,
		[]mapping{
			{"", false}, {"   ", false}, {"false", false}, {" FALSE\n", false},
			{"true", true}, {false, false}, {true, true}, {nil, false},
		},
		[]any{map[string]any{}, []any{}, []any{"a"}, "aabcc", "no", "0", 1, 0.0})
}

func TestReal(t *testing.T) {
	checkNormalization(t, TypeReal,
		[]mapping{
			{20, 20.0}, {"20", 20.0}, {"02", 2.0}, {"0", 0.0}, {-1, -1.0},
			{"-1", -1.0}, {3.00, 3.0}, {3.05, 3.05}, {"3.05", 3.05},
		},
		[]any{"a", "", map[string]any{"a": 3}, []any{3}, nil, true})
}

func TestInt(t *testing.T) {
	checkNormalization(t, TypeInt,
		[]mapping{
			{20, 20}, {"20", 20}, {"02", 2}, {"0", 0},
			{"-1", -1}, {-1, -1}, {3.00, 3}, {3.05, 3},
		},
		[]any{"a", "", map[string]any{"a": 3}, []any{3}, nil})
}

func TestNonnegativeInt(t *testing.T) {
	checkNormalization(t, TypeNonnegativeInt,
		[]mapping{{20, 20}, {"20", 20}, {"02", 2}, {"0", 0}, {3.00, 3}, {3.05, 3}},
		[]any{"a", "", map[string]any{"a": 3}, []any{3}, nil, -1, "-1"})
}

func TestCodeEvaluation(t *testing.T) {
	valid1 := map[string]any{"code": "a", "output": "", "evaluation": "", "error": ""}
	valid2 := map[string]any{"code": "", "output": "", "evaluation": "", "error": "e"}
	checkNormalization(t, TypeCodeEvaluation,
		[]mapping{{valid1, valid1}, {valid2, valid2}},
		[]any{
			map[string]any{"code": "", "output": "", "evaluation": ""},
			"a", []any{}, nil,
		})
}

func TestCoordTwoDim(t *testing.T) {
	checkNormalization(t, TypeCoordTwoDim,
		[]mapping{
			{[]any{3.5, 1.3}, []any{3.5, 1.3}},
			{[]any{0, 1}, []any{0.0, 1.0}},
		},
		[]any{"123", "a", []any{0, 1, 2}, nil, "-1, 2.2", " -1 , 3.5"})
}

func TestListOfUnicodeString(t *testing.T) {
	checkNormalization(t, TypeListOfUnicodeString,
		[]mapping{{[]any{"b", "a"}, []any{"b", "a"}}, {[]any{}, []any{}}},
		[]any{"123", map[string]any{"a": 1}, 3.0, nil, []any{3, "a"}, []any{1, 2, 1}, []any{"a", "a"}})
}

func TestSetOfUnicodeString(t *testing.T) {
	checkNormalization(t, TypeSetOfUnicodeString,
		[]mapping{
			{[]any{"ff", "a", "¡Hola!"}, []any{"ff", "a", "¡Hola!"}},
			{[]any{}, []any{}},
			{[]any{"ab", "abc", "cb"}, []any{"ab", "abc", "cb"}},
		},
		[]any{
			"123", map[string]any{"a": 1}, 3.0, nil, []any{3, "a"},
			[]any{"a", "a", "b"}, []any{"ab", "abc", "ab"},
		})
}

func TestUnicodeString(t *testing.T) {
	checkNormalization(t, TypeUnicodeString,
		[]mapping{{"Abc   def", "Abc   def"}, {"¡Hola!", "¡Hola!"}},
		[]any{3.0, map[string]any{"a": 1}, []any{1, 2, 1}, nil})
}

func TestNormalizedString(t *testing.T) {
	checkNormalization(t, TypeNormalizedString,
		[]mapping{{"Abc   def", "Abc def"}, {"¡hola!", "¡hola!"}},
		[]any{3.0, map[string]any{"a": 1}, []any{1, 2, 1}, nil})
}

func TestMathLatexString(t *testing.T) {
	checkNormalization(t, TypeMathLatexString,
		[]mapping{{"123456789", "123456789"}, {`x \times y`, `x \times y`}},
		[]any{3.0, map[string]any{"a": 1}, []any{1, 2, 1}, nil})
}

func TestFilepath(t *testing.T) {
	checkNormalization(t, TypeFilepath,
		[]mapping{{"assets/image.png", "assets/image.png"}},
		[]any{3.0, nil})
}

func TestHTML(t *testing.T) {
	checkNormalization(t, TypeHTML,
		[]mapping{
			{`<p onclick="evil_function()">a paragraph</p>`, "<p>a paragraph</p>"},
			{`<iframe src="evil-site"></iframe>`, ""},
			{"¡Hola!", "¡Hola!"},
			{`<a href="evil-site">spam spam SPAM!</a>`, "<a>spam spam SPAM!</a>"},
		},
		[]any{map[string]any{"a": 1}, []any{1, 2, 1}, nil})
}

func TestSanitizedURL(t *testing.T) {
	checkNormalization(t, TypeSanitizedURL,
		[]mapping{
			{"http://www.google.com", "http://www.google.com"},
			{"https://www.google.com", "https://www.google.com"},
			{"https://www.google!.com", "https://www.google%21.com"},
		},
		[]any{"http://¡Hola!.com", "javascript:alert(5);", "ftp://gopher.com", "test", "google.com", "", 5})
}

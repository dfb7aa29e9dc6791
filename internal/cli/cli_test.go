package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/objects"
	"github.com/aretw0/objects/pkg/catalog"
	"github.com/aretw0/objects/pkg/registry"
	"github.com/aretw0/objects/pkg/sanitize"
	"github.com/aretw0/objects/pkg/schema"
)

func newCatalog(t *testing.T) *objects.Catalog {
	t.Helper()
	cat, _, err := NewCatalog(Options{})
	require.NoError(t, err)
	return cat
}

func TestDecodeDocument(t *testing.T) {
	v, err := DecodeDocument([]byte(`{"src": 0, "big": 9007199254740993}`), FormatJSON)
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.Equal(t, json.Number("9007199254740993"), m["big"])

	v, err = DecodeDocument([]byte("- a\n- b\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, v)

	_, err = DecodeDocument([]byte(`{"a": 1} {"b": 2}`), FormatJSON)
	assert.Error(t, err)

	_, err = DecodeDocument([]byte(`x`), "toml")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("in.json", nil))
	assert.Equal(t, FormatYAML, DetectFormat("in.YML", nil))
	assert.Equal(t, FormatJSON, DetectFormat("", []byte("  [1, 2]")))
	assert.Equal(t, FormatYAML, DetectFormat("", []byte("a: 1")))
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[3.5, 1.3]\n"), 0o644))

	v, err := LoadDocument(path, FormatAuto, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{3.5, 1.3}, v)

	v, err = LoadDocument("-", FormatAuto, strings.NewReader(`"https://www.google!.com"`))
	require.NoError(t, err)
	assert.Equal(t, "https://www.google!.com", v)
}

func TestLoadDocument_TooLarge(t *testing.T) {
	t.Setenv(sanitize.EnvMaxInputSize, "8")
	_, err := LoadDocument("", FormatJSON, strings.NewReader(`["abcdefgh"]`))
	assert.ErrorIs(t, err, sanitize.ErrInputTooLarge)
}

func TestNormalize(t *testing.T) {
	cat := newCatalog(t)
	var buf bytes.Buffer

	doc, err := DecodeDocument([]byte(`{"code": "a", "output": "", "evaluation": "", "error": ""}`), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, Normalize(&buf, cat, catalog.TypeCodeEvaluation, doc))
	assert.JSONEq(t, `{"code": "a", "output": "", "evaluation": "", "error": ""}`, buf.String())

	buf.Reset()
	doc, err = DecodeDocument([]byte(`[0, 1]`), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, Normalize(&buf, cat, catalog.TypeCoordTwoDim, doc))
	assert.JSONEq(t, `[0, 1]`, buf.String())

	err = Normalize(&buf, cat, catalog.TypeCoordTwoDim, []any{1})
	assert.ErrorIs(t, err, schema.ErrNormalization)

	err = Normalize(&buf, cat, "Nope", 1)
	assert.ErrorIs(t, err, registry.ErrUnknownType)
}

func TestList(t *testing.T) {
	cat := newCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, List(&buf, cat, OutputText))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 22)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))

	buf.Reset()
	require.NoError(t, List(&buf, cat, OutputJSON))
	var types []objects.TypeInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &types))
	assert.Len(t, types, 21)

	assert.Error(t, List(&buf, cat, "xml"))
}

func TestPrintSchema(t *testing.T) {
	cat := newCatalog(t)
	var buf bytes.Buffer

	require.NoError(t, PrintSchema(&buf, cat, catalog.TypeCoordTwoDim, OutputYAML))
	assert.Contains(t, buf.String(), "type: list")
	assert.Contains(t, buf.String(), "len: 2")

	buf.Reset()
	require.NoError(t, PrintSchema(&buf, cat, catalog.TypeNonnegativeInt, OutputJSON))
	s, err := schema.ParseJSON(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, schema.KindInt, s.Type)

	buf.Reset()
	require.NoError(t, PrintSchema(&buf, cat, "", OutputOpenAPI))
	assert.Contains(t, buf.String(), `"components"`)
	assert.Contains(t, buf.String(), `"MusicPhrase"`)

	assert.ErrorIs(t, PrintSchema(&buf, cat, catalog.TypeNull, OutputJSON), objects.ErrNoSchema)
	assert.Error(t, PrintSchema(&buf, cat, "", OutputJSON))
}

func TestDescribe(t *testing.T) {
	cat := newCatalog(t)
	var buf bytes.Buffer

	require.NoError(t, Describe(&buf, cat, catalog.TypeLogicErrorCategory, nil))
	assert.Contains(t, buf.String(), "# LogicErrorCategory")
	assert.Contains(t, buf.String(), "- parsing")

	buf.Reset()
	rendered := false
	require.NoError(t, Describe(&buf, cat, catalog.TypeNull, func(md string) (string, error) {
		rendered = true
		return strings.ToUpper(md), nil
	}))
	assert.True(t, rendered)
	assert.Contains(t, buf.String(), "# NULL")
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Check(&buf, newCatalog(t)))
	assert.Contains(t, buf.String(), "21 object types")

	reg := registry.New()
	reg.Register(registry.NewSchemaType("Broken", "", schema.Custom("Missing"), reg))
	cat, err := objects.New(objects.WithRegistry(reg))
	require.NoError(t, err)

	buf.Reset()
	assert.Error(t, Check(&buf, cat))
	assert.Contains(t, buf.String(), `unknown obj_type "Missing"`)
}

func TestGraph(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"vertices": [{"x": 0, "y": 0, "label": "a"}, {"x": 1, "y": 1, "label": "b"}],
		"edges": [{"src": 0, "dst": 1, "weight": 1}],
		"isLabeled": true, "isDirected": true, "isWeighted": false
	}`), FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Graph(&buf, newCatalog(t), doc, []int{0}))
	assert.Contains(t, buf.String(), `v0(("a"))`)
	assert.Contains(t, buf.String(), "v0 --> v1")
	assert.Contains(t, buf.String(), "class v0 highlighted;")

	assert.ErrorIs(t, Graph(&buf, newCatalog(t), map[string]any{}, nil), schema.ErrNormalization)
}

func TestNewCatalog_WithDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types:\n  - name: Tag\n    schema: {type: unicode}\n"), 0o644))

	cat, _, err := NewCatalog(Options{Definitions: []string{path}})
	require.NoError(t, err)
	assert.True(t, cat.Registry().Has("Tag"))
}

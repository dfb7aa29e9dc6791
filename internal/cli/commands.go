package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/objects"
	"github.com/aretw0/objects/internal/presentation/graph"
	"github.com/aretw0/objects/internal/presentation/tui"
	"github.com/aretw0/objects/pkg/catalog"
	"github.com/aretw0/objects/pkg/schema"
)

// Output formats for schemas and listings.
const (
	OutputText    = "text"
	OutputJSON    = "json"
	OutputYAML    = "yaml"
	OutputOpenAPI = "openapi"
)

// List prints every registered type.
func List(w io.Writer, cat *objects.Catalog, format string) error {
	types := cat.Types()
	switch format {
	case OutputJSON:
		return writeJSON(w, types)
	case OutputYAML:
		return yaml.NewEncoder(w).Encode(types)
	case OutputText, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSCHEMA\tDESCRIPTION")
		for _, t := range types {
			hasSchema := "-"
			if t.HasSchema {
				hasSchema = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, hasSchema, t.Description)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// PrintSchema prints the schema of one type, or the OpenAPI components of
// every type when name is empty and format is openapi.
func PrintSchema(w io.Writer, cat *objects.Catalog, name, format string) error {
	if format == OutputOpenAPI && name == "" {
		return writeJSON(w, map[string]any{
			"components": map[string]any{"schemas": cat.OpenAPI()},
		})
	}
	if name == "" {
		return fmt.Errorf("a type name is required for format %q", format)
	}

	s, err := cat.Schema(name)
	if err != nil {
		return err
	}
	switch format {
	case OutputJSON, "":
		return writeJSON(w, s)
	case OutputYAML:
		data, err := schema.MarshalYAMLBytes(s)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case OutputOpenAPI:
		return writeJSON(w, schema.ToOpenAPI(s))
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Normalize normalizes one decoded document and prints the result as JSON.
func Normalize(w io.Writer, cat *objects.Catalog, name string, doc any) error {
	v, err := cat.Normalize(name, doc)
	if err != nil {
		return err
	}
	return writeJSON(w, v)
}

// Describe prints the markdown documentation of one type. render may be
// nil to print the raw markdown.
func Describe(w io.Writer, cat *objects.Catalog, name string, render func(string) (string, error)) error {
	info, err := cat.Describe(name)
	if err != nil {
		return err
	}

	var schemaYAML []byte
	if info.HasSchema {
		s, err := cat.Schema(name)
		if err != nil {
			return err
		}
		if schemaYAML, err = schema.MarshalYAMLBytes(s); err != nil {
			return err
		}
	}

	md := tui.TypeMarkdown(info.Name, info.Description, schemaYAML)
	if render != nil {
		if md, err = render(md); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, md)
	return err
}

// Check validates every registered schema and reports the outcome.
func Check(w io.Writer, cat *objects.Catalog) error {
	status := tui.NewStatus(w)
	if err := cat.Check(); err != nil {
		for _, e := range schema.ValidationErrors(err) {
			status.Fail("%v", e)
		}
		return fmt.Errorf("schema check failed")
	}
	status.OK("%d object types, all schemas valid", len(cat.Types()))
	return nil
}

// Graph normalizes doc as a Graph and prints it as a Mermaid flowchart.
func Graph(w io.Writer, cat *objects.Catalog, doc any, highlight []int) error {
	v, err := cat.Normalize(catalog.TypeGraph, doc)
	if err != nil {
		return err
	}
	g, err := catalog.Decode[catalog.Graph](v)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if len(highlight) > 0 {
		overlay = &graph.GraphOverlay{Highlighted: highlight}
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(g, overlay))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

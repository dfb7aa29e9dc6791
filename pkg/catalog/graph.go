package catalog

import (
	"fmt"

	"github.com/aretw0/objects/pkg/registry"
	"github.com/aretw0/objects/pkg/schema"
)

func graphSchema() *schema.Schema {
	vertex := schema.Dict(
		schema.Prop("x", schema.Float()),
		schema.Prop("y", schema.Float()),
		schema.Prop("label", schema.Unicode()),
	)
	edge := schema.Dict(
		schema.Prop("src", schema.Int()),
		schema.Prop("dst", schema.Int()),
		schema.Prop("weight", schema.Int()),
	)
	return schema.Dict(
		schema.Prop("vertices", schema.List(vertex)),
		schema.Prop("edges", schema.List(edge)),
		schema.Prop("isLabeled", schema.Bool()),
		schema.Prop("isDirected", schema.Bool()),
		schema.Prop("isWeighted", schema.Bool()),
	).WithDescription("A graph with vertices and edges.")
}

// graphType runs the schema pass and then checks that every edge joins two
// distinct existing vertices and that no edge is repeated.
type graphType struct {
	*registry.SchemaType
}

func newGraphType(r schema.Resolver) graphType {
	return graphType{registry.NewSchemaType(TypeGraph, "A graph with vertices and edges.", graphSchema(), r)}
}

func (g graphType) Normalize(raw any) (any, error) {
	v, err := g.SchemaType.Normalize(raw)
	if err != nil {
		return nil, err
	}
	m := v.(map[string]any)
	vertices := m["vertices"].([]any)
	edges := m["edges"].([]any)
	directed := m["isDirected"].(bool)

	type pair struct{ a, b int }
	seen := make(map[pair]int, len(edges))
	for i, e := range edges {
		edge := e.(map[string]any)
		src, dst := edge["src"].(int), edge["dst"].(int)
		at := fmt.Sprintf("edges[%d]", i)

		if src < 0 || src >= len(vertices) {
			return nil, schema.AtPath(schema.Failf(src, "vertex index %d out of range", src), at+".src")
		}
		if dst < 0 || dst >= len(vertices) {
			return nil, schema.AtPath(schema.Failf(dst, "vertex index %d out of range", dst), at+".dst")
		}
		if src == dst {
			return nil, schema.AtPath(schema.Failf(nil, "self-loop on vertex %d", src), at)
		}

		key := pair{src, dst}
		if !directed && src > dst {
			key = pair{dst, src}
		}
		if j, dup := seen[key]; dup {
			return nil, schema.AtPath(schema.Failf(nil, "duplicate of edges[%d]", j), at)
		}
		seen[key] = i
	}

	if !m["isWeighted"].(bool) {
		for _, e := range edges {
			e.(map[string]any)["weight"] = 1
		}
	}
	if !m["isLabeled"].(bool) {
		for _, vx := range vertices {
			vx.(map[string]any)["label"] = ""
		}
	}
	return m, nil
}

// Graph is the typed view of a Graph.
type Graph struct {
	Vertices   []Vertex `mapstructure:"vertices" json:"vertices"`
	Edges      []Edge   `mapstructure:"edges" json:"edges"`
	IsLabeled  bool     `mapstructure:"isLabeled" json:"isLabeled"`
	IsDirected bool     `mapstructure:"isDirected" json:"isDirected"`
	IsWeighted bool     `mapstructure:"isWeighted" json:"isWeighted"`
}

// Vertex is a positioned, optionally labeled graph vertex.
type Vertex struct {
	X     float64 `mapstructure:"x" json:"x"`
	Y     float64 `mapstructure:"y" json:"y"`
	Label string  `mapstructure:"label" json:"label"`
}

// Edge joins the vertices at indices Src and Dst.
type Edge struct {
	Src    int `mapstructure:"src" json:"src"`
	Dst    int `mapstructure:"dst" json:"dst"`
	Weight int `mapstructure:"weight" json:"weight"`
}

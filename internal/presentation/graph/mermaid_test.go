package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/objects/internal/presentation/graph"
	"github.com/aretw0/objects/pkg/catalog"
)

func triangle() catalog.Graph {
	return catalog.Graph{
		Vertices: []catalog.Vertex{
			{X: 0, Y: 0, Label: "a"},
			{X: 1, Y: 0, Label: `say "b"`},
			{X: 0, Y: 1, Label: "c"},
		},
		Edges: []catalog.Edge{
			{Src: 0, Dst: 1, Weight: 4},
			{Src: 1, Dst: 2, Weight: 1},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	labeled := triangle()
	labeled.IsLabeled = true

	directed := triangle()
	directed.IsDirected = true
	directed.IsWeighted = true

	tests := []struct {
		name     string
		graph    catalog.Graph
		contains []string
		excludes []string
	}{
		{
			name:     "Unlabeled Uses Index",
			graph:    triangle(),
			contains: []string{`v0(("0"))`, `v2(("2"))`, "v0 --- v1"},
			excludes: []string{`"a"`},
		},
		{
			name:     "Labeled Escapes Quotes",
			graph:    labeled,
			contains: []string{`v0(("a"))`, `v1(("say 'b'"))`},
		},
		{
			name:     "Directed Weighted",
			graph:    directed,
			contains: []string{`v0 -- "4" --> v1`, `v1 -- "1" --> v2`},
			excludes: []string{"---"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.graph, nil)
			if !strings.HasPrefix(got, "graph LR\n") {
				t.Errorf("GenerateMermaid() should start with the flowchart header, got:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() missing %q in:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() should not contain %q in:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	got := graph.GenerateMermaid(triangle(), &graph.GraphOverlay{Highlighted: []int{1, 1, 7, -1}})

	if strings.Count(got, "class v1 highlighted;") != 1 {
		t.Errorf("highlighted vertex should be styled once:\n%s", got)
	}
	if strings.Contains(got, "v7") || strings.Contains(got, "v-1") {
		t.Errorf("out of range vertices should be ignored:\n%s", got)
	}
}

func TestGenerateMermaid_LabelsStayOnOneLine(t *testing.T) {
	g := catalog.Graph{
		Vertices: []catalog.Vertex{
			{Label: "line one\nline two"},
			{Label: "f(x) ]\r\nend"},
		},
		IsLabeled: true,
	}

	got := graph.GenerateMermaid(g, nil)
	for _, want := range []string{`v0(("line one line two"))`, `v1(("f(x) ] end"))`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	for _, line := range strings.Split(strings.TrimSpace(got), "\n")[1:] {
		if !strings.HasPrefix(line, "    v") {
			t.Errorf("unexpected line %q", line)
		}
	}
}

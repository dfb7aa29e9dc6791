package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/objects/pkg/catalog"
)

// GraphOverlay marks vertices to highlight on the diagram.
type GraphOverlay struct {
	Highlighted []int
}

// GenerateMermaid produces a Mermaid flowchart of a normalized Graph.
// Vertices are circles named v<index>; the caption is the label when the
// graph is labeled and the index otherwise. Directed graphs use arrows, and
// weighted graphs annotate each edge with its weight.
func GenerateMermaid(g catalog.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, v := range g.Vertices {
		caption := strconv.Itoa(i)
		if g.IsLabeled && v.Label != "" {
			caption = escapeLabel(v.Label)
		}
		fmt.Fprintf(&sb, "    %s((\"%s\"))\n", vertexID(i), caption)
	}

	link := "---"
	if g.IsDirected {
		link = "-->"
	}
	for _, e := range g.Edges {
		arrow := link
		if g.IsWeighted {
			arrow = fmt.Sprintf("-- \"%d\" %s", e.Weight, link)
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", vertexID(e.Src), arrow, vertexID(e.Dst))
	}

	if overlay != nil && len(overlay.Highlighted) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme
		sb.WriteString("    classDef highlighted fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, i := range overlay.Highlighted {
			if seen[i] || i < 0 || i >= len(g.Vertices) {
				continue
			}
			seen[i] = true
			fmt.Fprintf(&sb, "    class %s highlighted;\n", vertexID(i))
		}
	}

	return sb.String()
}

func vertexID(i int) string {
	return "v" + strconv.Itoa(i)
}

// labelReplacer keeps a caption on one line inside its quotes.
var labelReplacer = strings.NewReplacer(
	"\"", "'",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"\t", " ",
)

func escapeLabel(s string) string {
	return labelReplacer.Replace(s)
}

package registry

import (
	"strings"

	"github.com/aretw0/objects/pkg/schema"
)

// checkCycle follows obj_type through top-level custom schemas, starting at
// the type name with schema s. A custom schema hands its input on unchanged,
// so a chain that returns to a name it already visited never terminates.
func checkCycle(name string, s *schema.Schema, lookup func(string) *schema.Schema) error {
	chain := []string{name}
	seen := map[string]bool{name: true}
	for s != nil && s.Type == schema.KindCustom {
		next := s.ObjType
		chain = append(chain, next)
		if seen[next] {
			return &schema.DefinitionError{Reason: "custom reference cycle " + strings.Join(chain, " -> ")}
		}
		seen[next] = true
		s = lookup(next)
	}
	return nil
}

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaces(t *testing.T) {
	assert.Equal(t, "Abc def", Spaces("Abc   def"))
	assert.Equal(t, "a b c", Spaces("  a\tb\n\nc  "))
	assert.Equal(t, "¡hola!", Spaces("¡hola!"))
	assert.Equal(t, "", Spaces(" \t "))
}

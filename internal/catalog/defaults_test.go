package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Defaults() {
		key := strings.ToLower(f.Name)
		assert.False(t, seen[key], "duplicate food %q", f.Name)
		seen[key] = true
		assert.NotEmpty(t, f.Category)
		assert.Greater(t, f.Nutrients.Calories, 0.0, f.Name)
	}
	assert.Len(t, seen, 32)
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	first := Defaults()
	first[0].Name = "changed"
	assert.NotEqual(t, "changed", Defaults()[0].Name)
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	assert.False(t, r.Has("custom"))

	r.Register(ReportType{Key: "custom", Name: "Custom"})
	rt, ok := r.Get("custom")
	assert.True(t, ok)
	assert.Equal(t, "Custom", rt.Name)

	// Re-registering replaces the entry.
	r.Register(ReportType{Key: "custom", Name: "Custom v2"})
	rt, _ = r.Get("custom")
	assert.Equal(t, "Custom v2", rt.Name)
	assert.Len(t, r.All(), 1)
}

func TestNewWithBuiltins(t *testing.T) {
	r := NewWithBuiltins()
	for _, key := range []string{
		"bs5837_tree_survey", "condition_report", "impact_assessment",
		"method_statement", "tpo_application",
	} {
		assert.True(t, r.Has(key), key)
	}

	all := r.All()
	assert.Len(t, all, 5)
	// Sorted by key.
	assert.Equal(t, "bs5837_tree_survey", all[0].Key)
}

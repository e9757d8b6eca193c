// Package registry holds the report-type registry: an explicit,
// constructed object with register/lookup operations rather than ambient
// global state.
package registry

import "sort"

// ReportType describes one kind of survey report the application produces.
type ReportType struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// SectionHints are the headings a complete report of this type is
	// expected to contain; used as authoring guidance by the frontend.
	SectionHints []string `json:"section_hints"`
}

// Registry maps report-type keys to their definitions.
type Registry struct {
	types map[string]ReportType
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{types: make(map[string]ReportType)}
}

// Register adds a report type to the registry, replacing any existing
// entry with the same key.
func (r *Registry) Register(rt ReportType) {
	r.types[rt.Key] = rt
}

// Get returns the report type for key and whether it exists.
func (r *Registry) Get(key string) (ReportType, bool) {
	rt, ok := r.types[key]
	return rt, ok
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.types[key]
	return ok
}

// All returns all registered report types sorted by key.
func (r *Registry) All() []ReportType {
	out := make([]ReportType, 0, len(r.types))
	for _, rt := range r.types {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

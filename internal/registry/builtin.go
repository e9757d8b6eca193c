package registry

// builtinTypes are the report types every installation starts with.
var builtinTypes = []ReportType{
	{
		Key:         "bs5837_tree_survey",
		Name:        "BS5837 Tree Survey",
		Description: "Tree survey to BS5837:2012 for planning and development sites",
		SectionHints: []string{
			"Introduction", "Methodology", "Survey Results",
			"Tree Schedule", "Recommendations", "Appendices",
		},
	},
	{
		Key:         "condition_report",
		Name:        "Tree Condition Report",
		Description: "Condition assessment of individual trees or tree groups",
		SectionHints: []string{
			"Introduction", "Observations", "Condition Assessment",
			"Recommendations",
		},
	},
	{
		Key:         "impact_assessment",
		Name:        "Arboricultural Impact Assessment",
		Description: "Assessment of development impact on retained trees",
		SectionHints: []string{
			"Introduction", "Methodology", "Impact Assessment",
			"Mitigation", "Conclusions",
		},
	},
	{
		Key:         "method_statement",
		Name:        "Arboricultural Method Statement",
		Description: "Working methods for construction near retained trees",
		SectionHints: []string{
			"Introduction", "Tree Protection Measures", "Working Methods",
			"Supervision and Monitoring",
		},
	},
	{
		Key:         "tpo_application",
		Name:        "TPO Works Application",
		Description: "Supporting statement for works to trees under a Tree Preservation Order",
		SectionHints: []string{
			"Introduction", "Proposed Works", "Justification",
		},
	},
}

// NewWithBuiltins creates a Registry pre-populated with the builtin report
// types.
func NewWithBuiltins() *Registry {
	r := New()
	for _, rt := range builtinTypes {
		r.Register(rt)
	}
	return r
}

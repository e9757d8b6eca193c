package decompiler

// detectComplianceMarkers runs the fixed compliance patterns against the
// whole text, recording at most one marker per pattern (first match only).
func detectComplianceMarkers(text string) []ComplianceMarker {
	markers := []ComplianceMarker{}
	for _, p := range compliancePatterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}
		markers = append(markers, ComplianceMarker{
			Type:       p.markerType,
			Text:       match,
			Standard:   p.standard,
			Confidence: markerConfidence,
		})
	}
	return markers
}

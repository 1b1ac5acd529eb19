package stats

// Stars renders the conventional significance marks for a p-value.
func Stars(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return "ns"
	}
}

// Interpret gives the plain-language reading used in the result tables.
func Interpret(p float64) string {
	if p < 0.05 {
		return "Significant difference"
	}
	return "No significant difference"
}

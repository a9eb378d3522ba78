package lex

// Limits are the per-parse size limits of spec.md §4.4.7, each
// individually fatal (as a LimitError) the moment it is exceeded.
type Limits struct {
	MaxLabelLength             int
	MaxAttributeNameLength     int
	MaxAttributeValueLength    int
	MaxLiteralValueLength      int
	MaxInFlightLexemeLength    int
	MaxAttributesPerDocument   int
	MaxSubdocumentsPerDocument int
	MaxLiteralsPerDocument     int
	MaxNestingDepth            int
	MaxSubdocumentsPerParse    int
	MaxLiteralsPerParse        int
}

// DefaultLimits returns the spec-mandated defaults (spec.md §4.4.7).
func DefaultLimits() Limits {
	const KiB = 1024
	const MiB = 1024 * KiB
	return Limits{
		MaxLabelLength:             127,
		MaxAttributeNameLength:     127,
		MaxAttributeValueLength:    256 * KiB,
		MaxLiteralValueLength:      4 * MiB,
		MaxInFlightLexemeLength:    4 * MiB,
		MaxAttributesPerDocument:   1024,
		MaxSubdocumentsPerDocument: 32 * KiB,
		MaxLiteralsPerDocument:     32 * KiB,
		MaxNestingDepth:            64,
		MaxSubdocumentsPerParse:    256 * KiB,
		MaxLiteralsPerParse:        256 * KiB,
	}
}

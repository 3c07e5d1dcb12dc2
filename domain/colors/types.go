package colors

import "sort"

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Token is a normalized color candidate extracted from document text.
// INVARIANTS:
// - Uppercase, non-empty
// - Contains at least one letter (pure numeric/punctuation fragments excluded)
type Token string

// FrequencyTable maps each distinct token to its occurrence count.
// Built once per document parse and treated as read-only afterwards.
type FrequencyTable map[Token]int

// NewFrequencyTable counts each distinct token in the sequence.
func NewFrequencyTable(tokens []Token) FrequencyTable {
	table := make(FrequencyTable, len(tokens))
	for _, tok := range tokens {
		table[tok]++
	}
	return table
}

// SortedKeys returns the table's tokens in ascending lexicographic order.
// Map iteration order is not observable, so every consumer that needs a
// deterministic walk goes through this.
func (t FrequencyTable) SortedKeys() []Token {
	keys := make([]Token, 0, len(t))
	for tok := range t {
		keys = append(keys, tok)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Values returns the frequency multiset aligned with SortedKeys.
func (t FrequencyTable) Values() []float64 {
	values := make([]float64, 0, len(t))
	for _, tok := range t.SortedKeys() {
		values = append(values, float64(t[tok]))
	}
	return values
}

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Analysis holds the aggregation result for one document run.
// INVARIANTS:
// - Total > 0 (an empty sequence never produces an Analysis)
// - Total equals the sum of Frequencies' values
// - TargetProbability in [0.0, 1.0]
// - Variance is 0 when fewer than two distinct tokens exist
type Analysis struct {
	Total             int
	Unique            int
	MeanClosest       Token
	Mode              Token
	Median            Token
	Variance          float64
	Target            Token
	TargetProbability float64
	Frequencies       FrequencyTable
}

package colors

import (
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	apperrors "huestat/internal/errors"
)

// DefaultTarget is the token whose pick probability is reported when no
// other target is configured.
const DefaultTarget = Token("RED")

// Analyze aggregates an ordered token sequence into an Analysis.
//
// The mean-closest token is the key whose count is numerically nearest to
// the arithmetic mean of the frequency multiset; the mode is the key with
// the strictly highest count. Ties on both resolve to the lexicographically
// smallest token, since map insertion order is not observable.
//
// The median is lexicographic: the full sequence is sorted ascending and the
// element at index floor(n/2) is taken (lower median for even lengths).
//
// An empty sequence yields a NO_DATA error and no result.
func Analyze(tokens []Token, target Token) (*Analysis, error) {
	if len(tokens) == 0 {
		return nil, apperrors.NoData("no colors found to analyze")
	}
	if target == "" {
		target = DefaultTarget
	}
	target = Token(strings.ToUpper(string(target)))

	table := NewFrequencyTable(tokens)
	frequencies := table.Values()

	meanFreq, err := stats.Mean(frequencies)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to compute mean of frequencies")
	}

	keys := table.SortedKeys()
	meanClosest := keys[0]
	mode := keys[0]
	bestDistance := math.Abs(float64(table[meanClosest]) - meanFreq)
	for _, key := range keys[1:] {
		if distance := math.Abs(float64(table[key]) - meanFreq); distance < bestDistance {
			meanClosest = key
			bestDistance = distance
		}
		if table[key] > table[mode] {
			mode = key
		}
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	median := sorted[len(sorted)/2]

	// Sample variance needs at least two frequency samples.
	variance := 0.0
	if len(frequencies) >= 2 {
		variance, err = stats.SampleVariance(frequencies)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to compute variance of frequencies")
		}
	}

	return &Analysis{
		Total:             len(tokens),
		Unique:            len(table),
		MeanClosest:       meanClosest,
		Mode:              mode,
		Median:            median,
		Variance:          variance,
		Target:            target,
		TargetProbability: float64(table[target]) / float64(len(tokens)),
		Frequencies:       table,
	}, nil
}

package demo

import (
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	apperrors "huestat/internal/errors"
)

// DefaultBitWidth is the number of bits generated when no width is configured.
const DefaultBitWidth = 4

// RandomBits draws width independently uniform bits from the given stream and
// returns the bit string together with its value under standard binary
// interpretation. The stream carries the seed, so a run is replayable.
func RandomBits(stream *rand.Rand, width int) (string, int64, error) {
	if width <= 0 || width > 63 {
		return "", 0, apperrors.InvalidInput("bit width must be between 1 and 63")
	}

	bernoulli := distuv.Bernoulli{P: 0.5, Src: stream}
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width; i++ {
		if bernoulli.Rand() > 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	bits := b.String()
	value, err := strconv.ParseInt(bits, 2, 64)
	if err != nil {
		return "", 0, apperrors.Wrap(err, "failed to interpret bit string")
	}
	return bits, value, nil
}

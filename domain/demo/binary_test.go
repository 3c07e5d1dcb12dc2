package demo

import (
	"math/rand"
	"strconv"
	"testing"

	apperrors "huestat/internal/errors"
)

func TestRandomBits_WidthAndRange(t *testing.T) {
	stream := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		bits, value, err := RandomBits(stream, DefaultBitWidth)
		if err != nil {
			t.Fatalf("RandomBits returned error: %v", err)
		}
		if len(bits) != DefaultBitWidth {
			t.Fatalf("bit string %q has length %d, want %d", bits, len(bits), DefaultBitWidth)
		}
		for _, c := range bits {
			if c != '0' && c != '1' {
				t.Fatalf("bit string %q contains %q", bits, c)
			}
		}
		if value < 0 || value > 15 {
			t.Fatalf("value %d outside [0,15]", value)
		}
	}
}

func TestRandomBits_ValueMatchesString(t *testing.T) {
	stream := rand.New(rand.NewSource(3))

	for width := 1; width <= 8; width++ {
		bits, value, err := RandomBits(stream, width)
		if err != nil {
			t.Fatalf("RandomBits(width=%d) returned error: %v", width, err)
		}
		want, err := strconv.ParseInt(bits, 2, 64)
		if err != nil {
			t.Fatalf("bit string %q not parseable: %v", bits, err)
		}
		if value != want {
			t.Errorf("value = %d, want %d for bits %q", value, want, bits)
		}
	}
}

func TestRandomBits_DeterministicForSeed(t *testing.T) {
	first, _, err := RandomBits(rand.New(rand.NewSource(42)), DefaultBitWidth)
	if err != nil {
		t.Fatalf("RandomBits returned error: %v", err)
	}
	second, _, err := RandomBits(rand.New(rand.NewSource(42)), DefaultBitWidth)
	if err != nil {
		t.Fatalf("RandomBits returned error: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced %q and %q", first, second)
	}
}

func TestRandomBits_InvalidWidth(t *testing.T) {
	stream := rand.New(rand.NewSource(1))
	for _, width := range []int{0, -1, 64} {
		_, _, err := RandomBits(stream, width)
		if apperrors.GetCode(err) != apperrors.CodeInvalidInput {
			t.Errorf("width %d: error code = %s, want %s",
				width, apperrors.GetCode(err), apperrors.CodeInvalidInput)
		}
	}
}

package inventory

import (
	"math/big"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// ParseWeight accepts decimals ("0.5") and fractions ("1/2")
func ParseWeight(s string) (float64, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return 0, errors.InvalidArgumentf("invalid weight format: %q", s)
	}
	if r.Sign() < 0 {
		return 0, errors.InvalidArgumentf("weight must not be negative, got %s", s)
	}
	f, _ := r.Float64()
	return f, nil
}

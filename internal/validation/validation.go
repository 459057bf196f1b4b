// Package validation contains the logic for validating request data.
//
// The flips path parameter arrives as a raw string; this package decides
// whether it names a usable flip count and classifies each failure mode
// into the errs taxonomy so clients can tell "you sent garbage" apart from
// "you sent a number we refuse".
package validation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fairflip/coinflip/internal/errs"
	"github.com/go-playground/validator/v10"
)

// Flip-count bounds: 2 inclusive, 101 exclusive.
const (
	MinFlips = 2
	MaxFlips = 101
)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New()

// flipCountBounds carries the range rule as validator tags so the bounds
// live in one declarative place.
type flipCountBounds struct {
	Flips int `validate:"gte=2,lt=101"`
}

// ParseFlipCount parses and bounds-checks the raw flips path segment.
//
// Failure classification, in order:
//  1. Not parseable as a number at all -> InputError ("not a number").
//  2. Numeric but not a plain base-10 integer, e.g. "3.5" or "1e2" ->
//     InputError ("not an integer").
//  3. Integer outside [MinFlips, MaxFlips) -> RangeError.
//
// On success it returns the validated count. It performs no work beyond
// parsing, so invalid requests never consume randomness.
func ParseFlipCount(raw string) (int, error) {
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return 0, errs.NewInputError(fmt.Sprintf("flip count %q is not a number", raw))
	}

	// ParseFloat accepted it, ParseInt may still reject it: fractional
	// values and scientific notation are numbers but not exact base-10
	// integers, and the API refuses to guess.
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// An integer too large for int64 is way out of bounds, not garbage.
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.NewRangeError(
				fmt.Sprintf("flip count %q is out of range [%d, %d)", raw, MinFlips, MaxFlips))
		}
		return 0, errs.NewInputError(fmt.Sprintf("flip count %q is not an integer", raw))
	}

	if err := validate.Struct(flipCountBounds{Flips: int(n)}); err != nil {
		return 0, errs.NewRangeError(
			fmt.Sprintf("flip count %d is out of range [%d, %d)", n, MinFlips, MaxFlips))
	}

	return int(n), nil
}

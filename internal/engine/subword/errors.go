package subword

import (
	"errors"
	"fmt"
)

// ErrInvalidCount indicates a repeat count below 1.
// This is the only error the scanner returns; running out of boundaries
// clamps to the buffer edge instead of failing.
var ErrInvalidCount = errors.New("subword: repeat count must be >= 1")

// validateCount checks the repeat count before scanning.
func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	return nil
}

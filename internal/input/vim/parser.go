package vim

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	// ErrEmptyExpr indicates an empty motion expression.
	ErrEmptyExpr = errors.New("vim: empty motion expression")

	// ErrMissingLeader indicates the expression lacks the leader key.
	ErrMissingLeader = errors.New("vim: expected leader before motion key")

	// ErrUnknownMotion indicates an unrecognized motion key.
	ErrUnknownMotion = errors.New("vim: unknown motion key")

	// ErrTrailingInput indicates extra characters after the motion.
	ErrTrailingInput = errors.New("vim: trailing input after motion")
)

// ParseExpr parses a complete motion expression of the form
// [count]<leader>motion, e.g. ",w" or "3,b". The count defaults to 1
// when absent.
func ParseExpr(expr string) (count int, motion *Motion, err error) {
	runes := []rune(expr)
	if len(runes) == 0 {
		return 0, nil, ErrEmptyExpr
	}

	count, consumed := ParseCountFromRunes(runes)
	if count <= 0 {
		count = 1
	}
	runes = runes[consumed:]

	if len(runes) == 0 || runes[0] != Leader {
		return 0, nil, ErrMissingLeader
	}
	runes = runes[1:]

	if len(runes) == 0 {
		return 0, nil, fmt.Errorf("%w: expression ends at leader", ErrUnknownMotion)
	}

	motion = GetMotion(runes[0])
	if motion == nil {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownMotion, string(runes[0]))
	}

	if len(runes) > 1 {
		return 0, nil, fmt.Errorf("%w: %q", ErrTrailingInput, string(runes[1:]))
	}

	return count, motion, nil
}

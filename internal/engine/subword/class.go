package subword

import "unicode"

// Category classifies a rune for the boundary grammar.
type Category uint8

const (
	// CatOther is whitespace, punctuation, or any non-identifier rune.
	CatOther Category = iota

	// CatUpper is an uppercase (or titlecase) letter.
	CatUpper

	// CatLower is a lowercase letter. Caseless letters (scripts without
	// case) also classify as CatLower so they continue a run.
	CatLower

	// CatDigit is a decimal digit.
	CatDigit

	// CatUnderscore is the underscore separator.
	CatUnderscore
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CatUpper:
		return "upper"
	case CatLower:
		return "lower"
	case CatDigit:
		return "digit"
	case CatUnderscore:
		return "underscore"
	case CatOther:
		return "other"
	default:
		return "unknown"
	}
}

// Classify returns the category of r.
// Classification depends only on the rune, never on surrounding state.
func Classify(r rune) Category {
	switch {
	case r == '_':
		return CatUnderscore
	case unicode.IsDigit(r):
		return CatDigit
	case unicode.IsUpper(r) || unicode.IsTitle(r):
		return CatUpper
	case unicode.IsLetter(r):
		return CatLower
	default:
		return CatOther
	}
}

// IsSubwordRune returns true if the category can belong to a sub-word.
// Underscore is a separator, so only letters and digits qualify.
func (c Category) IsSubwordRune() bool {
	return c == CatUpper || c == CatLower || c == CatDigit
}

package vim

import "math"

// CountState tracks count prefix accumulation during parsing.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool
}

// NewCountState creates a new count state.
func NewCountState() *CountState {
	return &CountState{}
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count.
// Returns true if the digit was accepted.
// Only accepts ASCII digits 0-9.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')

	// '0' at the start is not a count, it's a motion to line start
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	// Guard against integer overflow
	if c.Value > (math.MaxInt-digit)/10 {
		c.Value = math.MaxInt / 10
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count.
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// IsCountDigit returns true if the character is a digit valid in a count.
func IsCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ParseCountFromRunes parses a count from a sequence of runes.
// Returns the count value and the number of runes consumed.
func ParseCountFromRunes(runes []rune) (count int, consumed int) {
	if len(runes) == 0 {
		return 0, 0
	}

	if !IsCountStart(runes[0]) {
		return 0, 0
	}

	state := NewCountState()
	for i := 0; i < len(runes); i++ {
		if !state.AccumulateDigit(runes[i]) {
			break
		}
		consumed++
	}

	return state.Value, consumed
}

// CapCount limits a count to the given maximum. A cap of zero or less
// means no limit.
func CapCount(count, cap int) int {
	if count <= 0 {
		return 1
	}
	if cap > 0 && count > cap {
		return cap
	}
	return count
}

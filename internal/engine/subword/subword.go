package subword

import (
	"github.com/dshills/subword/internal/engine/buffer"
)

// Result is the outcome of a motion scan.
type Result struct {
	// Offset is the resulting byte offset.
	Offset buffer.ByteOffset

	// Clamped is true when the scan ran out of boundaries before
	// completing all repeats. Offset then holds the last boundary that
	// was matched, or the buffer edge if no step matched at all.
	// Hosts use this to decide whether to beep or no-op.
	Clamped bool
}

// NextStart returns the offset of the count-th sub-word start after
// from. Matches exactly at from are excluded, so repeated count=1 calls
// compose to a single count=N call.
func NextStart(text string, from buffer.ByteOffset, count int) (Result, error) {
	if err := validateCount(count); err != nil {
		return Result{}, err
	}

	offset := from
	matched := false
	for i := 0; i < count; i++ {
		next, ok := nextStart(text, offset)
		if !ok {
			return clampForward(text, offset, matched), nil
		}
		offset = next
		matched = true
	}
	return Result{Offset: offset}, nil
}

// PrevStart returns the offset of the count-th sub-word start before
// from. The start-boundary set is identical to the one NextStart scans;
// only the direction differs.
func PrevStart(text string, from buffer.ByteOffset, count int) (Result, error) {
	if err := validateCount(count); err != nil {
		return Result{}, err
	}

	offset := from
	matched := false
	for i := 0; i < count; i++ {
		prev, ok := prevStart(text, offset)
		if !ok {
			return clampBackward(offset, matched), nil
		}
		offset = prev
		matched = true
	}
	return Result{Offset: offset}, nil
}

// NextEnd returns the offset of the count-th sub-word end after from.
// The end is inclusive: the offset addresses the first byte of the
// sub-word's final rune, so it is directly usable as the inclusive
// endpoint of a selection or deletion range — including when the
// sub-word ends at the very last character of the text.
func NextEnd(text string, from buffer.ByteOffset, count int) (Result, error) {
	if err := validateCount(count); err != nil {
		return Result{}, err
	}

	offset := from
	matched := false
	for i := 0; i < count; i++ {
		end, ok := nextEnd(text, offset)
		if !ok {
			return clampForward(text, offset, matched), nil
		}
		offset = end
		matched = true
	}
	return Result{Offset: offset}, nil
}

// Subwords returns every sub-word in text as a half-open byte range,
// in order. Separator and non-identifier runs are not included.
func Subwords(text string) []buffer.Range {
	var out []buffer.Range
	textLen := buffer.ByteOffset(len(text))

	pos := buffer.ByteOffset(0)
	for pos < textLen {
		if !isStartAt(text, pos) {
			pos += runeSizeAt(text, pos)
			continue
		}
		end := pos
		for !isEndAt(text, end) {
			end += runeSizeAt(text, end)
		}
		endWidth := runeSizeAt(text, end)
		out = append(out, buffer.NewRange(pos, end+endWidth))
		pos = end + endWidth
	}
	return out
}

// clampForward builds the clamped result for a forward scan: the last
// matched boundary, or end-of-buffer when nothing matched.
func clampForward(text string, offset buffer.ByteOffset, matched bool) Result {
	if matched {
		return Result{Offset: offset, Clamped: true}
	}
	return Result{Offset: buffer.ByteOffset(len(text)), Clamped: true}
}

// clampBackward builds the clamped result for a backward scan.
func clampBackward(offset buffer.ByteOffset, matched bool) Result {
	if matched {
		return Result{Offset: offset, Clamped: true}
	}
	return Result{Offset: 0, Clamped: true}
}

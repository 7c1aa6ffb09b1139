package subword

import (
	"unicode/utf8"

	"github.com/dshills/subword/internal/engine/buffer"
)

// Single-step scanners. All offsets are byte offsets; multi-byte runes
// are handled by decoding at rune starts. The boundary predicates are
// positional, so the boundary set is identical whichever direction the
// scan runs in.

// prevRuneStart returns the offset of the rune start preceding offset.
func prevRuneStart(text string, offset buffer.ByteOffset) buffer.ByteOffset {
	if offset <= 0 {
		return 0
	}
	offset--
	for offset > 0 && !utf8.RuneStart(text[offset]) {
		offset--
	}
	return offset
}

// runeSizeAt returns the byte width of the rune at offset, minimum 1 so
// scans always progress even on invalid UTF-8.
func runeSizeAt(text string, offset buffer.ByteOffset) buffer.ByteOffset {
	_, size := utf8.DecodeRuneInString(text[offset:])
	if size < 1 {
		return 1
	}
	return buffer.ByteOffset(size)
}

// isStartAt reports whether the rune at offset begins a sub-word.
//
// A position starts a sub-word when it holds an identifier rune
// (letter or digit; underscore is a separator) and one of:
//   - it is the first position, or follows a separator/non-identifier rune
//   - it is a digit following a non-digit (digit runs are atomic)
//   - it is an uppercase letter following a lowercase letter or digit
//   - it is the last uppercase letter of an uppercase run and a
//     lowercase letter follows ("WITHOUTExtension" splits before "E")
//   - it is a lowercase letter following a digit (the digit run ended)
func isStartAt(text string, offset buffer.ByteOffset) bool {
	cur, size := utf8.DecodeRuneInString(text[offset:])
	cc := Classify(cur)
	if !cc.IsSubwordRune() {
		return false
	}
	if offset == 0 {
		return true
	}

	prev, _ := utf8.DecodeRuneInString(text[prevRuneStart(text, offset):])
	pc := Classify(prev)
	if !pc.IsSubwordRune() {
		// Token edge or underscore separator.
		return true
	}

	switch cc {
	case CatDigit:
		return pc != CatDigit
	case CatUpper:
		if pc == CatLower || pc == CatDigit {
			return true
		}
		// Inside an uppercase run: split before the last capital when a
		// lowercase run follows it.
		next := offset + buffer.ByteOffset(size)
		if next >= buffer.ByteOffset(len(text)) {
			return false
		}
		nr, _ := utf8.DecodeRuneInString(text[next:])
		return Classify(nr) == CatLower
	case CatLower:
		return pc == CatDigit
	}
	return false
}

// isEndAt reports whether the rune at offset is the last rune of a
// sub-word: an identifier rune whose successor is missing, is a
// non-identifier rune, or begins the next sub-word.
func isEndAt(text string, offset buffer.ByteOffset) bool {
	cur, size := utf8.DecodeRuneInString(text[offset:])
	if !Classify(cur).IsSubwordRune() {
		return false
	}
	next := offset + buffer.ByteOffset(size)
	if next >= buffer.ByteOffset(len(text)) {
		return true
	}
	nr, _ := utf8.DecodeRuneInString(text[next:])
	if !Classify(nr).IsSubwordRune() {
		return true
	}
	return isStartAt(text, next)
}

// nextStart finds the smallest start boundary strictly after offset.
func nextStart(text string, offset buffer.ByteOffset) (buffer.ByteOffset, bool) {
	textLen := buffer.ByteOffset(len(text))

	var pos buffer.ByteOffset
	switch {
	case offset < 0:
		pos = 0
	case offset >= textLen:
		return 0, false
	default:
		pos = offset + runeSizeAt(text, offset)
	}

	for pos < textLen {
		if isStartAt(text, pos) {
			return pos, true
		}
		pos += runeSizeAt(text, pos)
	}
	return 0, false
}

// prevStart finds the largest start boundary strictly before offset.
func prevStart(text string, offset buffer.ByteOffset) (buffer.ByteOffset, bool) {
	textLen := buffer.ByteOffset(len(text))
	if offset > textLen {
		offset = textLen
	}

	for offset > 0 {
		offset = prevRuneStart(text, offset)
		if isStartAt(text, offset) {
			return offset, true
		}
	}
	return 0, false
}

// nextEnd finds the smallest end boundary strictly after offset.
func nextEnd(text string, offset buffer.ByteOffset) (buffer.ByteOffset, bool) {
	textLen := buffer.ByteOffset(len(text))

	var pos buffer.ByteOffset
	switch {
	case offset < 0:
		pos = 0
	case offset >= textLen:
		return 0, false
	default:
		pos = offset + runeSizeAt(text, offset)
	}

	for pos < textLen {
		if isEndAt(text, pos) {
			return pos, true
		}
		pos += runeSizeAt(text, pos)
	}
	return 0, false
}

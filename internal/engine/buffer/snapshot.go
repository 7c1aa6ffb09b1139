package buffer

import (
	"sort"
	"unicode/utf8"
)

// Snapshot provides a read-only view of a text at a specific point in time.
// It is safe for concurrent access and will not change after construction.
type Snapshot struct {
	text       string
	lineStarts []ByteOffset // offset of the first byte of each line
}

// NewSnapshot creates a snapshot of the given text.
// The newline index is built eagerly so line queries are O(1) and
// offset/point conversion is O(log lines).
func NewSnapshot(text string) *Snapshot {
	starts := make([]ByteOffset, 1, 16)
	starts[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return &Snapshot{text: text, lineStarts: starts}
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns text in the given byte range, clamped to the snapshot.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if end > ByteOffset(len(s.text)) {
		end = ByteOffset(len(s.text))
	}
	if start >= end {
		return ""
	}
	return s.text[start:end]
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// IsEmpty returns true if the snapshot is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.text) == 0
}

// LineCount returns the number of lines.
// An empty snapshot has one (empty) line.
func (s *Snapshot) LineCount() uint32 {
	return uint32(len(s.lineStarts))
}

// LineText returns the text of a specific line (without newline).
func (s *Snapshot) LineText(line uint32) string {
	if int(line) >= len(s.lineStarts) {
		return ""
	}
	return s.text[s.LineStartOffset(line):s.LineEndOffset(line)]
}

// LineStartOffset returns the byte offset of the start of a line.
// Lines past the end map to the snapshot length.
func (s *Snapshot) LineStartOffset(line uint32) ByteOffset {
	if int(line) >= len(s.lineStarts) {
		return s.Len()
	}
	return s.lineStarts[line]
}

// LineEndOffset returns the byte offset of the end of a line (before newline).
func (s *Snapshot) LineEndOffset(line uint32) ByteOffset {
	if int(line)+1 < len(s.lineStarts) {
		// Next line start minus the newline byte.
		return s.lineStarts[line+1] - 1
	}
	return s.Len()
}

// LineLen returns the length of a specific line in bytes (without newline).
func (s *Snapshot) LineLen(line uint32) uint32 {
	if int(line) >= len(s.lineStarts) {
		return 0
	}
	return uint32(s.LineEndOffset(line) - s.LineStartOffset(line))
}

// RuneAt returns the rune starting at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (s *Snapshot) RuneAt(offset ByteOffset) (rune, int) {
	if offset < 0 || offset >= ByteOffset(len(s.text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.text[offset:])
}

// OffsetToPoint converts a byte offset to line/column.
// Offsets outside the snapshot are clamped.
func (s *Snapshot) OffsetToPoint(offset ByteOffset) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > s.Len() {
		offset = s.Len()
	}
	// First line whose start is past offset, minus one.
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	return Point{
		Line:   uint32(line),
		Column: uint32(offset - s.lineStarts[line]),
	}
}

// PointToOffset converts line/column to byte offset.
// The column is clamped to the line length; lines past the end map to
// the snapshot length.
func (s *Snapshot) PointToOffset(point Point) ByteOffset {
	if int(point.Line) >= len(s.lineStarts) {
		return s.Len()
	}
	col := point.Column
	if lineLen := s.LineLen(point.Line); col > lineLen {
		col = lineLen
	}
	return s.lineStarts[point.Line] + ByteOffset(col)
}

package subword

import (
	"testing"

	"github.com/dshills/subword/internal/engine/buffer"
)

// allStarts walks the text with the single-step scanner and collects
// every start boundary, including one at offset 0.
func allStarts(text string) []buffer.ByteOffset {
	var starts []buffer.ByteOffset
	if len(text) > 0 && isStartAt(text, 0) {
		starts = append(starts, 0)
	}
	offset := buffer.ByteOffset(0)
	for {
		next, ok := nextStart(text, offset)
		if !ok {
			return starts
		}
		starts = append(starts, next)
		offset = next
	}
}

// allEnds collects every end boundary the same way.
func allEnds(text string) []buffer.ByteOffset {
	var ends []buffer.ByteOffset
	if len(text) > 0 && isEndAt(text, 0) {
		ends = append(ends, 0)
	}
	offset := buffer.ByteOffset(0)
	for {
		next, ok := nextEnd(text, offset)
		if !ok {
			return ends
		}
		ends = append(ends, next)
		offset = next
	}
}

func equalOffsets(a, b []buffer.ByteOffset) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStartBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []buffer.ByteOffset
	}{
		{
			name: "camel case",
			text: "camelCaseWord",
			want: []buffer.ByteOffset{0, 5, 9},
		},
		{
			name: "acronym split",
			text: "PathANDNameWITHOUTExtension",
			want: []buffer.ByteOffset{0, 4, 7, 11, 18},
		},
		{
			name: "digit run atomic",
			text: "Script31337Path",
			want: []buffer.ByteOffset{0, 6, 11},
		},
		{
			name: "underscore separators",
			text: "script_31337_path",
			want: []buffer.ByteOffset{0, 7, 13},
		},
		{
			name: "single capital then digit",
			text: "MapP1roblem",
			want: []buffer.ByteOffset{0, 3, 4, 5},
		},
		{
			name: "pure acronym",
			text: "HTTP",
			want: []buffer.ByteOffset{0},
		},
		{
			name: "acronym then capitalized word",
			text: "HTTPServer",
			want: []buffer.ByteOffset{0, 4},
		},
		{
			name: "token edges across punctuation",
			text: "foo.Bar(baz)",
			want: []buffer.ByteOffset{0, 4, 8},
		},
		{
			name: "single capital token",
			text: "a B c",
			want: []buffer.ByteOffset{0, 2, 4},
		},
		{
			name: "leading underscores",
			text: "__init__",
			want: []buffer.ByteOffset{2},
		},
		{
			name: "multibyte runes",
			text: "ÜberCafé",
			want: []buffer.ByteOffset{0, 5},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "only separators",
			text: " _ _ ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allStarts(tt.text); !equalOffsets(got, tt.want) {
				t.Errorf("starts of %q = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEndBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []buffer.ByteOffset
	}{
		{
			name: "camel case",
			text: "camelCaseWord",
			want: []buffer.ByteOffset{4, 8, 12},
		},
		{
			name: "acronym split",
			text: "PathANDNameWITHOUTExtension",
			want: []buffer.ByteOffset{3, 6, 10, 17, 26},
		},
		{
			name: "digit run atomic",
			text: "Script31337Path",
			want: []buffer.ByteOffset{5, 10, 14},
		},
		{
			name: "underscore separators",
			text: "script_31337_path",
			want: []buffer.ByteOffset{5, 11, 16},
		},
		{
			name: "single capital then digit",
			text: "MapP1roblem",
			want: []buffer.ByteOffset{2, 3, 4, 10},
		},
		{
			name: "end at final multibyte rune",
			text: "ÜberCafé",
			want: []buffer.ByteOffset{4, 8},
		},
		{
			name: "trailing separator",
			text: "word_",
			want: []buffer.ByteOffset{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allEnds(tt.text); !equalOffsets(got, tt.want) {
				t.Errorf("ends of %q = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStartBoundariesDirectionIndependent(t *testing.T) {
	texts := []string{
		"PathANDNameWITHOUTExtension",
		"Script31337Path",
		"script_31337_path",
		"MapP1roblem",
		"foo.Bar(baz) qux_31337",
		"ÜberCafé und_SO_weiter",
	}

	for _, text := range texts {
		forward := allStarts(text)

		var backward []buffer.ByteOffset
		offset := buffer.ByteOffset(len(text))
		// Offset len(text) is past every boundary, so the backward walk
		// visits them all.
		for {
			prev, ok := prevStart(text, offset)
			if !ok {
				break
			}
			backward = append(backward, prev)
			offset = prev
		}
		// Reverse in place.
		for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
			backward[i], backward[j] = backward[j], backward[i]
		}

		if !equalOffsets(forward, backward) {
			t.Errorf("boundary sets differ for %q: forward %v, backward %v", text, forward, backward)
		}
	}
}

func TestNextStartExcludesCurrentOffset(t *testing.T) {
	text := "fooBar"
	// Offset 3 is itself a start; the scan must move past it.
	if next, ok := nextStart(text, 3); ok {
		t.Errorf("nextStart(%q, 3) = %d, want no match", text, next)
	}
	if prev, ok := prevStart(text, 0); ok {
		t.Errorf("prevStart(%q, 0) = %d, want no match", text, prev)
	}
}

func TestScanHandlesOutOfRangeOffsets(t *testing.T) {
	text := "fooBar"

	if next, ok := nextStart(text, -10); !ok || next != 0 {
		t.Errorf("nextStart(-10) = %d/%v, want 0/true", next, ok)
	}
	if _, ok := nextStart(text, 100); ok {
		t.Error("nextStart past end should not match")
	}
	if prev, ok := prevStart(text, 100); !ok || prev != 3 {
		t.Errorf("prevStart(100) = %d/%v, want 3/true", prev, ok)
	}
	if end, ok := nextEnd(text, -10); !ok || end != 2 {
		t.Errorf("nextEnd(-10) = %d/%v, want 2/true", end, ok)
	}
}

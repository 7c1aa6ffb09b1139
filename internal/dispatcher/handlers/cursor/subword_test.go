package cursor

import (
	"errors"
	"testing"

	"github.com/dshills/subword/internal/dispatcher/execctx"
	"github.com/dshills/subword/internal/dispatcher/handler"
	"github.com/dshills/subword/internal/engine/buffer"
	"github.com/dshills/subword/internal/engine/cursor"
)

func newCtx(text string, offset buffer.ByteOffset, count int) (*execctx.ExecutionContext, *cursor.Set) {
	set := cursor.NewSetAt(offset)
	ctx := execctx.New().
		WithSnapshot(buffer.NewSnapshot(text)).
		WithCursors(set).
		WithCount(count)
	return ctx, set
}

func TestCanHandle(t *testing.T) {
	h := NewSubwordHandler(true)

	for _, action := range []string{
		ActionSubwordForward,
		ActionSubwordBackward,
		ActionSubwordEndForward,
	} {
		if !h.CanHandle(action) {
			t.Errorf("CanHandle(%q) = false, want true", action)
		}
	}
	if h.CanHandle("cursor.moveLeft") {
		t.Error("CanHandle(cursor.moveLeft) = true, want false")
	}
	if h.Namespace() != "cursor" {
		t.Errorf("Namespace() = %q, want cursor", h.Namespace())
	}
}

func TestHandleActionMoves(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		offset     buffer.ByteOffset
		count      int
		action     string
		wantOffset buffer.ByteOffset
		wantStatus handler.ResultStatus
		wantClamp  bool
	}{
		{
			name:       "forward one subword",
			text:       "getUserName",
			offset:     0,
			count:      1,
			action:     ActionSubwordForward,
			wantOffset: 3,
			wantStatus: handler.StatusOK,
		},
		{
			name:       "forward with count",
			text:       "getUserName",
			offset:     0,
			count:      2,
			action:     ActionSubwordForward,
			wantOffset: 7,
			wantStatus: handler.StatusOK,
		},
		{
			name:       "forward across snake case",
			text:       "get_user_name",
			offset:     0,
			count:      1,
			action:     ActionSubwordForward,
			wantOffset: 4,
			wantStatus: handler.StatusOK,
		},
		{
			name:       "backward one subword",
			text:       "getUserName",
			offset:     7,
			count:      1,
			action:     ActionSubwordBackward,
			wantOffset: 3,
			wantStatus: handler.StatusOK,
		},
		{
			name:       "end forward is inclusive",
			text:       "getUserName",
			offset:     0,
			count:      1,
			action:     ActionSubwordEndForward,
			wantOffset: 2,
			wantStatus: handler.StatusOK,
		},
		{
			name:       "forward clamps at buffer end",
			text:       "getUserName",
			offset:     7,
			count:      5,
			action:     ActionSubwordForward,
			wantOffset: 11,
			wantStatus: handler.StatusOK,
			wantClamp:  true,
		},
		{
			name:       "backward clamps at buffer start",
			text:       "getUserName",
			offset:     0,
			count:      1,
			action:     ActionSubwordBackward,
			wantOffset: 0,
			wantStatus: handler.StatusNoOp,
			wantClamp:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSubwordHandler(true)
			ctx, set := newCtx(tt.text, tt.offset, tt.count)

			res := h.HandleAction(tt.action, ctx)
			if res.Status != tt.wantStatus {
				t.Fatalf("status = %v, want %v (err: %v)", res.Status, tt.wantStatus, res.Error)
			}
			if res.Clamped != tt.wantClamp {
				t.Errorf("clamped = %v, want %v", res.Clamped, tt.wantClamp)
			}

			got := set.Primary()
			if got.Head != tt.wantOffset {
				t.Errorf("head = %d, want %d", got.Head, tt.wantOffset)
			}
			if !got.IsEmpty() {
				t.Errorf("selection not collapsed after motion: %v", got)
			}
		})
	}
}

func TestHandleActionExtendsSelection(t *testing.T) {
	text := "getUserName"
	set := cursor.NewSet(cursor.NewSelection(0, 3))
	ctx := execctx.New().
		WithSnapshot(buffer.NewSnapshot(text)).
		WithCursors(set).
		WithCount(1)

	h := NewSubwordHandler(true)
	res := h.HandleAction(ActionSubwordForward, ctx)
	if !res.IsOK() {
		t.Fatalf("status = %v, err = %v", res.Status, res.Error)
	}

	got := set.Primary()
	if got.Anchor != 0 {
		t.Errorf("anchor moved: got %d, want 0", got.Anchor)
	}
	if got.Head != 7 {
		t.Errorf("head = %d, want 7", got.Head)
	}
}

func TestEndForwardIncludeEndPolicy(t *testing.T) {
	text := "getUserName"

	tests := []struct {
		name       string
		includeEnd bool
		wantHead   buffer.ByteOffset
	}{
		// NextEnd from 3 lands on 'r' at offset 6. With include_end the
		// selection covers it; without, the head stops on it.
		{name: "include end extends past final rune", includeEnd: true, wantHead: 7},
		{name: "exclude end stops on final rune", includeEnd: false, wantHead: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := cursor.NewSet(cursor.NewSelection(3, 4))
			ctx := execctx.New().
				WithSnapshot(buffer.NewSnapshot(text)).
				WithCursors(set).
				WithCount(1)

			h := NewSubwordHandler(tt.includeEnd)
			res := h.HandleAction(ActionSubwordEndForward, ctx)
			if !res.IsOK() {
				t.Fatalf("status = %v, err = %v", res.Status, res.Error)
			}
			if got := set.Primary().Head; got != tt.wantHead {
				t.Errorf("head = %d, want %d", got, tt.wantHead)
			}
		})
	}
}

func TestHandleActionMultiCursor(t *testing.T) {
	text := "get_user_name"
	set := cursor.NewSetAt(0)
	set.Add(cursor.NewCursorSelection(4))
	ctx := execctx.New().
		WithSnapshot(buffer.NewSnapshot(text)).
		WithCursors(set).
		WithCount(1)

	h := NewSubwordHandler(true)
	res := h.HandleAction(ActionSubwordForward, ctx)
	if !res.IsOK() {
		t.Fatalf("status = %v, err = %v", res.Status, res.Error)
	}

	all := set.All()
	if len(all) != 2 {
		t.Fatalf("cursor count = %d, want 2", len(all))
	}
	if all[0].Head != 4 {
		t.Errorf("primary head = %d, want 4", all[0].Head)
	}
	if all[1].Head != 9 {
		t.Errorf("secondary head = %d, want 9", all[1].Head)
	}
}

func TestHandleActionInvalidCount(t *testing.T) {
	h := NewSubwordHandler(true)
	ctx, set := newCtx("getUserName", 0, 1)
	ctx.Count = -3

	// WithCount rejects non-positive counts, so force it and confirm
	// GetCount still normalizes to 1 rather than erroring.
	res := h.HandleAction(ActionSubwordForward, ctx)
	if !res.IsOK() {
		t.Fatalf("status = %v, err = %v", res.Status, res.Error)
	}
	if got := set.Primary().Head; got != 3 {
		t.Errorf("head = %d, want 3", got)
	}
}

func TestHandleActionValidation(t *testing.T) {
	h := NewSubwordHandler(true)

	res := h.HandleAction(ActionSubwordForward, execctx.New())
	if !res.IsError() {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if !errors.Is(res.Error, execctx.ErrMissingSnapshot) {
		t.Errorf("error = %v, want ErrMissingSnapshot", res.Error)
	}

	ctx := execctx.New().WithSnapshot(buffer.NewSnapshot("abc"))
	res = h.HandleAction(ActionSubwordForward, ctx)
	if !errors.Is(res.Error, execctx.ErrMissingCursors) {
		t.Errorf("error = %v, want ErrMissingCursors", res.Error)
	}
}

func TestHandleActionUnknown(t *testing.T) {
	h := NewSubwordHandler(true)
	ctx, _ := newCtx("abc", 0, 1)

	res := h.HandleAction("cursor.teleport", ctx)
	if !res.IsError() {
		t.Fatalf("status = %v, want error", res.Status)
	}
}

func TestNoOpAtBufferEnd(t *testing.T) {
	h := NewSubwordHandler(true)
	ctx, set := newCtx("word", buffer.ByteOffset(4), 1)

	res := h.HandleAction(ActionSubwordForward, ctx)
	if res.Status != handler.StatusNoOp {
		t.Fatalf("status = %v, want no-op", res.Status)
	}
	if !res.Clamped {
		t.Error("clamped = false, want true")
	}
	if got := set.Primary().Head; got != 4 {
		t.Errorf("head = %d, want 4", got)
	}
}

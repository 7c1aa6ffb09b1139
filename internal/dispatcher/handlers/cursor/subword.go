package cursor

import (
	"unicode/utf8"

	"github.com/dshills/subword/internal/dispatcher/execctx"
	"github.com/dshills/subword/internal/dispatcher/handler"
	"github.com/dshills/subword/internal/engine/buffer"
	"github.com/dshills/subword/internal/engine/cursor"
	"github.com/dshills/subword/internal/engine/subword"
)

// Action names for sub-word motions.
const (
	ActionSubwordForward    = "cursor.subwordForward"
	ActionSubwordBackward   = "cursor.subwordBackward"
	ActionSubwordEndForward = "cursor.subwordEndForward"
)

// SubwordHandler handles sub-word cursor motions.
type SubwordHandler struct {
	// includeEnd controls whether an end-inclusive result extends an
	// active selection by one more rune so the range covers the final
	// character. The scanner itself always returns the inclusive
	// offset; this is host policy.
	includeEnd bool
}

// NewSubwordHandler creates a new sub-word motion handler.
func NewSubwordHandler(includeEnd bool) *SubwordHandler {
	return &SubwordHandler{includeEnd: includeEnd}
}

// Namespace returns the cursor namespace.
func (h *SubwordHandler) Namespace() string {
	return "cursor"
}

// CanHandle returns true if this handler can process the action.
func (h *SubwordHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionSubwordForward, ActionSubwordBackward, ActionSubwordEndForward:
		return true
	}
	return false
}

// HandleAction processes a sub-word motion action.
func (h *SubwordHandler) HandleAction(actionName string, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	switch actionName {
	case ActionSubwordForward:
		return h.apply(ctx, subword.NextStart, false)
	case ActionSubwordBackward:
		return h.apply(ctx, subword.PrevStart, false)
	case ActionSubwordEndForward:
		return h.apply(ctx, subword.NextEnd, true)
	default:
		return handler.Errorf("unknown subword action: %s", actionName)
	}
}

// scanFunc is the shape of the three scanner operations.
type scanFunc func(text string, from buffer.ByteOffset, count int) (subword.Result, error)

// apply runs the scan for every cursor, extending selections instead of
// moving when one is active.
func (h *SubwordHandler) apply(ctx *execctx.ExecutionContext, scan scanFunc, endInclusive bool) handler.Result {
	count := ctx.GetCount()
	text := ctx.Snapshot.Text()
	extend := ctx.HasSelection()

	var scanErr error
	clamped := false
	moved := false

	ctx.Cursors.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		if scanErr != nil {
			return sel
		}

		res, err := scan(text, sel.Head, count)
		if err != nil {
			scanErr = err
			return sel
		}
		if res.Clamped {
			clamped = true
		}

		target := res.Offset
		if extend {
			if endInclusive && h.includeEnd && !res.Clamped {
				// Cover the final rune of the sub-word so the range is
				// usable for delete/yank without adjustment.
				_, size := utf8.DecodeRuneInString(text[target:])
				target += buffer.ByteOffset(size)
			}
			if target != sel.Head {
				moved = true
			}
			return sel.Extend(target)
		}

		if target != sel.Head {
			moved = true
		}
		return sel.MoveTo(target)
	})

	if scanErr != nil {
		return handler.Error(scanErr)
	}
	ctx.Cursors.Clamp(ctx.Snapshot.Len())

	if !moved {
		return handler.NoOp().WithClamped(clamped)
	}
	return handler.Success().WithClamped(clamped)
}

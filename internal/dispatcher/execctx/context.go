// Package execctx provides the execution context for motion handlers.
package execctx

import (
	"github.com/dshills/subword/internal/engine/buffer"
	"github.com/dshills/subword/internal/engine/cursor"
)

// SnapshotInterface abstracts the text under scan for handlers.
// buffer.Snapshot satisfies it; hosts with their own text store can
// supply any immutable view.
type SnapshotInterface interface {
	Text() string
	Len() buffer.ByteOffset
}

// CursorManagerInterface abstracts cursor management for handlers.
type CursorManagerInterface interface {
	Primary() cursor.Selection
	All() []cursor.Selection
	HasSelection() bool
	MapInPlace(f func(sel cursor.Selection) cursor.Selection)
	Clamp(maxOffset buffer.ByteOffset)
}

// ExecutionContext provides context for motion execution.
type ExecutionContext struct {
	// Snapshot is the immutable text being scanned.
	Snapshot SnapshotInterface

	// Cursors provides access to cursor/selection state.
	Cursors CursorManagerInterface

	// Count is the repeat count (1 if not specified).
	Count int
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{Count: 1}
}

// WithSnapshot returns the context with the snapshot set.
func (ctx *ExecutionContext) WithSnapshot(snap SnapshotInterface) *ExecutionContext {
	ctx.Snapshot = snap
	return ctx
}

// WithCursors returns the context with cursors set.
func (ctx *ExecutionContext) WithCursors(cursors CursorManagerInterface) *ExecutionContext {
	ctx.Cursors = cursors
	return ctx
}

// WithCount returns the context with repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// HasSelection returns true if there is an active selection.
func (ctx *ExecutionContext) HasSelection() bool {
	if ctx.Cursors == nil {
		return false
	}
	return ctx.Cursors.HasSelection()
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Snapshot == nil {
		return ErrMissingSnapshot
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	return nil
}

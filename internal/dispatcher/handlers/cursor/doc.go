// Package cursor provides the handler that applies sub-word motions to
// cursor and selection state.
package cursor

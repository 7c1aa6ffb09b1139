// Package vim provides Vim-style input parsing for sub-word motions.
//
// This package implements the grammar for leader-prefixed sub-word
// commands:
//
//	[count]<leader>motion
//
// Examples:
//   - ",w": move to the next sub-word start
//   - "3,b": count=3, move back three sub-word starts
//   - ",e": move to the next sub-word end (inclusive)
//
// The leader key defaults to ',' to keep the plain w/b/e keys free for
// whole-word motions in the host editor.
package vim

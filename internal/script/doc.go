// Package script exposes the sub-word scanner to Lua.
//
// Host editors embed a Lua engine for keymaps and plugins; this bridge
// lets those scripts query sub-word boundaries directly:
//
//	offset, clamped = subword.next_start("getUserName", 0, 1)
//	words = subword.subwords("get_user_name")
//
// Offsets cross the bridge zero-based, matching the byte offsets the
// scanner uses everywhere else.
package script

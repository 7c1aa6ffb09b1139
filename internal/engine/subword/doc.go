// Package subword finds sub-word boundaries inside identifiers written
// in CamelCase or snake_case style, where whole-word motions are too
// coarse.
//
// A sub-word is one of: a Capitalized word ("Camel"), an acronym run
// ("HTTP" in "HTTPServer"), a maximal digit run ("31337"), or an
// underscore-delimited token. Underscores are separators and are never
// boundary targets. Transitions between identifier and non-identifier
// characters always count as boundaries.
//
// The three motions — NextStart, PrevStart, NextEnd — are pure
// functions of the text and starting offset. NextEnd is inclusive: the
// returned offset addresses the first byte of the sub-word's final
// rune, not one past it. When a scan runs out of boundaries it clamps
// to the buffer edge and reports Clamped rather than failing; the only
// error is an invalid repeat count.
package subword

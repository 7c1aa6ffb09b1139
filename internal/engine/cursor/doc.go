// Package cursor provides the selection model motion handlers operate
// on. A Selection is an immutable anchor/head pair; a Set holds one or
// more selections with a designated primary.
package cursor

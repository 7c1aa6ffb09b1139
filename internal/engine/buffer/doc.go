// Package buffer provides the text model for subword scanning.
//
// The central type is Snapshot, an immutable view of a text with a
// prebuilt newline index. Positions are byte offsets (ByteOffset) or
// line/column pairs (Point). Ranges are half-open byte ranges.
//
// Snapshots never change after construction, so they are safe for
// concurrent scans. Hosts that edit text are expected to build a new
// Snapshot per revision.
package buffer

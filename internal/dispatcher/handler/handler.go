// Package handler provides the handler interface and result types for
// motion dispatch.
package handler

import "github.com/dshills/subword/internal/dispatcher/execctx"

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot (e.g., "cursor" in
// "cursor.subwordForward").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(actionName string, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix (e.g., "cursor").
	Namespace() string
}

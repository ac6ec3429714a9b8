package context

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// Manager stores and retrieves per-request identifiers in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetRequestIDToContext returns a copy of ctx carrying requestID.
//
// Parameters:
//   - ctx: The request context
//   - requestID: The identifier assigned to the request
//
// Returns a new context with the request ID attached.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext retrieves the request ID stored by SetRequestIDToContext.
//
// Returns the request UUID and a boolean indicating if it was found.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(uuid.UUID)
	if !ok || requestID == uuid.Nil {
		return uuid.Nil, false
	}
	return requestID, true
}

package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// IdentityResolver maps an opaque credential presented by a caller to the
// worker it belongs to. Returns an ObjectNotFoundError for unknown
// credentials.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (kernel.UUID, error)
}

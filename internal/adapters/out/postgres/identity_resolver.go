package postgres

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/workerrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityResolver maps bearer credentials to worker ids. The credential
// is the worker's own id token; resolution verifies the worker still exists
// so a rejected worker's token stops working immediately.
type GormIdentityResolver struct {
	db *gorm.DB
}

// NewGormIdentityResolver creates an identity resolver backed by the workers table.
func NewGormIdentityResolver(db *gorm.DB) *GormIdentityResolver {
	return &GormIdentityResolver{db: db}
}

// Resolve returns the worker id for the credential, or an ObjectNotFoundError
// for malformed or unknown credentials.
func (r *GormIdentityResolver) Resolve(ctx context.Context, credential string) (kernel.UUID, error) {
	workerID, err := kernel.UUIDFromString(credential)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("credential", credential, err)
	}

	var dto workerrepo.WorkerDTO
	if err := r.db.WithContext(ctx).Select("id").First(&dto, "id = ?", workerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("credential", credential)
		}
		return kernel.UUID{}, err
	}

	return workerID, nil
}

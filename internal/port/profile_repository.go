package port

import (
	"context"

	"gstbill/internal/domain"
)

// ProfileRepository persists the single supplier profile.
type ProfileRepository interface {
	// Get returns the stored profile, or domain.ErrNotFound when none
	// has been saved yet.
	Get(ctx context.Context) (*domain.SupplierProfile, error)
	Save(ctx context.Context, profile *domain.SupplierProfile) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gstbill/internal/domain"
	"gstbill/internal/invoice"
	"gstbill/internal/port"
)

// ProfileService reads and updates the supplier profile.
type ProfileService interface {
	// Get returns the stored profile, or a placeholder default when
	// nothing has been saved yet.
	Get(ctx context.Context) (*domain.SupplierProfile, error)
	Update(ctx context.Context, profile *domain.SupplierProfile) error
}

type profileService struct {
	profileRepo port.ProfileRepository
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(profileRepo port.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// defaultProfile is what a fresh installation sees before configuring
// its company details.
func defaultProfile() *domain.SupplierProfile {
	return &domain.SupplierProfile{
		LegalName: "Your Company Name",
		GSTIN:     "29AAAAA0000A1Z5",
		Address:   "Your Business Address",
	}
}

func (s *profileService) Get(ctx context.Context) (*domain.SupplierProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return defaultProfile(), nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, profile *domain.SupplierProfile) error {
	if strings.TrimSpace(profile.LegalName) == "" {
		return fmt.Errorf("%w: legal name is required", domain.ErrValidation)
	}
	if !invoice.ValidGSTIN(profile.GSTIN) {
		return fmt.Errorf("%w: invalid GSTIN format", domain.ErrValidation)
	}
	return s.profileRepo.Save(ctx, profile)
}

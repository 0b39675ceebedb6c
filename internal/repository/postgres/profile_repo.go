package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new PostgreSQL-backed ProfileRepository.
// The table holds at most one row; Save upserts it.
func NewProfileRepo(db *sqlx.DB) port.ProfileRepository {
	return &profileRepo{db: db}
}

const getProfileQuery = `SELECT id, legal_name, gstin, address, city, state_code, email,
	bank_name, account_number, ifsc_code, auth_signatory, updated_at
FROM supplier_profiles
ORDER BY updated_at DESC
LIMIT 1`

func (r *profileRepo) Get(ctx context.Context) (*domain.SupplierProfile, error) {
	var profile domain.SupplierProfile
	if err := r.db.GetContext(ctx, &profile, getProfileQuery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("profileRepo.Get: %w", err)
	}
	return &profile, nil
}

const upsertProfileQuery = `INSERT INTO supplier_profiles
	(id, legal_name, gstin, address, city, state_code, email, bank_name, account_number, ifsc_code, auth_signatory, updated_at)
VALUES (:id, :legal_name, :gstin, :address, :city, :state_code, :email, :bank_name, :account_number, :ifsc_code, :auth_signatory, :updated_at)
ON CONFLICT (id) DO UPDATE SET
	legal_name = EXCLUDED.legal_name,
	gstin = EXCLUDED.gstin,
	address = EXCLUDED.address,
	city = EXCLUDED.city,
	state_code = EXCLUDED.state_code,
	email = EXCLUDED.email,
	bank_name = EXCLUDED.bank_name,
	account_number = EXCLUDED.account_number,
	ifsc_code = EXCLUDED.ifsc_code,
	auth_signatory = EXCLUDED.auth_signatory,
	updated_at = EXCLUDED.updated_at`

func (r *profileRepo) Save(ctx context.Context, profile *domain.SupplierProfile) error {
	if profile.ID == uuid.Nil {
		// Keep a stable row so repeated saves update in place.
		if existing, err := r.Get(ctx); err == nil {
			profile.ID = existing.ID
		} else {
			profile.ID = uuid.New()
		}
	}
	profile.UpdatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, upsertProfileQuery, profile); err != nil {
		return fmt.Errorf("profileRepo.Save: %w", err)
	}
	return nil
}

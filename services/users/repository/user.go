package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

// GetUserByID retrieves a user by its identifier
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, phone_number, name, role, language, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.getUser(ctx, query, id)
}

// GetUserByPhone retrieves a user by phone number
func (r *UserRepo) GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	query := `
		SELECT id, phone_number, name, role, language, is_active, created_at, updated_at
		FROM users
		WHERE phone_number = $1
	`
	return r.getUser(ctx, query, phoneNumber)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.Name,
		&user.Role,
		&user.Language,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleFarmer {
		profile, err := r.getFarmerProfile(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		user.FarmerProfile = profile
	}

	return &user, nil
}

// CreateUser inserts a new user record. The phone number is unique; a
// concurrent first-contact insert loses to the existing row.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, phone_number, name, role, language, is_active, created_at, updated_at)
		VALUES (:id, :phone_number, :name, :role, :language, :is_active, :created_at, :updated_at)
		ON CONFLICT (phone_number) DO NOTHING
	`
	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	if rows == 0 {
		// Lost a concurrent registration race; adopt the existing record
		existing, err := r.GetUserByPhone(ctx, user.PhoneNumber)
		if err != nil {
			return fmt.Errorf("failed to load existing user: %w", err)
		}
		*user = *existing
	}

	return nil
}

// UpdateUser persists the mutable user fields
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET name = :name, language = :language, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func (r *UserRepo) getFarmerProfile(ctx context.Context, userID uuid.UUID) (*models.FarmerProfile, error) {
	query := `
		SELECT user_id, address, village, district, state, pincode, land_area, crops
		FROM farmer_profiles
		WHERE user_id = $1
	`

	var profile models.FarmerProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get farmer profile: %w", err)
	}
	return &profile, nil
}

// UpsertFarmerProfile creates or replaces a farmer profile
func (r *UserRepo) UpsertFarmerProfile(ctx context.Context, profile *models.FarmerProfile) error {
	query := `
		INSERT INTO farmer_profiles (user_id, address, village, district, state, pincode, land_area, crops)
		VALUES (:user_id, :address, :village, :district, :state, :pincode, :land_area, :crops)
		ON CONFLICT (user_id) DO UPDATE SET
			address = EXCLUDED.address,
			village = EXCLUDED.village,
			district = EXCLUDED.district,
			state = EXCLUDED.state,
			pincode = EXCLUDED.pincode,
			land_area = EXCLUDED.land_area,
			crops = EXCLUDED.crops
	`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("failed to upsert farmer profile: %w", err)
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"furniture-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the account and its empty profile together.
func (r *UserRepository) Create(ctx context.Context, user models.User, fullName string) (models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	return withTx(ctx, r.pool, func(tx pgx.Tx) (models.User, error) {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (id, email, password, role)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`,
			user.ID, user.Email, user.Password, user.Role,
		).Scan(&user.CreatedAt)
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicate
		}
		if err != nil {
			return models.User{}, fmt.Errorf("insert user: %w", err)
		}

		_, err = tx.Exec(ctx, `INSERT INTO user_profiles (user_id, full_name) VALUES ($1, $2)`, user.ID, fullName)
		if err != nil {
			return models.User{}, fmt.Errorf("insert profile: %w", err)
		}
		return user, nil
	})
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password, role, created_at FROM users WHERE `+where, arg,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("pool.QueryRow: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "lower(email) = lower($1)", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	var p models.UserProfile
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.email, u.role, u.created_at,
		       COALESCE(up.full_name, ''), COALESCE(up.phone, ''), COALESCE(up.address, ''),
		       COALESCE(up.city, ''), COALESCE(up.postal_code, '')
		FROM users u
		LEFT JOIN user_profiles up ON up.user_id = u.id
		WHERE u.id = $1`, userID,
	).Scan(&p.ID, &p.Email, &p.Role, &p.CreatedAt, &p.FullName, &p.Phone, &p.Address, &p.City, &p.PostalCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("pool.QueryRow: %w", err)
	}
	return p, nil
}

// UpdateProfile overwrites the editable profile fields and returns the
// stored result.
func (r *UserRepository) UpdateProfile(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO user_profiles (user_id, full_name, phone, address, city, postal_code, updated_at)
		SELECT id, $2, $3, $4, $5, $6, NOW() FROM users WHERE id = $1
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			postal_code = EXCLUDED.postal_code,
			updated_at = NOW()`,
		p.ID, p.FullName, p.Phone, p.Address, p.City, p.PostalCode,
	)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.UserProfile{}, ErrNotFound
	}
	return r.GetProfile(ctx, p.ID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`, userID, hashedPassword)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetRole(ctx context.Context, userID string, role models.Role) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`, userID, role)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

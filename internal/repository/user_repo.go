package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, password_hash, name, phone, bio, location, profile_image, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone,
		&u.Bio, &u.Location, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns a single user by email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

// FindByID returns a single user by id.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// Create inserts a new user. passwordHash may be nil for OAuth accounts.
func (r *UserRepo) Create(ctx context.Context, email string, passwordHash *string, name *string) (*model.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, email, passwordHash, name))
}

// UpdateProfile overwrites only the fields present in the request and
// returns the updated row.
func (r *UserRepo) UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdateRequest) (*model.User, error) {
	query := `
		UPDATE users
		SET name          = COALESCE($2, name),
		    phone         = COALESCE($3, phone),
		    bio           = COALESCE($4, bio),
		    location      = COALESCE($5, location),
		    profile_image = COALESCE($6, profile_image),
		    updated_at    = now()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, id, upd.Name, upd.Phone, upd.Bio, upd.Location, upd.ProfileImage))
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1`, id, passwordHash)
	return err
}

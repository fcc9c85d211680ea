package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (id, email, phone_number, password_hash, full_name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`
	if _, err := tx.ExecContext(ctx, query, user.ID, user.Email, user.PhoneNumber, user.PasswordHash, user.FullName); err != nil {
		return err
	}

	roleQuery := `INSERT INTO user_roles (id, user_id, role, created_at) VALUES ($1, $2, $3, NOW())`
	if _, err := tx.ExecContext(ctx, roleQuery, uuid.NewString(), user.ID, user.Role); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "u.id = $1", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "u.email = $1", email)
}

func (r *userRepository) getBy(ctx context.Context, where, arg string) (*domain.User, error) {
	u := &domain.User{}
	var createdAt, updatedAt time.Time
	query := `SELECT u.id, u.email, COALESCE(u.phone_number, ''), u.password_hash, u.full_name, ur.role, u.created_at, u.updated_at
	          FROM users u JOIN user_roles ur ON ur.user_id = u.id WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.FullName, &u.Role, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = createdAt.Format(time.RFC3339)
	u.UpdatedAt = updatedAt.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	var role domain.Role
	query := `SELECT role FROM user_roles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return role, err
}

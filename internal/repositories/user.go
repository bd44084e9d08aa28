package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/linkvault/internal/models"
)

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := r.db.Rebind(`
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`)

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(query, []any{email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether either the username or the email is taken.
func (r *UserReadRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := r.db.Rebind(`
		SELECT COUNT(*)
		FROM users
		WHERE username = ? OR email = ?
	`)

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, username, email)
	logQuery(query, []any{username, email}, count, err)

	return count > 0, err
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. It returns ErrDuplicate when the username or email is taken.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	query := r.db.Rebind(`
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)

	// The hash stays out of the log.
	logQuery(query, []any{user.UserID, user.Username, user.Email, "***", user.CreatedAt}, nil, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

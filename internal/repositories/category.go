package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/linkvault/internal/models"
)

const categoryColumns = `id, user_id, name, color, created_at`

// CategoryReadRepository handles category read operations
type CategoryReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCategoryReadRepository(db *sqlx.DB, txGetter TxGetter) *CategoryReadRepository {
	return &CategoryReadRepository{db: db, txGetter: txGetter}
}

// List returns every category owned by the user, newest first.
func (r *CategoryReadRepository) List(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error) {
	query := r.db.Rebind(`
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = ?
		ORDER BY created_at DESC
	`)

	categories := []models.CategoryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &categories, query, userID)
	logQuery(query, []any{userID}, len(categories), err)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns the category when it exists and belongs to the user, nil otherwise.
func (r *CategoryReadRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.CategoryDB, error) {
	query := r.db.Rebind(`
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE id = ? AND user_id = ?
	`)

	var category models.CategoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, id, userID)
	logQuery(query, []any{id, userID}, category.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryWriteRepository handles category write operations
type CategoryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCategoryWriteRepository(db *sqlx.DB, txGetter TxGetter) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new category.
func (r *CategoryWriteRepository) Save(ctx context.Context, category *models.CategoryDB) error {
	query := r.db.Rebind(`
		INSERT INTO categories (id, user_id, name, color, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	args := []any{category.ID, category.UserID, category.Name, category.Color, category.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return err
}

// Update replaces name and color of a category owned by the user and returns the stored row.
// It returns sql.ErrNoRows when no row matched id and owner.
func (r *CategoryWriteRepository) Update(ctx context.Context, category *models.CategoryDB) (*models.CategoryDB, error) {
	exec := executor(ctx, r.db, r.txGetter)

	query := r.db.Rebind(`
		UPDATE categories
		SET name = ?, color = ?
		WHERE id = ? AND user_id = ?
	`)
	args := []any{category.Name, category.Color, category.ID, category.UserID}

	res, err := exec.ExecContext(ctx, query, args...)
	affected := rowsAffected(res)
	logQuery(query, args, affected, err)

	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}

	selectQuery := r.db.Rebind(`SELECT ` + categoryColumns + ` FROM categories WHERE id = ? AND user_id = ?`)
	var updated models.CategoryDB
	err = sqlx.GetContext(ctx, exec, &updated, selectQuery, category.ID, category.UserID)
	logQuery(selectQuery, []any{category.ID, category.UserID}, updated.ID, err)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a category owned by the user and detaches the user's links
// that referenced it, so they become uncategorized. Both statements run in
// the context transaction when there is one, in a local transaction otherwise.
// It returns sql.ErrNoRows when no row matched id and owner.
func (r *CategoryWriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return r.delete(ctx, tx, userID, id)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := r.delete(ctx, tx, userID, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *CategoryWriteRepository) delete(ctx context.Context, tx *sqlx.Tx, userID, id uuid.UUID) error {
	deleteQuery := r.db.Rebind(`DELETE FROM categories WHERE id = ? AND user_id = ?`)
	res, err := tx.ExecContext(ctx, deleteQuery, id, userID)
	affected := rowsAffected(res)
	logQuery(deleteQuery, []any{id, userID}, affected, err)

	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	detachQuery := r.db.Rebind(`
		UPDATE links
		SET category_id = NULL, updated_at = ?
		WHERE category_id = ? AND user_id = ?
	`)
	detachArgs := []any{time.Now().UTC(), id, userID}
	res, err = tx.ExecContext(ctx, detachQuery, detachArgs...)
	logQuery(detachQuery, detachArgs, rowsAffected(res), err)

	return err
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}

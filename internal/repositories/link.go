package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/linkvault/internal/models"
)

const linkColumns = `id, user_id, category_id, title, url, description, created_at, updated_at`

type LinkReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLinkReadRepository(db *sqlx.DB, txGetter TxGetter) *LinkReadRepository {
	return &LinkReadRepository{db: db, txGetter: txGetter}
}

// List returns the user's links, newest first, optionally restricted to one category.
func (r *LinkReadRepository) List(ctx context.Context, userID uuid.UUID, filter models.LinkFilter) ([]models.LinkDB, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = ?`
	args := []any{userID}

	if filter.CategoryID.Valid {
		query += ` AND category_id = ?`
		args = append(args, filter.CategoryID.UUID)
	}
	query = r.db.Rebind(query + ` ORDER BY created_at DESC`)

	links := []models.LinkDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &links, query, args...)
	logQuery(query, args, len(links), err)

	if err != nil {
		return nil, err
	}
	return links, nil
}

// Get returns the link when it exists and belongs to the user, nil otherwise.
func (r *LinkReadRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.LinkDB, error) {
	query := r.db.Rebind(`
		SELECT ` + linkColumns + `
		FROM links
		WHERE id = ? AND user_id = ?
	`)

	var link models.LinkDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &link, query, id, userID)
	logQuery(query, []any{id, userID}, link.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

type LinkWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLinkWriteRepository(db *sqlx.DB, txGetter TxGetter) *LinkWriteRepository {
	return &LinkWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new link.
func (r *LinkWriteRepository) Save(ctx context.Context, link *models.LinkDB) error {
	query := r.db.Rebind(`
		INSERT INTO links (id, user_id, category_id, title, url, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	args := []any{
		link.ID, link.UserID, link.CategoryID, link.Title, link.URL,
		link.Description, link.CreatedAt, link.UpdatedAt,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return err
}

// Update replaces every mutable field of a link owned by the user and returns
// the stored row. It returns sql.ErrNoRows when no row matched id and owner.
func (r *LinkWriteRepository) Update(ctx context.Context, link *models.LinkDB) (*models.LinkDB, error) {
	exec := executor(ctx, r.db, r.txGetter)

	query := r.db.Rebind(`
		UPDATE links
		SET title = ?, url = ?, description = ?, category_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`)
	args := []any{
		link.Title, link.URL, link.Description, link.CategoryID, link.UpdatedAt,
		link.ID, link.UserID,
	}

	res, err := exec.ExecContext(ctx, query, args...)
	affected := rowsAffected(res)
	logQuery(query, args, affected, err)

	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}

	selectQuery := r.db.Rebind(`SELECT ` + linkColumns + ` FROM links WHERE id = ? AND user_id = ?`)
	var updated models.LinkDB
	err = sqlx.GetContext(ctx, exec, &updated, selectQuery, link.ID, link.UserID)
	logQuery(selectQuery, []any{link.ID, link.UserID}, updated.ID, err)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a link owned by the user. It returns sql.ErrNoRows when no row matched.
func (r *LinkWriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM links WHERE id = ? AND user_id = ?`)

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, userID)
	affected := rowsAffected(res)
	logQuery(query, []any{id, userID}, affected, err)

	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

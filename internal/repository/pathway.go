package repository

import (
	"context"

	"github.com/YeZawHlaing/eduverse/internal/model/pathway"
	"github.com/YeZawHlaing/eduverse/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const pathwaysTable = "pathways"

const pathwayColumns = `id, name, description, created_at, updated_at`

type PathwayRepository struct {
	db DBTX
}

func NewPathwayRepository(db DBTX) *PathwayRepository {
	return &PathwayRepository{db: db}
}

func (r *PathwayRepository) Create(ctx context.Context, req *pathway.CreatePathwayRequest) (*pathway.Pathway, error) {
	stmt := `
		INSERT INTO pathways (name, description)
		VALUES ($1, $2)
		RETURNING ` + pathwayColumns

	rows, err := r.db.Query(ctx, stmt, req.Name, req.Description)
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[pathway.Pathway])
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	return &item, nil
}

func (r *PathwayRepository) GetByID(ctx context.Context, id int64) (*pathway.Pathway, error) {
	stmt := `SELECT ` + pathwayColumns + ` FROM pathways WHERE id = $1`

	rows, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[pathway.Pathway])
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	return &item, nil
}

// ExistsByName reports whether a pathway other than excludeID uses name.
// Pass 0 to check every row.
func (r *PathwayRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	stmt := `SELECT EXISTS (SELECT 1 FROM pathways WHERE name = $1 AND id <> $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, stmt, name, excludeID).Scan(&exists); err != nil {
		return false, sqlerr.HandleTableError(pathwaysTable, err)
	}
	return exists, nil
}

func (r *PathwayRepository) Update(ctx context.Context, req *pathway.UpdatePathwayRequest) (*pathway.Pathway, error) {
	stmt := `
		UPDATE pathways
		SET name = $1, description = $2
		WHERE id = $3
		RETURNING ` + pathwayColumns

	rows, err := r.db.Query(ctx, stmt, req.Name, req.Description, req.ID)
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[pathway.Pathway])
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	return &item, nil
}

func (r *PathwayRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pathways WHERE id = $1`, id)
	if err != nil {
		return sqlerr.HandleTableError(pathwaysTable, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.HandleTableError(pathwaysTable, pgx.ErrNoRows)
	}
	return nil
}

// Paginate returns one page ordered by id. An offset past the last row gives
// an empty slice.
func (r *PathwayRepository) Paginate(ctx context.Context, limit, offset int) ([]pathway.Pathway, error) {
	stmt := `SELECT ` + pathwayColumns + ` FROM pathways ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, stmt, limit, offset)
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[pathway.Pathway])
	if err != nil {
		return nil, sqlerr.HandleTableError(pathwaysTable, err)
	}

	return items, nil
}

func (r *PathwayRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pathways`).Scan(&total); err != nil {
		return 0, sqlerr.HandleTableError(pathwaysTable, err)
	}
	return total, nil
}

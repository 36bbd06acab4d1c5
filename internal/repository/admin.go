package repository

import (
	"context"

	"github.com/YeZawHlaing/eduverse/internal/model/admin"
	"github.com/YeZawHlaing/eduverse/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const adminsTable = "admins"

const adminColumns = `id, username, email, created_at, updated_at`

type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, req *admin.CreateAdminRequest) (*admin.Admin, error) {
	stmt := `
		INSERT INTO admins (username, email)
		VALUES ($1, $2)
		RETURNING ` + adminColumns

	rows, err := r.db.Query(ctx, stmt, req.Username, req.Email)
	if err != nil {
		return nil, sqlerr.HandleTableError(adminsTable, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[admin.Admin])
	if err != nil {
		return nil, sqlerr.HandleTableError(adminsTable, err)
	}

	return &item, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*admin.Admin, error) {
	rows, err := r.db.Query(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	if err != nil {
		return nil, sqlerr.HandleTableError(adminsTable, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[admin.Admin])
	if err != nil {
		return nil, sqlerr.HandleTableError(adminsTable, err)
	}

	return &item, nil
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return sqlerr.HandleTableError(adminsTable, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.HandleTableError(adminsTable, pgx.ErrNoRows)
	}
	return nil
}

// Paginate returns admins ordered by id, LIMIT limit OFFSET offset.
func (r *AdminRepository) Paginate(ctx context.Context, limit, offset int) ([]admin.Admin, error) {
	stmt := `SELECT ` + adminColumns + ` FROM admins ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, stmt, limit, offset)
	if err != nil {
		return nil, sqlerr.HandleTableError(adminsTable, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[admin.Admin])
	if err != nil {
		return nil, sqlerr.HandleTableError(adminsTable, err)
	}

	return items, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&total); err != nil {
		return 0, sqlerr.HandleTableError(adminsTable, err)
	}
	return total, nil
}

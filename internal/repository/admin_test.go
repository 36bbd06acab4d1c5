package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/YeZawHlaing/eduverse/internal/model/admin"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminRowColumns = []string{"id", "username", "email", "created_at", "updated_at"}

func newAdminRepo(t *testing.T) (*AdminRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewAdminRepository(mock), mock
}

func TestAdminRepositoryPaginate(t *testing.T) {
	repo, mock := newAdminRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, created_at, updated_at FROM admins ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(20, 20).
		WillReturnRows(pgxmock.NewRows(adminRowColumns).
			AddRow(int64(21), "mya", "mya@eduverse.dev", now, now))

	items, err := repo.Paginate(context.Background(), 20, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mya", items[0].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryCount(t *testing.T) {
	repo, mock := newAdminRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM admins")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(21)))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryCreateDuplicateEmail(t *testing.T) {
	repo, mock := newAdminRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admins")).
		WithArgs("mya", "mya@eduverse.dev").
		WillReturnError(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			TableName:      "admins",
			ConstraintName: "admins_email_key",
		})

	_, err := repo.Create(context.Background(), &admin.CreateAdminRequest{Username: "mya", Email: "mya@eduverse.dev"})
	assert.Equal(t, errs.KindDuplicateKey, errs.KindOf(err))
	assert.Equal(t, "An Admin with this Email already exists", errs.MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryGetAndDelete(t *testing.T) {
	repo, mock := newAdminRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(adminRowColumns).
			AddRow(int64(3), "kyaw", "kyaw@eduverse.dev", now, now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admins")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admins")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	got, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "kyaw@eduverse.dev", got.Email)

	require.NoError(t, repo.Delete(context.Background(), 3))

	err = repo.Delete(context.Background(), 3)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, "ADMIN_NOT_FOUND", errs.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

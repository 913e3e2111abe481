package payment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupPaymentMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func paymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "schedule_id", "member_id", "court_share", "racket_share", "water_share", "created_at"})
}

func TestGetBySchedule(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, schedule_id, member_id, court_share, racket_share, water_share, created_at FROM payments WHERE schedule_id = $1 ORDER BY id ASC")).
		WithArgs(10).
		WillReturnRows(paymentRows().
			AddRow(1, 10, 1, 50000.0, 30000.0, 10000.0, time.Now()).
			AddRow(2, 10, 2, 50000.0, 0.0, 10000.0, time.Now()))

	payments, err := repo.GetBySchedule(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	require.Equal(t, 90000.0, payments[0].Total())
	require.Equal(t, 60000.0, payments[1].Total())
}

func TestGetByMember_Empty(t *testing.T) {
	repo, mock, close := setupPaymentMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, schedule_id, member_id, court_share, racket_share, water_share, created_at FROM payments WHERE member_id = $1 ORDER BY id ASC")).
		WithArgs(5).
		WillReturnRows(paymentRows())

	payments, err := repo.GetByMember(context.Background(), 5)
	require.NoError(t, err)
	require.Empty(t, payments)
}

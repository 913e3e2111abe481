package db

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists_True(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	query := `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := Exists(context.Background(), sqlxDB, query, 5)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExists_False(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	query := `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := Exists(context.Background(), sqlxDB, query, 99)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists_NoRows(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	query := `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}))

	exists, err := Exists(context.Background(), sqlxDB, query, 1)

	require.NoError(t, err)
	assert.False(t, exists)
}

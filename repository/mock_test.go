package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/boilermanc/atlurbanfarms-sub005/db"
)

// setupMockDB swaps the package connection for a sqlmock and returns a
// cleanup that restores it
func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	original := db.DB
	db.DB = mockDB

	return mock, func() {
		db.DB = original
		mockDB.Close()
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

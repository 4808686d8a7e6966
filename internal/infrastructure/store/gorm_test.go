package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type wardRow struct {
	ID   string `gorm:"primaryKey;default:(-)" json:"id,omitempty"`
	Name string `json:"name"`
}

func setupMockDB(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("Failed to open gorm: %v", err)
	}
	return NewGormStore(db), mock
}

func TestGormStore_SelectAppliesFilters(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "wards" WHERE "availability" = $1`)).
		WithArgs("Off Duty").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("W-1", "north"))

	var rows []wardRow
	err := s.Select(context.Background(), "wards", Where("availability", "Off Duty"), &rows)

	require.NoError(t, err)
	assert.Equal(t, []wardRow{{ID: "W-1", Name: "north"}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteReturnsAffectedRows(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM "wards" WHERE "id" = $1 RETURNING *`)).
		WithArgs("W-404").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	var rows []wardRow
	err := s.Delete(context.Background(), "wards", Where("id", "W-404"), &rows)

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendRow(t *testing.T) {
	var rows []wardRow
	require.NoError(t, appendRow(&rows, &wardRow{ID: "W-1"}))
	require.NoError(t, appendRow(&rows, wardRow{ID: "W-2"}))
	assert.Len(t, rows, 2)

	assert.Error(t, appendRow(rows, &wardRow{}))
	assert.Error(t, appendRow(&rows, &testRow{}))
}

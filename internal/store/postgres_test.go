package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgres(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &PostgresStore{pool: mock}, mock
}

func TestPostgresMigrate(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS runs`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveInventory(t *testing.T) {
	s, mock := newMockPostgres(t)
	inv := testInventory()

	mock.ExpectExec(`INSERT INTO runs`).
		WithArgs(pgxmock.AnyArg(), "FY2024", 2024, "ar6", pgxmock.AnyArg(),
			1, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run, err := s.SaveInventory(context.Background(), inv)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.InDelta(t, 1870.5, run.TotalCO2eKG, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRun(t *testing.T) {
	s, mock := newMockPostgres(t)
	inv := testInventory()
	invJSON, err := json.Marshal(inv)
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{
		"id", "name", "year", "gwp_assessment", "total_co2e_kg",
		"failure_count", "inventory", "created_at",
	}).AddRow("run-1", "FY2024", 2024, "ar6", 1870.5, 1, invJSON, time.Now().UTC())

	mock.ExpectQuery(`FROM runs WHERE id = \$1`).
		WithArgs("run-1").
		WillReturnRows(rows)

	got, err := s.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	require.NotNil(t, got.Inventory)
	require.Len(t, got.Inventory.Scope1.Results, 1)
	assert.Equal(t, "epa_ng_therm", got.Inventory.Scope1.Results[0].FactorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRunNotFound(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectQuery(`FROM runs WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListRuns(t *testing.T) {
	s, mock := newMockPostgres(t)

	rows := pgxmock.NewRows([]string{
		"id", "name", "year", "gwp_assessment", "total_co2e_kg",
		"failure_count", "created_at",
	}).
		AddRow("run-2", "FY2024", 2024, "ar6", 1870.5, 1, time.Now().UTC()).
		AddRow("run-1", "FY2024", 2024, "ar6", 900.0, 0, time.Now().UTC())

	mock.ExpectQuery(`FROM runs WHERE 1=1 AND year = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(2024, 100).
		WillReturnRows(rows)

	runs, err := s.ListRuns(context.Background(), RunFilter{Year: 2024})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Nil(t, runs[0].Inventory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteRun(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectExec(`DELETE FROM runs WHERE id = \$1`).
		WithArgs("run-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeleteRun(context.Background(), "run-1"))

	mock.ExpectExec(`DELETE FROM runs WHERE id = \$1`).
		WithArgs("run-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteRun(context.Background(), "run-1")
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

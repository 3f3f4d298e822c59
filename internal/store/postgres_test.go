package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithMock(t *testing.T) (RecordStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresStore(db), mock, db
}

func TestPostgresStore_SaveUpserts(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rec := NewRecord("Brand", "b1")
	rec.Set("userId", "u1")
	rec.Set("name", "Acme")

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+records.*ON\s+CONFLICT\s+\(partition,\s*record_type,\s*id\).*RETURNING\s+fields`).
		WithArgs("private", "Brand", "b1", `{"name":"Acme","userId":"u1"}`).
		WillReturnRows(sqlmock.NewRows([]string{"fields"}).AddRow([]byte(`{"name":"Acme","userId":"u1"}`)))

	saved, err := s.Save(context.Background(), Private, rec)
	require.NoError(t, err)
	assert.Equal(t, "b1", saved.ID)
	assert.Equal(t, "Acme", saved.Fields["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveWrapsDriverError(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+records`).WillReturnError(errors.New("db down"))

	_, err := s.Save(context.Background(), Private, NewRecord("Brand", "b1"))
	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "save", opErr.Op)
	assert.Contains(t, err.Error(), "db down")
}

func TestPostgresStore_FetchBuildsPredicates(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*fields\s+FROM\s+records\s+WHERE\s+partition\s*=\s*\$1\s+AND\s+record_type\s*=\s*\$2` +
		`\s+AND\s+\(fields->>\(\$3::text\)\)\s+COLLATE\s+"C"\s+=\s+\$4` +
		`\s+AND\s+\(fields->>\(\$5::text\)\)::double\s+precision\s+>=\s+\$6` +
		`\s+ORDER\s+BY\s+fields->\(\$7::text\)\s+DESC,\s+id\s+LIMIT\s+\$8`).
		WithArgs("private", "CampaignPlan", "userId", "u1", "budget", 100.0, "createdAt", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fields"}).
			AddRow("c2", []byte(`{"userId":"u1","budget":900}`)).
			AddRow("c1", []byte(`{"userId":"u1","budget":150}`)))

	got, err := s.Fetch(context.Background(), Private, Query{
		Type:  "CampaignPlan",
		Where: []Condition{Where("userId", Eq, "u1"), Where("budget", Gte, 100)},
		Sort:  []Sort{{Field: "createdAt", Desc: true}},
		Limit: 5,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c2", got[0].ID)
	budget, ok := got[1].Float("budget")
	require.True(t, ok)
	assert.Equal(t, 150.0, budget)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_FetchOneNotFound(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+fields\s+FROM\s+records`).
		WithArgs("public", "Template", "t1").
		WillReturnError(sql.ErrNoRows)

	got, err := s.FetchOne(context.Background(), Public, "Template", "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostgresStore_SaveIfReportsClaim(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	rec := NewRecord("ScheduledPost", "p1")
	rec.Set("status", "posting")

	mock.ExpectExec(`(?s)UPDATE\s+records\s+SET\s+fields\s*=\s*\$4.*AND\s+\(fields->>\(\$5::text\)\)\s+COLLATE\s+"C"\s+=\s+\$6`).
		WithArgs("private", "ScheduledPost", "p1", `{"status":"posting"}`, "status", "scheduled").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE\s+records`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := s.SaveIf(context.Background(), Private, rec, []Condition{Where("status", Eq, "scheduled")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SaveIf(context.Background(), Private, rec, []Condition{Where("status", Eq, "scheduled")})
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+records\s+WHERE\s+partition\s*=\s*\$1\s+AND\s+record_type\s*=\s*\$2\s+AND\s+id\s*=\s*\$3`).
		WithArgs("private", "Brand", "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), Private, "Brand", "b1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

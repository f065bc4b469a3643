package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupMySQLTestBackend creates a mysql backend with a mock database
func setupMySQLTestBackend(t *testing.T) (*mysqlBackend, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	backend := NewMySQLBackend(db).(*mysqlBackend)

	cleanup := func() {
		db.Close()
	}

	return backend, mock, cleanup
}

func TestNewMySQLBackend(t *testing.T) {
	db := &sql.DB{}

	backend := NewMySQLBackend(db)

	require.IsType(t, &mysqlBackend{}, backend)
	assert.Equal(t, db, backend.(*mysqlBackend).db)
	assert.Implements(t, (*Locker)(nil), backend)
}

func TestMySQLBackend_Read(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedBody  []byte
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"body"}).AddRow(`{"users":[],"lastId":0}`)
				mock.ExpectQuery(`SELECT body FROM documents WHERE name = \?`).
					WithArgs("users.json").
					WillReturnRows(rows)
			},
			expectedBody: []byte(`{"users":[],"lastId":0}`),
		},
		{
			name: "missing document",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT body FROM documents WHERE name = \?`).
					WithArgs("users.json").
					WillReturnError(sql.ErrNoRows)
			},
			expectedBody: nil,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT body FROM documents WHERE name = \?`).
					WithArgs("users.json").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, mock, cleanup := setupMySQLTestBackend(t)
			defer cleanup()

			tt.setupMock(mock)

			body, err := backend.Read(context.Background(), "users.json")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedBody, body)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMySQLBackend_Write(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO documents`).
					WithArgs("folders.json", `{"folders":[],"lastId":0}`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO documents`).
					WithArgs("folders.json", `{"folders":[],"lastId":0}`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, mock, cleanup := setupMySQLTestBackend(t)
			defer cleanup()

			tt.setupMock(mock)

			err := backend.Write(context.Background(), "folders.json", []byte(`{"folders":[],"lastId":0}`))

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMySQLBackend_Lock(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT GET_LOCK\(\?, \?\)`).
					WithArgs("toefl_documents:users.json", lockTimeoutSeconds).
					WillReturnRows(sqlmock.NewRows([]string{"locked"}).AddRow(1))
				mock.ExpectExec(`DO RELEASE_LOCK\(\?\)`).
					WithArgs("toefl_documents:users.json").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "timed out",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT GET_LOCK\(\?, \?\)`).
					WithArgs("toefl_documents:users.json", lockTimeoutSeconds).
					WillReturnRows(sqlmock.NewRows([]string{"locked"}).AddRow(0))
			},
			expectedError: true,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT GET_LOCK\(\?, \?\)`).
					WithArgs("toefl_documents:users.json", lockTimeoutSeconds).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, mock, cleanup := setupMySQLTestBackend(t)
			defer cleanup()

			tt.setupMock(mock)

			unlock, err := backend.Lock(context.Background(), "users.json")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, unlock)
			} else {
				require.NoError(t, err)
				unlock()
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCollection_OverMySQLBackend(t *testing.T) {
	backend, mock, cleanup := setupMySQLTestBackend(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT GET_LOCK\(\?, \?\)`).
		WithArgs("toefl_documents:notes.json", lockTimeoutSeconds).
		WillReturnRows(sqlmock.NewRows([]string{"locked"}).AddRow(1))
	mock.ExpectQuery(`SELECT body FROM documents WHERE name = \?`).
		WithArgs("notes.json").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(`{"notes":[{"id":1,"text":"a"}],"lastId":1}`))
	mock.ExpectExec(`INSERT INTO documents`).
		WithArgs("notes.json", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DO RELEASE_LOCK\(\?\)`).
		WithArgs("toefl_documents:notes.json").
		WillReturnResult(sqlmock.NewResult(0, 0))

	coll := NewCollection[note](New(backend, zap.NewNop()), "notes", "notes.json")

	created, err := coll.Create(context.Background(), note{Text: "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

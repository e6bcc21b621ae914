package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-decision-api/infrastructure/database/postgres"
)

// newMockConnection cria uma conexão sobre o driver do sqlmock. As expectativas
// são conferidas ao final de cada teste.
func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &postgres.Connection{DB: db}, mock
}

// placeholders gera "$1,$2,...,$n" como o squirrel com PlaceholderFormat(Dollar)
func placeholders(n int) string {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(values, ",")
}

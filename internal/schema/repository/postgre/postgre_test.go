package postgre

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-intent-chat/internal/schema"
	"rag-intent-chat/pkg/log"
)

func newMock(t *testing.T, rowLimit int) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db, log.NewNop(), Options{DatabaseName: "adventureworks", RowLimit: rowLimit}).(*implRepository)
	return repo, mock
}

func TestDescribe(t *testing.T) {
	repo, mock := newMock(t, 0)

	mock.ExpectQuery(`information_schema\.columns`).
		WithArgs("saleslt", "customeraddress").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "nullable"}).
			AddRow("customerid", "integer", false).
			AddRow("addressid", "integer", false).
			AddRow("addresstype", "character varying", true))
	mock.ExpectQuery(`PRIMARY KEY`).
		WithArgs("saleslt", "customeraddress").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("customerid").AddRow("addressid"))
	mock.ExpectQuery(`FOREIGN KEY`).
		WithArgs("saleslt", "customeraddress").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "table_schema", "table_name", "ref_column"}).
			AddRow("customerid", "saleslt", "customer", "customerid"))

	doc, err := repo.Describe(context.Background(), []string{"SalesLT.CustomerAddress"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "adventureworks", doc.Name)
	assert.Equal(t, schema.PlatformPostgre, doc.Platform)
	require.Len(t, doc.Tables, 1)

	table := doc.Tables[0]
	assert.Equal(t, "saleslt.customeraddress", table.Name)
	require.Len(t, table.Columns, 3)
	assert.True(t, table.Columns[0].IsPrimaryKey)
	assert.Equal(t, &schema.Reference{Table: "saleslt.customer", Column: "customerid"}, table.Columns[0].References)
	assert.True(t, table.Columns[1].IsPrimaryKey)
	assert.Nil(t, table.Columns[1].References)
	assert.True(t, table.Columns[2].Nullable)
	assert.False(t, table.Columns[2].IsPrimaryKey)
}

func TestDescribe_Errors(t *testing.T) {
	t.Run("invalid identifier", func(t *testing.T) {
		repo, mock := newMock(t, 0)
		_, err := repo.Describe(context.Background(), []string{"saleslt.customer; drop"})
		assert.ErrorIs(t, err, schema.ErrInvalidIdentifier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table", func(t *testing.T) {
		repo, mock := newMock(t, 0)
		mock.ExpectQuery(`information_schema\.columns`).
			WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "nullable"}))
		_, err := repo.Describe(context.Background(), []string{"saleslt.nope"})
		assert.ErrorIs(t, err, schema.ErrTableNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMock(t, 0)
		mock.ExpectQuery(`information_schema\.columns`).WillReturnError(errors.New("connection reset"))
		_, err := repo.Describe(context.Background(), []string{"saleslt.customer"})
		assert.ErrorIs(t, err, schema.ErrFailedToDescribe)
	})
}

func TestQuery(t *testing.T) {
	repo, mock := newMock(t, 2)

	mock.ExpectBegin()
	mock.ExpectExec(`SET TRANSACTION READ ONLY`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT firstname, salesperson FROM saleslt\.customer`).
		WillReturnRows(sqlmock.NewRows([]string{"firstname", "salesperson"}).
			AddRow("Orlando", []byte("adventure-works\\pamela0")).
			AddRow("Keith", "adventure-works\\david8").
			AddRow("Donna", "adventure-works\\jillian0"))
	mock.ExpectRollback()

	res, err := repo.Query(context.Background(), "SELECT firstname, salesperson FROM saleslt.customer;")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []string{"firstname", "salesperson"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.True(t, res.Truncated)
	assert.Equal(t, "adventure-works\\pamela0", res.Rows[0]["salesperson"])
	assert.Equal(t, "Keith", res.Rows[1]["firstname"])
}

func TestQuery_RejectsWrites(t *testing.T) {
	repo, mock := newMock(t, 0)

	_, err := repo.Query(context.Background(), "UPDATE saleslt.customer SET firstname = 'x'")
	assert.ErrorIs(t, err, schema.ErrNotReadOnly)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuery_SQLErrorIsReturned(t *testing.T) {
	repo, mock := newMock(t, 0)

	mock.ExpectBegin()
	mock.ExpectExec(`SET TRANSACTION READ ONLY`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT nope`).WillReturnError(errors.New(`column "nope" does not exist`))
	mock.ExpectRollback()

	_, err := repo.Query(context.Background(), "SELECT nope FROM saleslt.customer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

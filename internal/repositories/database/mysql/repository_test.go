package mysql

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	driver "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestTruckRepository_ListTrucks(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLTruckRepository(db)

	mock.ExpectQuery("SELECT id, truck_number FROM trucks").
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_number"}).
			AddRow(1, "70-1111").
			AddRow(2, "70-2222"))

	trucks, err := repo.ListTrucks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Truck{{ID: 1, TruckNumber: "70-1111"}, {ID: 2, TruckNumber: "70-2222"}}, trucks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTruckRepository_FindTruckByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLTruckRepository(db)

	mock.ExpectQuery("SELECT id, truck_number FROM trucks WHERE id = \\?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_number"}))

	truck, err := repo.FindTruckByID(context.Background(), 99)

	assert.Nil(t, truck)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTruckRepository_SaveTruck_Duplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLTruckRepository(db)

	mock.ExpectExec("INSERT INTO trucks").
		WithArgs("70-1111").
		WillReturnError(&driver.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry"})

	truck, err := repo.SaveTruck(context.Background(), domain.Truck{TruckNumber: "70-1111"})

	assert.Nil(t, truck)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_SaveCustomer(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLCustomerRepository(db)

	mock.ExpectExec("INSERT INTO customers").
		WithArgs("ACME Logistics").
		WillReturnResult(sqlmock.NewResult(12, 1))

	customer, err := repo.SaveCustomer(context.Background(), domain.Customer{Name: "ACME Logistics"})

	require.NoError(t, err)
	assert.Equal(t, int64(12), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_SearchCustomersByName(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLCustomerRepository(db)

	mock.ExpectQuery("WHERE name LIKE").
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(12, "ACME Logistics"))

	customers, err := repo.SearchCustomersByName(context.Background(), "acme")

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "ACME Logistics", customers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_ExistsForTruckMonth(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLInvoiceRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM invoices").
		WithArgs(int64(3), 2024, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsForTruckMonth(context.Background(), 3, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_DeleteInvoice_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLInvoiceRepository(db)

	mock.ExpectExec("DELETE FROM invoices WHERE id = \\?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteInvoice(context.Background(), 5)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_FindInvoiceWithTruck(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLInvoiceRepository(db)
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM invoices i LEFT JOIN trucks t").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_id", "truck_number", "month"}).
			AddRow(8, 3, "70-1111", month))

	invoice, err := repo.FindInvoiceWithTruck(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, "70-1111", invoice.TruckNumber)
	assert.Equal(t, "2024-03", invoice.MonthKey())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceDetailRepository_ImportDetails(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLInvoiceDetailRepository(db)
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	rows := []domain.ImportRow{
		{Date: date, Order: "A1", CustomerName: "ACME", Pickup: "Laem Chabang", ReturnLoc: "Lat Krabang", Goods: "Rayong", Freight: decimal.NewFromInt(4500)},
		{Date: date, Order: "A2", CustomerName: "New Co", Freight: decimal.NewFromInt(3000)},
		{Date: date, Order: "A3", CustomerName: "ACME", Freight: decimal.NewFromInt(1200)},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM customers WHERE name = \\?").WithArgs("ACME").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO invoices_details").WillReturnResult(sqlmock.NewResult(100, 1))
	mock.ExpectQuery("SELECT id FROM customers WHERE name = \\?").WithArgs("New Co").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO customers").WithArgs("New Co").WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectExec("INSERT INTO invoices_details").WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectExec("INSERT INTO invoices_details").WillReturnResult(sqlmock.NewResult(102, 1))
	mock.ExpectCommit()

	n, err := repo.ImportDetails(context.Background(), 4, rows)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceDetailRepository_ImportDetails_RollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLInvoiceDetailRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM customers").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO invoices_details").
		WillReturnError(&driver.MySQLError{Number: mysqlNoReferencedRow, Message: "foreign key"})
	mock.ExpectRollback()

	n, err := repo.ImportDetails(context.Background(), 404, []domain.ImportRow{{CustomerName: "ACME"}})

	assert.Zero(t, n)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceDetailRepository_UpdateDetail_UnchangedRowIsNotMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLInvoiceDetailRepository(db)

	mock.ExpectExec("UPDATE invoices_details").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM invoices_details WHERE id = \\?").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	err := repo.UpdateDetail(context.Background(), domain.InvoiceDetail{ID: 9, CustomerID: 1})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceDetailRepository_DeleteDetail_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := newMySQLInvoiceDetailRepository(db)

	mock.ExpectExec("DELETE FROM invoices_details").WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDetail(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLineItemRepository_ListLineItems_KeepsNulls(t *testing.T) {
	db, mock := newMock(t)
	repo := newLineItemRepository(db)
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "invoice_id", "date", "truck_id", "truck_number", "customer_name", "order",
		"loading", "returning", "destination", "freight", "toll", "gas", "extra_expense", "driver_advance", "remark"}
	mock.ExpectQuery("FROM invoices_details d").
		WithArgs(int64(0), int64(0)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 4, date, 3, "70-1111", "ACME", "A1", "Laem Chabang", "Lat Krabang", "Rayong",
				"4500.00", nil, "320.50", nil, "500.00", "ซ่อมยาง"))

	items, err := repo.ListLineItems(context.Background(), domain.LineItemQuery{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Freight)
	assert.Equal(t, "4500.00", *items[0].Freight)
	assert.Nil(t, items[0].Toll)
	assert.Nil(t, items[0].ExtraExpense)
	require.NotNil(t, items[0].Remark)
	assert.Equal(t, "ซ่อมยาง", *items[0].Remark)
	assert.Equal(t, "70-1111", items[0].TruckNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package order

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

var orderColumns = []string{
	"id", "customer_id", "delivery_person_id",
	"items_total", "delivery_charge", "grand_total",
	"pickup_address", "pickup_landmark", "pickup_contact_phone",
	"delivery_address", "delivery_landmark", "delivery_contact_phone",
	"status", "notes", "scheduled_pickup_time", "estimated_delivery_time",
	"created_at", "updated_at",
	"cu_id", "cu_full_name", "cu_phone_number", "cu_address", "cu_role", "cu_is_verified", "cu_created_at", "cu_updated_at",
	"dp_id", "dp_full_name", "dp_phone_number", "dp_address", "dp_role", "dp_is_verified", "dp_created_at", "dp_updated_at",
}

func orderRow(now time.Time) []driverValue {
	return []driverValue{
		"ord-1", "usr-1", nil,
		90, 60, 150,
		"House 12, Mirpur", "", "",
		"House 12, Mirpur", "", "",
		"requested", "", nil, nil,
		now, now,
		"usr-1", "Rahim Uddin", "01712345678", "Mirpur", "customer", true, now, now,
		nil, nil, nil, nil, nil, nil, nil, nil,
	}
}

type driverValue = driver.Value

func expectRelations(mock sqlmock.Sqlmock, now time.Time) {
	itemRows := sqlmock.NewRows([]string{
		"id", "order_id", "clothing_item_id", "clothing_item_name", "category", "services", "quantity", "unit_price", "subtotal",
	}).AddRow("itm-1", "ord-1", "ci-shirt", "Shirt", "men", "{washing,ironing}", 3, 30, 90)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM order_items`)).WillReturnRows(itemRows)

	histRows := sqlmock.NewRows([]string{"order_id", "status", "note", "updated_by", "created_at"}).
		AddRow("ord-1", "requested", "", "usr-1", now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM status_history`)).WillReturnRows(histRows)
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Loads Relations", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE o.id = $1`)).
			WithArgs("ord-1").
			WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(orderRow(now)...))
		expectRelations(mock, now)

		o, err := repo.FindByID(context.Background(), "ord-1")
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, "usr-1", o.CustomerID)
		assert.Nil(t, o.DeliveryPersonID)
		require.Len(t, o.Items, 1)
		assert.Equal(t, []laundry.ServiceType{laundry.ServiceWashing, laundry.ServiceIroning}, o.Items[0].Services)
		require.Len(t, o.History, 1)
		assert.Equal(t, laundry.StatusRequested, o.History[0].Status)
		assert.Equal(t, "Rahim Uddin", o.Customer.FullName)
	})

	t.Run("Missing Returns Nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE o.id = $1`)).
			WithArgs("ord-404").
			WillReturnRows(sqlmock.NewRows(orderColumns))

		o, err := repo.FindByID(context.Background(), "ord-404")
		require.NoError(t, err)
		assert.Nil(t, o)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()
	entry := laundry.StatusHistoryEntry{Status: laundry.StatusPickedUp, Timestamp: now, UpdatedBy: "usr-dp"}

	t.Run("Updates And Appends History", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders`)).
			WithArgs(laundry.StatusPickedUp, "ord-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO status_history`)).
			WithArgs("ord-1", laundry.StatusPickedUp, "", "usr-dp", now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		row := orderRow(now)
		row[12] = "picked_up"
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE o.id = $1`)).
			WithArgs("ord-1").
			WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(row...))
		expectRelations(mock, now)

		o, err := repo.UpdateStatus(context.Background(), "ord-1", laundry.StatusPickedUp, entry)
		require.NoError(t, err)
		assert.Equal(t, laundry.StatusPickedUp, o.Status)
	})

	t.Run("Unknown Order Returns Nil", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders`)).
			WithArgs(laundry.StatusPickedUp, "ord-404").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		o, err := repo.UpdateStatus(context.Background(), "ord-404", laundry.StatusPickedUp, entry)
		require.NoError(t, err)
		assert.Nil(t, o)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Stats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders`)).
		WillReturnRows(sqlmock.NewRows([]string{
			"count", "pending", "in_progress", "completed", "cancelled", "today", "revenue",
		}).AddRow(10, 2, 3, 4, 1, 5, 1200))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalOrders)
	assert.Equal(t, 3, stats.InProgressOrders)
	assert.Equal(t, 1200, stats.TodayRevenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

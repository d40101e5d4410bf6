package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

func TestRepository_ListClothingItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Filtered By Category", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "name_en", "name_bn", "category", "icon", "available_services", "is_active", "created_at", "updated_at",
		}).AddRow("ci-shirt", "Shirt", "শার্ট", "men", "shirt", "{washing,ironing}", true, now, now)

		mock.ExpectQuery(regexp.QuoteMeta(`AND category = $1`)).
			WithArgs(laundry.CategoryMen).
			WillReturnRows(rows)

		items, err := repo.ListClothingItems(context.Background(), laundry.CategoryMen)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, []laundry.ServiceType{laundry.ServiceWashing, laundry.ServiceIroning}, items[0].AvailableServices)
	})

	t.Run("Unfiltered", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "name_en", "name_bn", "category", "icon", "available_services", "is_active", "created_at", "updated_at",
		})

		mock.ExpectQuery(regexp.QuoteMeta(`FROM clothing_items`)).WillReturnRows(rows)

		items, err := repo.ListClothingItems(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPrice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT price`)).
			WithArgs("ci-shirt", laundry.ServiceWashing, laundry.CategoryMen).
			WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(20))

		price, err := repo.FindPrice(context.Background(), "ci-shirt", laundry.ServiceWashing, laundry.CategoryMen)
		require.NoError(t, err)
		assert.Equal(t, 20, price)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT price`)).
			WithArgs("ci-ghost", laundry.ServiceWashing, laundry.CategoryMen).
			WillReturnRows(sqlmock.NewRows([]string{"price"}))

		_, err := repo.FindPrice(context.Background(), "ci-ghost", laundry.ServiceWashing, laundry.CategoryMen)
		assert.ErrorIs(t, err, ErrPriceNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Seed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	items := []*ClothingItem{{ID: "ci-shirt", NameEN: "Shirt", NameBN: "শার্ট", Category: laundry.CategoryMen, Icon: "shirt", AvailableServices: bothServices, IsActive: true}}
	services := []*LaundryService{{ID: "svc-washing", NameEN: "Washing", NameBN: "ধোলাই", Type: laundry.ServiceWashing, IsActive: true}}
	pricing := []*Pricing{{ID: "pr-shirt-washing", ClothingItemID: "ci-shirt", ServiceType: laundry.ServiceWashing, Category: laundry.CategoryMen, Price: 20, IsActive: true}}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO clothing_items`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO services`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pricing`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Seed(context.Background(), items, services, pricing))
	assert.NoError(t, mock.ExpectationsWereMet())
}

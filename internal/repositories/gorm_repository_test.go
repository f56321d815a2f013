package repositories_test

import (
	"context"
	"errors"
	"testing"

	"potato/internal/database"
	"potato/internal/models"
	"potato/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB opens a private in-memory SQLite database with the schema migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+uuid.New().String()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCart(t *testing.T, db *gorm.DB, userID string, prices ...string) (*models.Cart, []models.CartProduct) {
	t.Helper()
	ctx := context.Background()
	cart := &models.Cart{UserID: userID}
	require.NoError(t, repositories.NewGORMCartRepository(db).Create(ctx, cart))

	cartProducts := make([]models.CartProduct, 0, len(prices))
	for i, price := range prices {
		product := &models.Product{Name: "product", Price: decimal.RequireFromString(price)}
		require.NoError(t, repositories.NewGORMProductRepository(db).Create(ctx, product))
		cp := models.CartProduct{CartID: cart.ID, ProductID: product.ID, Quantity: i + 1}
		require.NoError(t, repositories.NewGORMCartProductRepository(db).Create(ctx, &cp))
		cartProducts = append(cartProducts, cp)
	}
	return cart, cartProducts
}

func TestGORMUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Soonwon", Email: "soonwon@example.com"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	found, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "soonwon@example.com", found.Email)

	_, err = repo.GetByID(ctx, uuid.New().String())
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestGORMCartRepository_FindByUserID(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMCartRepository(db)
	ctx := context.Background()

	cart, _ := seedCart(t, db, "user-1")

	found, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)

	_, err = repo.FindByUserID(ctx, "user-2")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestGORMCartRepository_FindByUserIDForUpdateOnSQLite(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMCartRepository(db)
	cart, _ := seedCart(t, db, "user-1")

	err := repositories.NewGORMTransactor(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		found, err := repo.FindByUserIDForUpdate(ctx, "user-1")
		if err != nil {
			return err
		}
		assert.Equal(t, cart.ID, found.ID)
		return nil
	})
	assert.NoError(t, err)
}

func TestGORMCartProductRepository_FindAllByCartID(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMCartProductRepository(db)
	ctx := context.Background()

	cart, seeded := seedCart(t, db, "user-1", "10.00", "5.50")
	seedCart(t, db, "user-2", "99.99")

	cartProducts, err := repo.FindAllByCartID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, cartProducts, 2)

	ids := []string{cartProducts[0].ID, cartProducts[1].ID}
	assert.ElementsMatch(t, []string{seeded[0].ID, seeded[1].ID}, ids)
	for _, cp := range cartProducts {
		assert.Equal(t, cp.ProductID, cp.Product.ID, "product must be preloaded")
		assert.False(t, cp.Product.Price.IsZero())
	}

	empty, err := repo.FindAllByCartID(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGORMOrderRepository_SaveAndGetByID(t *testing.T) {
	db := setupDB(t)
	orders := repositories.NewGORMOrderRepository(db)
	orderProducts := repositories.NewGORMOrderProductRepository(db)
	ctx := context.Background()

	order := &models.Order{UserID: "user-1", OrderPrice: decimal.RequireFromString("25.50")}
	require.NoError(t, orders.Save(ctx, order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	lines := []models.OrderProduct{
		{OrderID: order.ID, ProductID: "p-1", Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{OrderID: order.ID, ProductID: "p-2", Quantity: 1, Price: decimal.RequireFromString("5.50")},
	}
	require.NoError(t, orderProducts.CreateBatch(ctx, lines))
	assert.NotEmpty(t, lines[0].ID)
	require.NoError(t, orderProducts.CreateBatch(ctx, nil))

	found, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.5").Equal(found.OrderPrice))
	assert.Len(t, found.OrderProducts, 2)

	byOrder, err := orderProducts.FindAllByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, byOrder, 2)

	_, err = orders.GetByID(ctx, uuid.New().String())
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestGORMTransactor_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	orders := repositories.NewGORMOrderRepository(db)
	transactor := repositories.NewGORMTransactor(db)
	boom := errors.New("boom")

	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if err := orders.Save(ctx, &models.Order{UserID: "user-1", OrderPrice: decimal.NewFromInt(1)}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMTransactor_Commits(t *testing.T) {
	db := setupDB(t)
	orders := repositories.NewGORMOrderRepository(db)
	transactor := repositories.NewGORMTransactor(db)

	var saved models.Order
	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		saved = models.Order{UserID: "user-1", OrderPrice: decimal.NewFromInt(3)}
		return orders.Save(ctx, &saved)
	})
	require.NoError(t, err)

	found, err := orders.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.UserID)
}

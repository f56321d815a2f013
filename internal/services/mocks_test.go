package services_test

import (
	"context"

	"potato/internal/models"

	"github.com/stretchr/testify/mock"
)

// fakeTransactor runs the function directly and records how it ended.
type fakeTransactor struct {
	committed  int
	rolledBack int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByUserIDForUpdate(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

type MockCartProductRepository struct {
	mock.Mock
}

func (m *MockCartProductRepository) Create(ctx context.Context, cartProduct *models.CartProduct) error {
	args := m.Called(ctx, cartProduct)
	return args.Error(0)
}

func (m *MockCartProductRepository) FindAllByCartID(ctx context.Context, cartID string) ([]models.CartProduct, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartProduct), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockOrderProductRepository struct {
	mock.Mock
}

func (m *MockOrderProductRepository) CreateBatch(ctx context.Context, orderProducts []models.OrderProduct) error {
	args := m.Called(ctx, orderProducts)
	return args.Error(0)
}

func (m *MockOrderProductRepository) FindAllByOrderID(ctx context.Context, orderID string) ([]models.OrderProduct, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderProduct), args.Error(1)
}

type MockUserGetter struct {
	mock.Mock
}

func (m *MockUserGetter) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCartFinder struct {
	mock.Mock
}

func (m *MockCartFinder) FindCart(ctx context.Context, userID string) (*models.Cart, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Cart), args.Bool(1), args.Error(2)
}

type MockOrderProductCreator struct {
	mock.Mock
}

func (m *MockOrderProductCreator) CreateOrderProductWithCart(ctx context.Context, userID string, order *models.Order, selected []models.CartProduct) error {
	args := m.Called(ctx, userID, order, selected)
	return args.Error(0)
}

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

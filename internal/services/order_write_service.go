package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"potato/internal/apperrors"
	"potato/internal/dto"
	"potato/internal/models"
	"potato/internal/repositories"
)

// UserGetter resolves users by ID.
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// CartFinder resolves the cart of a user, if any.
type CartFinder interface {
	FindCart(ctx context.Context, userID string) (*models.Cart, bool, error)
}

// OrderProductCreator writes the lines of a saved order.
type OrderProductCreator interface {
	CreateOrderProductWithCart(ctx context.Context, userID string, order *models.Order, selected []models.CartProduct) error
}

// MessagePublisher publishes a message body to an exchange.
type MessagePublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

const (
	orderExchange          = "order"
	orderCreatedRoutingKey = "order.created"
)

// OrderWriteService turns carts into orders.
type OrderWriteService struct {
	tx            repositories.Transactor
	users         UserGetter
	carts         CartFinder
	cartProducts  repositories.CartProductRepository
	orders        repositories.OrderRepository
	orderProducts OrderProductCreator
	publisher     MessagePublisher
}

// NewOrderWriteService creates a new OrderWriteService. publisher may be nil,
// in which case no order events are published.
func NewOrderWriteService(
	tx repositories.Transactor,
	users UserGetter,
	carts CartFinder,
	cartProducts repositories.CartProductRepository,
	orders repositories.OrderRepository,
	orderProducts OrderProductCreator,
	publisher MessagePublisher,
) *OrderWriteService {
	return &OrderWriteService{
		tx:            tx,
		users:         users,
		carts:         carts,
		cartProducts:  cartProducts,
		orders:        orders,
		orderProducts: orderProducts,
		publisher:     publisher,
	}
}

// CreateOrderWithCart creates an order from the cart products of userID
// listed in req and returns the new order's ID. Everything up to and
// including the order lines is written in one transaction.
func (s *OrderWriteService) CreateOrderWithCart(ctx context.Context, userID string, req dto.OrderCreateRequest) (string, error) {
	var order *models.Order
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		cart, found, err := s.carts.FindCart(ctx, userID)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.ErrCartNotFound
		}

		cartProducts, err := s.cartProducts.FindAllByCartID(ctx, cart.ID)
		if err != nil {
			return err
		}

		selected, ok := selectCartProducts(cartProducts, req.CartProductIDList)
		if !ok {
			return apperrors.ErrCartProductNotFound
		}

		user, err := s.users.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		order = &models.Order{
			UserID:     user.ID,
			OrderPrice: TotalPrice(selected),
			Status:     models.OrderStatusPending,
		}
		if err := s.orders.Save(ctx, order); err != nil {
			return err
		}

		return s.orderProducts.CreateOrderProductWithCart(ctx, userID, order, selected)
	})
	if err != nil {
		return "", fmt.Errorf("create order for user %s: %w", userID, err)
	}

	s.publishOrderCreated(order)
	return order.ID, nil
}

// publishOrderCreated announces a committed order. Failures are logged only;
// the order already exists.
func (s *OrderWriteService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(models.OrderCreatedEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		OrderPrice: order.OrderPrice,
		LineCount:  len(order.OrderProducts),
		CreatedAt:  order.CreatedAt,
	})
	if err != nil {
		log.Printf("Failed to marshal order created event for order %s: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish(orderExchange, orderCreatedRoutingKey, body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	}
}

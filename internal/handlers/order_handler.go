package handlers

import (
	"context"
	"log"

	"potato/internal/apperrors"
	"potato/internal/dto"
	"potato/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderCreator creates orders from carts.
type OrderCreator interface {
	CreateOrderWithCart(ctx context.Context, userID string, req dto.OrderCreateRequest) (string, error)
}

// OrderReader reads a user's orders.
type OrderReader interface {
	GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error)
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	writer   OrderCreator
	reader   OrderReader
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(writer OrderCreator, reader OrderReader) *OrderHandler {
	return &OrderHandler{
		writer:   writer,
		reader:   reader,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. router must run the
// authentication middleware first.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleCreateOrder turns the selected cart products of the caller into an order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return respondError(c, apperrors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	orderID, err := h.writer.CreateOrderWithCart(c.UserContext(), userID, req)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"orderId": orderID,
	})
}

// HandleGetOrderByID returns one of the caller's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	order, err := h.reader.GetOrder(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

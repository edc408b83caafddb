package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"JerseyStoreAPI/internal/model"
	"JerseyStoreAPI/pkg/prometheus"
	"JerseyStoreAPI/pkg/validation"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInFlight   = errors.New("checkout already in progress")
	ErrValidationRejected = errors.New("missing required checkout fields")
)

type OrderStore interface {
	CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) (string, error)
	GetOrderByID(ctx context.Context, orderID string) (*model.OrderResponse, error)
}

// EventPublisher sends the order-placed event; nil disables publishing.
type EventPublisher interface {
	Produce(message, topic, key string) error
}

type orderPlacedEvent struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	LineCount   int     `json:"line_count"`
	PlacedAt    string  `json:"placed_at"`
}

// CheckoutService turns a session cart plus customer fields into one
// orders row and its order_items rows. A failed submit leaves the cart
// untouched so the caller lands back on the form with its fields intact;
// only a successful submit clears the cart.
type CheckoutService struct {
	Orders OrderStore
	Cart   *CartService

	publisher EventPublisher
	topic     string
	log       *slog.Logger

	mu         sync.Mutex
	submitting map[string]bool
}

func NewCheckoutService(orders OrderStore, cart *CartService, publisher EventPublisher, topic string, log *slog.Logger) *CheckoutService {
	return &CheckoutService{
		Orders:     orders,
		Cart:       cart,
		publisher:  publisher,
		topic:      topic,
		log:        log,
		submitting: make(map[string]bool),
	}
}

// Submit validates the form, writes order + items in one transaction,
// and clears the cart on success. One submission in flight per session.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, form model.CheckoutForm) (string, error) {
	startTime := time.Now()

	if err := validation.Struct(form); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidationRejected, err)
	}

	lines := s.Cart.Lines(sessionID)
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	if !s.beginSubmit(sessionID) {
		return "", ErrCheckoutInFlight
	}
	defer s.endSubmit(sessionID)

	order := &model.Order{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		ShippingAddress: form.ShippingAddress,
		Status:          model.OrderStatusPending,
	}
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		order.TotalAmount += line.Price * float64(line.Quantity)
		items = append(items, model.OrderItem{
			JerseyID: line.JerseyID,
			Quantity: line.Quantity,
			Size:     line.Size,
			Price:    line.Price,
		})
	}

	orderID, err := s.Orders.CreateOrder(ctx, order, items)
	if err != nil {
		prometheus.OrdersProcessed.WithLabelValues("failed").Inc()
		s.log.Error("order submission failed", "error", err, "session_id", sessionID)
		return "", fmt.Errorf("place order: %w", err)
	}

	s.Cart.Clear(sessionID)
	s.publishOrderPlaced(orderID, order.TotalAmount, len(items))

	prometheus.OrdersProcessed.WithLabelValues("success").Inc()
	prometheus.OrderProcessingDuration.Observe(time.Since(startTime).Seconds())
	s.log.Info("order placed",
		"order_id", orderID,
		"total_amount", order.TotalAmount,
		"items_count", len(items),
		"processing_time_ms", time.Since(startTime).Milliseconds(),
	)
	return orderID, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*model.OrderResponse, error) {
	return s.Orders.GetOrderByID(ctx, orderID)
}

func (s *CheckoutService) beginSubmit(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting[sessionID] {
		return false
	}
	s.submitting[sessionID] = true
	return true
}

func (s *CheckoutService) endSubmit(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submitting, sessionID)
}

// publish failures are logged only; the order is already committed.
func (s *CheckoutService) publishOrderPlaced(orderID string, total float64, lineCount int) {
	if s.publisher == nil {
		return
	}
	msg, err := json.Marshal(orderPlacedEvent{
		OrderID:     orderID,
		TotalAmount: total,
		LineCount:   lineCount,
		PlacedAt:    time.Now().Format(time.RFC3339),
	})
	if err != nil {
		s.log.Error("failed to marshal order event", "error", err, "order_id", orderID)
		return
	}
	if err := s.publisher.Produce(string(msg), s.topic, orderID); err != nil {
		s.log.Error("failed to publish order event", "error", err, "order_id", orderID)
	}
}

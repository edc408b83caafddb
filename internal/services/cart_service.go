package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"JerseyStoreAPI/internal/model"

	"github.com/google/uuid"
)

// JerseyGetter resolves a jersey by id; reads normally go through the
// cached repository.
type JerseyGetter interface {
	GetByID(ctx context.Context, id string) (*model.Jersey, error)
}

// CartService owns the session carts. A line is keyed by (jersey id,
// size): at most one line per key, quantity always >= 1. Carts live in
// memory for the session's lifetime only.
type CartService struct {
	Jerseys JerseyGetter

	mu    sync.Mutex
	carts map[string][]model.CartLine
}

func NewCartService(jerseys JerseyGetter) *CartService {
	return &CartService{
		Jerseys: jerseys,
		carts:   make(map[string][]model.CartLine),
	}
}

// Add puts quantity units of (jersey, size) in the session's cart,
// merging into an existing line. An empty sessionID starts a new
// session; the (possibly new) session id is returned.
// The detail-view stepper never goes below 1, so quantity < 1 is
// rejected here rather than treated as removal.
func (s *CartService) Add(ctx context.Context, sessionID, jerseyID, size string, quantity int) (string, error) {
	if quantity < 1 {
		return sessionID, errors.New("quantity must be >= 1")
	}

	jersey, err := s.Jerseys.GetByID(ctx, jerseyID)
	if err != nil {
		return sessionID, err
	}
	if !jersey.HasSize(size) {
		return sessionID, fmt.Errorf("size %q not available for this jersey", size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	lines := s.carts[sessionID]
	for i, line := range lines {
		if line.JerseyID == jerseyID && line.Size == size {
			lines[i].Quantity += quantity
			return sessionID, nil
		}
	}
	s.carts[sessionID] = append(lines, model.CartLine{
		JerseyID: jersey.JerseyID,
		Name:     jersey.Name,
		Size:     size,
		Quantity: quantity,
		Price:    jersey.Price,
	})
	return sessionID, nil
}

// Remove deletes the (jersey, size) line; no-op when absent.
func (s *CartService) Remove(sessionID, jerseyID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(sessionID, jerseyID, size)
}

// SetQuantity replaces the line's quantity. quantity <= 0 removes the
// line (the cart-view stepper is allowed to reach 0).
func (s *CartService) SetQuantity(sessionID, jerseyID, size string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLine(sessionID, jerseyID, size)
		return nil
	}

	lines := s.carts[sessionID]
	for i, line := range lines {
		if line.JerseyID == jerseyID && line.Size == size {
			lines[i].Quantity = quantity
			return nil
		}
	}
	return errors.New("cart line not found")
}

// Clear empties the session's cart.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Lines returns a copy of the session's cart lines in insertion order.
func (s *CartService) Lines(sessionID string) []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out
}

func (s *CartService) TotalPrice(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.carts[sessionID] {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (s *CartService) TotalCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.carts[sessionID] {
		count += line.Quantity
	}
	return count
}

// Get returns the cart (lines with subtotals, total, count).
func (s *CartService) Get(sessionID string) *model.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := &model.CartResponse{SessionID: sessionID, Lines: []model.CartLine{}}
	for _, line := range s.carts[sessionID] {
		line.Subtotal = line.Price * float64(line.Quantity)
		resp.Lines = append(resp.Lines, line)
		resp.Total += line.Subtotal
		resp.Count += line.Quantity
	}
	return resp
}

// caller must hold s.mu
func (s *CartService) removeLine(sessionID, jerseyID, size string) {
	lines := s.carts[sessionID]
	for i, line := range lines {
		if line.JerseyID == jerseyID && line.Size == size {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

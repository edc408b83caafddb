package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"JerseyStoreAPI/internal/model"
	"JerseyStoreAPI/internal/repository"
)

// CatalogService holds the in-memory catalog, loaded once from postgres.
// A failed load leaves the catalog empty; the service stays up.
type CatalogService struct {
	JerseyRepo   *repository.JerseyRepository
	CategoryRepo *repository.CategoryRepository

	mu         sync.RWMutex
	jerseys    []model.Jersey
	categories []model.Category

	log *slog.Logger
}

func NewCatalogService(jr *repository.JerseyRepository, cr *repository.CategoryRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{
		JerseyRepo:   jr,
		CategoryRepo: cr,
		log:          log,
	}
}

// Load fetches jerseys (featured first) and categories (by name) and
// replaces the in-memory snapshot.
func (s *CatalogService) Load(ctx context.Context) error {
	jerseys, err := s.JerseyRepo.List(ctx)
	if err != nil {
		s.log.Error("failed to load jerseys", "error", err)
		return err
	}
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		s.log.Error("failed to load categories", "error", err)
		return err
	}

	s.mu.Lock()
	s.jerseys = jerseys
	s.categories = categories
	s.mu.Unlock()

	s.log.Info("catalog loaded", "jerseys", len(jerseys), "categories", len(categories))
	return nil
}

func (s *CatalogService) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// Filter returns the jerseys matching the category (when given) and the
// free-text query, preserving catalog order.
func (s *CatalogService) Filter(categoryID *string, query string) []model.Jersey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterJerseys(s.jerseys, categoryID, query)
}

// Featured returns up to limit featured jerseys in catalog order.
// limit <= 0 means no limit.
func (s *CatalogService) Featured(limit int) []model.Jersey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Jersey, 0)
	for _, j := range s.jerseys {
		if !j.Featured {
			continue
		}
		out = append(out, j)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// FilterJerseys is the pure filter over a catalog snapshot. The empty
// query matches everything; matching is a case-insensitive substring
// check on name, team, and player name.
func FilterJerseys(jerseys []model.Jersey, categoryID *string, query string) []model.Jersey {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Jersey, 0, len(jerseys))
	for _, j := range jerseys {
		if categoryID != nil {
			if j.CategoryID == nil || *j.CategoryID != *categoryID {
				continue
			}
		}
		if q != "" && !matchesQuery(&j, q) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesQuery(j *model.Jersey, q string) bool {
	return strings.Contains(strings.ToLower(j.Name), q) ||
		strings.Contains(strings.ToLower(j.Team), q) ||
		strings.Contains(strings.ToLower(j.PlayerName), q)
}

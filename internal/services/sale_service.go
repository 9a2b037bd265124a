package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/validation"

	"github.com/google/uuid"
)

// EventPublisher delivers sale events to the message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, payload interface{}) error
}

// SaleService handles business logic related to sales.
type SaleService struct {
	repo      repositories.SaleRepository
	rules     *validation.Engine
	publisher EventPublisher // nil disables events
	now       func() time.Time
}

// NewSaleService creates a new SaleService. publisher may be nil.
func NewSaleService(repo repositories.SaleRepository, rules *validation.Engine, publisher EventPublisher) *SaleService {
	return &SaleService{
		repo:      repo,
		rules:     rules,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetAllSales retrieves all sales with product, category and client detail.
func (s *SaleService) GetAllSales(ctx context.Context) ([]models.Sale, error) {
	return s.repo.GetAll(ctx)
}

// GetSaleByID retrieves a single sale with full detail.
func (s *SaleService) GetSaleByID(ctx context.Context, id uint) (*models.Sale, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, validation.NotFoundFor(validation.SaleResource)
	}
	return sale, err
}

// resolve replaces the sale's product and client references with the
// stored rows. The product is resolved first.
func (s *SaleService) resolve(ctx context.Context, target, payload *models.Sale) error {
	product, err := s.rules.ResolveProduct(ctx, payload.Product)
	if err != nil {
		return err
	}
	client, err := s.rules.ResolveClient(ctx, payload.Client)
	if err != nil {
		return err
	}
	target.Product, target.ProductID = product, product.ID
	target.Client, target.ClientID = client, client.ID
	return nil
}

// CreateSale resolves, validates and stores a sale, then returns it re-read
// with every relation loaded.
func (s *SaleService) CreateSale(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	sale.ID = 0
	if err := s.resolve(ctx, sale, sale); err != nil {
		return nil, err
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = s.now().UTC()
	}
	if err := s.rules.Sale(ctx, sale); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, sale.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload sale %d: %w", sale.ID, err)
	}
	s.publish(ctx, models.SaleCreated, created)
	return created, nil
}

// UpdateSale overwrites the sale at id with the payload. Unlike create, a
// missing date is rejected rather than defaulted.
func (s *SaleService) UpdateSale(ctx context.Context, id uint, sale *models.Sale) (*models.Sale, error) {
	if sale.ID != id {
		return nil, validation.IDMismatchFor(validation.SaleResource)
	}
	existing, err := s.GetSaleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, existing, sale); err != nil {
		return nil, err
	}

	existing.Quantity = sale.Quantity
	existing.Total = sale.Total
	existing.SaleDate = sale.SaleDate
	if err := s.rules.Sale(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.publish(ctx, models.SaleUpdated, existing)
	return existing, nil
}

// DeleteSale removes the sale at id.
func (s *SaleService) DeleteSale(ctx context.Context, id uint) error {
	existing, err := s.GetSaleByID(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return validation.NotFoundFor(validation.SaleResource)
	}
	if err != nil {
		return err
	}
	s.publish(ctx, models.SaleDeleted, existing)
	return nil
}

// publish sends a sale event. Failures are logged and never fail the write
// that already happened.
func (s *SaleService) publish(ctx context.Context, eventType string, sale *models.Sale) {
	if s.publisher == nil {
		slog.Debug("event publisher not configured, skipping sale event", "type", eventType, "sale_id", sale.ID)
		return
	}

	event := models.SaleEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		SaleID:     sale.ID,
		ProductID:  sale.ProductID,
		ClientID:   sale.ClientID,
		Quantity:   sale.Quantity,
		Total:      sale.Total,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishJSON(ctx, event); err != nil {
		slog.Warn("failed to publish sale event", "type", eventType, "sale_id", sale.ID, "error", err)
		return
	}
	slog.Info("published sale event", "type", eventType, "sale_id", sale.ID, "event_id", event.EventID)
}

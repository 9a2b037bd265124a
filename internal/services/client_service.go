package services

import (
	"context"
	"errors"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/validation"
)

// ClientService handles business logic related to clients.
type ClientService struct {
	repo  repositories.ClientRepository
	rules *validation.Engine
}

func NewClientService(repo repositories.ClientRepository, rules *validation.Engine) *ClientService {
	return &ClientService{
		repo:  repo,
		rules: rules,
	}
}

func (s *ClientService) GetAllClients(ctx context.Context) ([]models.Client, error) {
	return s.repo.GetAll(ctx)
}

func (s *ClientService) GetClientByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, validation.NotFoundFor(validation.ClientResource)
	}
	return client, err
}

func (s *ClientService) CreateClient(ctx context.Context, client *models.Client) error {
	client.ID = 0
	if err := s.rules.Client(ctx, client, 0); err != nil {
		return err
	}
	return s.repo.Create(ctx, client)
}

func (s *ClientService) UpdateClient(ctx context.Context, id uint, client *models.Client) (*models.Client, error) {
	if client.ID != id {
		return nil, validation.IDMismatchFor(validation.ClientResource)
	}
	existing, err := s.GetClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.rules.Client(ctx, client, id); err != nil {
		return nil, err
	}

	existing.FirstName = client.FirstName
	existing.LastName = client.LastName
	existing.Email = client.Email
	existing.Phone = client.Phone
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteClient removes the client and, through the foreign key, its sales.
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return validation.NotFoundFor(validation.ClientResource)
	}
	return err
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

// ClientService provides business logic for client management.
type ClientService interface {
	List(ctx context.Context, businessID string) ([]*model.Client, error)
	Get(ctx context.Context, businessID, id string) (*model.Client, error)
	Create(ctx context.Context, businessID string, payload model.ClientPayload) (*model.Client, error)
	Update(ctx context.Context, businessID, id string, payload model.ClientPayload) (*model.Client, error)
	Delete(ctx context.Context, businessID, id string) error
}

type clientService struct {
	repo repository.ClientRepository
}

// NewClientService creates a ClientService.
func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) List(ctx context.Context, businessID string) ([]*model.Client, error) {
	return s.repo.ListByBusinessID(ctx, businessID)
}

func (s *clientService) Get(ctx context.Context, businessID, id string) (*model.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return client, nil
}

func (s *clientService) Create(ctx context.Context, businessID string, payload model.ClientPayload) (*model.Client, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	client := &model.Client{
		BusinessID: businessID,
		Name:       name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Address:    payload.Address,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Update(ctx context.Context, businessID, id string, payload model.ClientPayload) (*model.Client, error) {
	client, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	client.Name = name
	client.Email = payload.Email
	client.Phone = payload.Phone
	client.Address = payload.Address
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.Get(ctx, businessID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

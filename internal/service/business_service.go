package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

// BusinessService provides tenant onboarding and lookup.
type BusinessService interface {
	// GetForOwner returns the caller's business. repository.ErrNotFound when
	// the user has not completed onboarding.
	GetForOwner(ctx context.Context, userID string) (*model.Business, error)
	Create(ctx context.Context, userID string, input model.BusinessInput) (*model.Business, error)
}

type businessService struct {
	repo repository.BusinessRepository
}

// NewBusinessService creates a BusinessService.
func NewBusinessService(repo repository.BusinessRepository) BusinessService {
	return &businessService{repo: repo}
}

func (s *businessService) GetForOwner(ctx context.Context, userID string) (*model.Business, error) {
	return s.repo.GetByOwnerID(ctx, userID)
}

func (s *businessService) Create(ctx context.Context, userID string, input model.BusinessInput) (*model.Business, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	business := &model.Business{
		OwnerID:   userID,
		Name:      name,
		GSTNumber: strings.TrimSpace(input.GSTNumber),
		Address:   strings.TrimSpace(input.Address),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
	}
	if err := s.repo.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

const defaultBrandColor = "#5B8DEF"

type BrandService interface {
	List(ctx context.Context, userID string) ([]*models.Brand, error)
	Create(ctx context.Context, userID string, in *transfer.BrandInput) (*models.Brand, error)
	Update(ctx context.Context, userID, brandID string, in *transfer.BrandInput) (*models.Brand, error)
	Delete(ctx context.Context, userID, brandID string) error
	CanAdd(ctx context.Context, userID string) (bool, error)
}

type brandService struct {
	b     repository.BrandRepository
	tiers TierResolver
}

func NewBrandService(b repository.BrandRepository, tiers TierResolver) BrandService {
	return &brandService{
		b:     b,
		tiers: tiers,
	}
}

func (s *brandService) List(ctx context.Context, userID string) ([]*models.Brand, error) {
	brands, err := s.b.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	return brands, nil
}

func (s *brandService) CanAdd(ctx context.Context, userID string) (bool, error) {
	tier, err := s.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return false, err
	}
	brands, err := s.b.ListByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return len(brands) < tier.MaxBrands(), nil
}

func (s *brandService) Create(ctx context.Context, userID string, in *transfer.BrandInput) (*models.Brand, error) {
	if in == nil || strings.TrimSpace(in.Name) == "" {
		return nil, logErr(invalid("Provide a brand name."))
	}

	tier, err := s.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return nil, err
	}
	ok, err := s.CanAdd(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		err := &QuotaError{Resource: "brand", Limit: tier.MaxBrands(), Message: "Upgrade to Agency to manage more brands."}
		slog.Info(err.Error(), "user_id", userID)
		return nil, err
	}

	brand := &models.Brand{
		UserID:   userID,
		Name:     strings.TrimSpace(in.Name),
		Industry: strings.TrimSpace(in.Industry),
		ColorHex: in.ColorHex,
	}
	if brand.ColorHex == "" {
		brand.ColorHex = defaultBrandColor
	}
	if err := s.b.Save(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) owned(ctx context.Context, userID, brandID string) (*models.Brand, error) {
	brand, err := s.b.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil || brand.UserID != userID {
		return nil, logErr(notFound("brand"))
	}
	return brand, nil
}

func (s *brandService) Update(ctx context.Context, userID, brandID string, in *transfer.BrandInput) (*models.Brand, error) {
	brand, err := s.owned(ctx, userID, brandID)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return brand, nil
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		brand.Name = name
	}
	if in.Industry != "" {
		brand.Industry = strings.TrimSpace(in.Industry)
	}
	if in.ColorHex != "" {
		brand.ColorHex = in.ColorHex
	}
	if err := s.b.Save(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Delete(ctx context.Context, userID, brandID string) error {
	if _, err := s.owned(ctx, userID, brandID); err != nil {
		return err
	}
	return s.b.Remove(ctx, brandID)
}

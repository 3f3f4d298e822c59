package service

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, update *transfer.ProfileUpdate) (*models.UserProfile, error)
}

type profileService struct {
	p repository.ProfileRepository
}

func NewProfileService(p repository.ProfileRepository) ProfileService {
	return &profileService{
		p: p,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, logErr(invalid("User is not valid"))
	}

	profile, err := s.p.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, notFound("profile")
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, update *transfer.ProfileUpdate) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if update == nil {
		return profile, nil
	}

	apply := func(dst **string, src *string) {
		if src != nil {
			*dst = optional(*src)
		}
	}
	apply(&profile.Name, update.Name)
	apply(&profile.Email, update.Email)
	apply(&profile.BusinessName, update.BusinessName)
	apply(&profile.BusinessType, update.BusinessType)
	apply(&profile.AvatarURL, update.AvatarURL)

	if err := s.p.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

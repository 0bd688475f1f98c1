package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=profile.go -destination=mocks/mock_profile.go -package=mocks

// ProfileService регистрация добровольцев и организаций
type ProfileService interface {
	RegisterVolunteer(ctx context.Context, session models.Session, profile *models.VolunteerProfile) error
	RegisterOrganization(ctx context.Context, session models.Session, profile *models.OrganizationProfile) error
	Lookup(ctx context.Context, session models.Session) (*models.Profiles, error)
}

type profileService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		logger: logger,
	}
}

// RegisterVolunteer имя профиля по умолчанию берется из сессии: по нему проверяется право присоединиться
func (s *profileService) RegisterVolunteer(ctx context.Context, session models.Session, profile *models.VolunteerProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "RegisterVolunteer",
		"user_id": session.UserID,
	})

	if session.UserID == "" {
		return ErrNotEligible
	}
	profile.UserID = session.UserID
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		profile.Name = session.DisplayName
	}
	if profile.Name == "" {
		return ErrNotEligible
	}

	if err := s.repo.UpsertVolunteer(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to save volunteer profile")
		return fmt.Errorf("service: could not save volunteer profile: %w", err)
	}
	log.WithField("profile_id", profile.ID).Info("Volunteer profile saved")
	return nil
}

// RegisterOrganization владельцем всегда становится текущий пользователь
func (s *profileService) RegisterOrganization(ctx context.Context, session models.Session, profile *models.OrganizationProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "RegisterOrganization",
		"user_id": session.UserID,
	})

	if session.DisplayName == "" {
		return ErrNotEligible
	}
	profile.Owner = session.DisplayName

	if err := s.repo.UpsertOrganization(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to save organization profile")
		return fmt.Errorf("service: could not save organization profile: %w", err)
	}
	log.WithField("profile_id", profile.ID).Info("Organization profile saved")
	return nil
}

func (s *profileService) Lookup(ctx context.Context, session models.Session) (*models.Profiles, error) {
	out := &models.Profiles{}
	if session.DisplayName == "" {
		return out, nil
	}

	volunteer, err := s.repo.FindVolunteerByName(ctx, session.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("service: could not look up volunteer profile: %w", err)
	}
	org, err := s.repo.FindOrganizationByOwner(ctx, session.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("service: could not look up organization profile: %w", err)
	}
	out.Volunteer = volunteer
	out.Organization = org
	return out, nil
}

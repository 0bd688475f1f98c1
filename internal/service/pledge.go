package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=pledge.go -destination=mocks/mock_pledge.go -package=mocks

// PledgeService присоединение добровольцев и обязательства организаций
type PledgeService interface {
	JoinAsVolunteer(ctx context.Context, incidentID uuid.UUID, session models.Session) error
	PledgeOrganization(ctx context.Context, incidentID uuid.UUID, session models.Session, rawCount string) error
	JoinedIncidents(ctx context.Context, session models.Session) ([]uuid.UUID, error)
}

type pledgeService struct {
	repo      IncidentRepository
	profiles  ProfileRepository
	history   JoinHistory
	publisher feed.Publisher
	clock     clock.Clock
	logger    *logrus.Logger
}

func NewPledgeService(
	repo IncidentRepository,
	profiles ProfileRepository,
	history JoinHistory,
	publisher feed.Publisher,
	clk clock.Clock,
	logger *logrus.Logger,
) PledgeService {
	return &pledgeService{
		repo:      repo,
		profiles:  profiles,
		history:   history,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// JoinAsVolunteer засчитывает пользователя один раз на происшествие.
// Повторный вызов возвращает ErrAlreadyJoined и ничего не меняет.
func (s *pledgeService) JoinAsVolunteer(ctx context.Context, incidentID uuid.UUID, session models.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "pledge",
		"method":      "JoinAsVolunteer",
		"incident_id": incidentID,
		"user_id":     session.UserID,
	})
	log.Info("Attempting to join incident as volunteer")

	if session.UserID == "" || session.DisplayName == "" {
		return ErrNotEligible
	}

	profile, err := s.profiles.FindVolunteerByName(ctx, session.DisplayName)
	if err != nil {
		log.WithError(err).Error("Failed to look up volunteer profile")
		return fmt.Errorf("service: could not check volunteer registration: %w", err)
	}
	if profile == nil {
		log.Warn("Session is not a registered volunteer")
		return ErrNotEligible
	}

	joined, err := s.history.HasJoined(ctx, session.UserID, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to read join history, relying on database")
	}
	if joined {
		log.Info("Join short-circuited by history")
		return ErrAlreadyJoined
	}

	current, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to get incident for join")
		return fmt.Errorf("service: could not get incident: %w", err)
	}
	if current.ReporterID == session.UserID {
		log.Warn("Reporter attempted to join own incident")
		return ErrOwnIncident
	}
	if current.IsResolved() {
		return ErrIncidentResolved
	}

	updated, inserted, err := s.repo.JoinVolunteer(ctx, incidentID, session.UserID)
	if err != nil {
		if errors.Is(err, ErrIncidentResolved) {
			return ErrIncidentResolved
		}
		log.WithError(err).Error("Failed to record volunteer join")
		return fmt.Errorf("service: could not join incident: %w", err)
	}

	if err := s.history.RecordJoin(ctx, session.UserID, incidentID); err != nil {
		log.WithError(err).Warn("Failed to record join history")
	}
	if !inserted {
		log.Info("Volunteer had already joined incident")
		return ErrAlreadyJoined
	}

	s.afterUpdate(ctx, log, updated)
	log.WithField("volunteer_count", updated.VolunteerCount).Info("Volunteer joined incident")
	return nil
}

// PledgeOrganization атомарно дописывает обязательство организации
func (s *pledgeService) PledgeOrganization(ctx context.Context, incidentID uuid.UUID, session models.Session, rawCount string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "pledge",
		"method":      "PledgeOrganization",
		"incident_id": incidentID,
		"user_id":     session.UserID,
	})
	log.Info("Attempting to pledge organization members")

	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil || count <= 0 {
		log.WithField("raw_count", rawCount).Warn("Rejected pledge with invalid count")
		return ErrInvalidCount
	}

	if session.DisplayName == "" {
		return ErrNotEligible
	}
	org, err := s.profiles.FindOrganizationByOwner(ctx, session.DisplayName)
	if err != nil {
		log.WithError(err).Error("Failed to look up organization profile")
		return fmt.Errorf("service: could not check organization registration: %w", err)
	}
	if org == nil {
		log.Warn("Session does not own an organization")
		return ErrNotEligible
	}

	pledge := models.Pledge{
		OrganizationName: org.Name,
		Count:            count,
		PledgedAt:        s.clock.Now(),
	}
	updated, err := s.repo.AddPledge(ctx, incidentID, pledge)
	if err != nil {
		if errors.Is(err, ErrIncidentResolved) {
			return ErrIncidentResolved
		}
		log.WithError(err).Error("Failed to add pledge")
		return fmt.Errorf("service: could not add pledge: %w", err)
	}

	s.afterUpdate(ctx, log, updated)
	log.WithFields(logrus.Fields{
		"organization":    org.Name,
		"count":           count,
		"volunteer_count": updated.VolunteerCount,
	}).Info("Organization pledge recorded")
	return nil
}

// JoinedIncidents история присоединений для отметок "Joined" в ленте
func (s *pledgeService) JoinedIncidents(ctx context.Context, session models.Session) ([]uuid.UUID, error) {
	if session.UserID == "" {
		return []uuid.UUID{}, nil
	}
	ids, err := s.history.Joined(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not read join history: %w", err)
	}
	return ids, nil
}

func (s *pledgeService) afterUpdate(ctx context.Context, log *logrus.Entry, updated *models.Incident) {
	refreshCache(ctx, s.repo, log, updated)
	publishChange(ctx, s.publisher, s.clock, log, feed.EventUpdated, updated)
}

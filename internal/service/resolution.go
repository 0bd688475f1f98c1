package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=resolution.go -destination=mocks/mock_resolution.go -package=mocks

// ResolutionService закрытие происшествий с обязательной записью аудита
type ResolutionService interface {
	Resolve(ctx context.Context, incidentID uuid.UUID, note string, session models.Session) error
	History(ctx context.Context, incidentID uuid.UUID) ([]*models.ResolutionLogEntry, error)
}

type resolutionService struct {
	repo      IncidentRepository
	logs      ResolutionLogRepository
	publisher feed.Publisher
	clock     clock.Clock
	logger    *logrus.Logger
}

func NewResolutionService(
	repo IncidentRepository,
	logs ResolutionLogRepository,
	publisher feed.Publisher,
	clk clock.Clock,
	logger *logrus.Logger,
) ResolutionService {
	return &resolutionService{
		repo:      repo,
		logs:      logs,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// Resolve сначала пишет журнал, затем меняет статус. Журнал при сбое второго шага не откатывается.
func (s *resolutionService) Resolve(ctx context.Context, incidentID uuid.UUID, note string, session models.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resolution",
		"method":      "Resolve",
		"incident_id": incidentID,
		"user_id":     session.UserID,
	})

	note = strings.TrimSpace(note)
	if note == "" {
		return ErrEmptyNote
	}
	log.Info("Attempting to resolve incident")

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to get incident for resolution")
		return fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.IsResolved() {
		log.Warn("Incident is already resolved")
		return ErrAlreadyResolved
	}

	resolverID, resolverName := session.ReporterIdentity()
	entry := &models.ResolutionLogEntry{
		IncidentID:                incident.ID,
		IncidentType:              incident.Type,
		ResolvedByName:            resolverName,
		ResolvedByUserID:          resolverID,
		ResolvedAt:                s.clock.Now(),
		Note:                      note,
		OriginalIncidentTimestamp: incident.CreatedAt,
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to append resolution log")
		return fmt.Errorf("service: could not write resolution log: %w", err)
	}

	resolved, err := s.repo.MarkResolved(ctx, incidentID, note)
	if err != nil {
		if errors.Is(err, ErrAlreadyResolved) {
			log.Warn("Incident was resolved concurrently")
			return ErrAlreadyResolved
		}
		log.WithError(err).WithField("log_id", entry.ID).Error("Resolution log written but status update failed")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}

	refreshCache(ctx, s.repo, log, resolved)
	publishChange(ctx, s.publisher, s.clock, log, feed.EventUpdated, resolved)

	log.WithField("log_id", entry.ID).Info("Incident resolved successfully")
	return nil
}

// History записи журнала по происшествию, новые первыми
func (s *resolutionService) History(ctx context.Context, incidentID uuid.UUID) ([]*models.ResolutionLogEntry, error) {
	entries, err := s.logs.ListByIncident(ctx, incidentID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "resolution",
			"method":      "History",
			"incident_id": incidentID,
		}).WithError(err).Error("Failed to list resolution logs")
		return nil, fmt.Errorf("service: could not list resolution logs: %w", err)
	}
	return entries, nil
}

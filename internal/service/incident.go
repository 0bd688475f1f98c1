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

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// SubmissionObserver считает отправки по каналу (guided, sos) и исходу
type SubmissionObserver interface {
	ObserveSubmission(channel, outcome string)
}

// IncidentService определяет контракт для приема и чтения происшествий
type IncidentService interface {
	Submit(ctx context.Context, draft models.IncidentDraft, session models.Session) (uuid.UUID, error)
	SubmitSOS(ctx context.Context, location *models.Location, address string, session models.Session) (uuid.UUID, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListAll(ctx context.Context) ([]*models.Incident, error)
	ListFeed(ctx context.Context, viewer models.Session, area string) ([]*models.Incident, error)
	Stats(ctx context.Context) (feed.Stats, error)
	DeleteIncident(ctx context.Context, id uuid.UUID, session models.Session) error
}

type incidentService struct {
	repo      IncidentRepository
	publisher feed.Publisher
	notifier  ResponderNotifier
	clock     clock.Clock
	logger    *logrus.Logger
	observer  SubmissionObserver
}

func NewIncidentService(
	repo IncidentRepository,
	publisher feed.Publisher,
	notifier ResponderNotifier,
	clk clock.Clock,
	logger *logrus.Logger,
	observer SubmissionObserver,
) IncidentService {
	return &incidentService{
		repo:      repo,
		publisher: publisher,
		notifier:  notifier,
		clock:     clk,
		logger:    logger,
		observer:  observer,
	}
}

// Submit одна запись в хранилище без повторов. Ошибка хранилища возвращается как есть.
func (s *incidentService) Submit(ctx context.Context, draft models.IncidentDraft, session models.Session) (uuid.UUID, error) {
	return s.submit(ctx, "guided", draft, session)
}

// SubmitSOS немедленная отправка с кнопки SOS, координаты необязательны
func (s *incidentService) SubmitSOS(ctx context.Context, location *models.Location, address string, session models.Session) (uuid.UUID, error) {
	draft := models.IncidentDraft{
		Type:     models.TypePanic,
		Location: location,
		Address:  address,
		Details:  models.SOSDetails,
	}
	return s.submit(ctx, "sos", draft, session)
}

func (s *incidentService) submit(ctx context.Context, channel string, draft models.IncidentDraft, session models.Session) (uuid.UUID, error) {
	reporterID, reporterName := session.ReporterIdentity()
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Submit",
		"channel":     channel,
		"type":        draft.Type,
		"reporter_id": reporterID,
	})
	log.Info("Attempting to submit a new incident")

	if !draft.Type.Valid() {
		log.Warn("Rejected incident with unknown type")
		s.observe(channel, "invalid")
		return uuid.Nil, ErrInvalidType
	}

	incident := &models.Incident{
		Type:           draft.Type,
		Status:         models.StatusPending,
		CreatedAt:      s.clock.Now(),
		Location:       draft.Location,
		Address:        strings.TrimSpace(draft.Address),
		Details:        draft.Details,
		ReporterID:     reporterID,
		ReporterName:   reporterName,
		VolunteerCount: 0,
		Pledges:        []models.Pledge{},
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		s.observe(channel, "failed")
		return uuid.Nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithField("incident_id", incident.ID)
	s.observe(channel, "succeeded")

	// Запись уже состоялась: сбои рассылки только логируются
	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache new incident")
	}
	s.publish(ctx, log, feed.EventCreated, incident)
	if s.notifier != nil {
		if err := s.notifier.NotifyCreated(ctx, incident); err != nil {
			log.WithError(err).Warn("Failed to enqueue responder webhook")
		}
	}

	log.Info("Incident submitted successfully")
	return incident.ID, nil
}

// GetIncident получает происшествие по ID, сначала из кэша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache, falling back to database")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrIncidentNotFound) {
			log.Warn("Incident not found")
		} else {
			log.WithError(err).Error("Failed to get incident in repository")
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListAll полный набор без фильтров, источник снимков для ленты
func (s *incidentService) ListAll(ctx context.Context) ([]*models.Incident, error) {
	incidents, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "ListAll",
		}).WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// ListFeed упорядоченная лента для зрителя с учетом окна видимости и фильтра района
func (s *incidentService) ListFeed(ctx context.Context, viewer models.Session, area string) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListFeed",
		"viewer_id": viewer.UserID,
		"area":      area,
	})

	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	view := feed.Build(all, feed.Query{
		ViewerName: viewer.DisplayName,
		Area:       area,
		Now:        s.clock.Now(),
	})

	log.WithField("count", len(view)).Info("Feed listed successfully")
	return view, nil
}

// Stats сводка по всем происшествиям
func (s *incidentService) Stats(ctx context.Context) (feed.Stats, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return feed.Stats{}, err
	}
	return feed.Summarize(all), nil
}

// DeleteIncident удаление доступно только администратору
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID, session models.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
		"user_id":     session.UserID,
	})
	log.Info("Attempting to delete incident")

	if !session.IsAdmin() {
		log.Warn("Non-admin session attempted to delete incident")
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.publish(ctx, log, feed.EventDeleted, &models.Incident{ID: id})

	log.Info("Incident deleted successfully")
	return nil
}

func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, kind feed.EventKind, incident *models.Incident) {
	publishChange(ctx, s.publisher, s.clock, log, kind, incident)
}

func (s *incidentService) observe(channel, outcome string) {
	if s.observer != nil {
		s.observer.ObserveSubmission(channel, outcome)
	}
}

// refreshCache записывает новую версию происшествия в кэш вместо удаления ключа,
// чтобы параллельное чтение не вернуло туда старую версию. При ошибке ключ удаляется.
func refreshCache(ctx context.Context, repo IncidentRepository, log *logrus.Entry, incident *models.Incident) {
	err := repo.SetIncidentCache(ctx, incident)
	if err == nil {
		return
	}
	log.WithError(err).Warn("Failed to write incident through to cache")
	if err := repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}

// publishChange общая рассылка изменения для всех сервисов
func publishChange(ctx context.Context, publisher feed.Publisher, clk clock.Clock, log *logrus.Entry, kind feed.EventKind, incident *models.Incident) {
	if publisher == nil {
		return
	}
	event := feed.Event{Kind: kind, Incident: incident, OccurredAt: clk.Now()}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident change")
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/NITHEESH-14/CrisisSync/internal/location"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/wizard"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=wizard.go -destination=mocks/mock_wizard.go -package=mocks

const maxWizardAttempts = 3

// LocationAcquirer получение координат устройства. При неудаче ошибка *location.ManualEntryRequired.
type LocationAcquirer interface {
	Acquire(ctx context.Context, env location.Environment, signals location.Signals) (*models.Location, error)
}

// WizardService пошаговая отправка происшествия. Поток хранится между запросами.
type WizardService interface {
	Start(ctx context.Context) (*wizard.Flow, error)
	Get(ctx context.Context, id uuid.UUID) (*wizard.Flow, error)
	Navigate(ctx context.Context, id uuid.UUID, step wizard.Step) (*wizard.Flow, error)
	SelectType(ctx context.Context, id uuid.UUID, t models.IncidentType) (*wizard.Flow, error)
	AcquireLocation(ctx context.Context, id uuid.UUID, env location.Environment, signals location.Signals) (*wizard.Flow, error)
	Skip(ctx context.Context, id uuid.UUID) (*wizard.Flow, error)
	ConfirmAddress(ctx context.Context, id uuid.UUID, address string) (*wizard.Flow, error)
	Back(ctx context.Context, id uuid.UUID) (*wizard.Flow, error)
	Submit(ctx context.Context, id uuid.UUID, details string, session models.Session) (*wizard.Flow, error)
}

type wizardService struct {
	store     WizardStore
	incidents IncidentService
	acquirer  LocationAcquirer
	clock     clock.Clock
	logger    *logrus.Logger
}

func NewWizardService(store WizardStore, incidents IncidentService, acquirer LocationAcquirer, clk clock.Clock, logger *logrus.Logger) WizardService {
	return &wizardService{
		store:     store,
		incidents: incidents,
		acquirer:  acquirer,
		clock:     clk,
		logger:    logger,
	}
}

func (s *wizardService) Start(ctx context.Context) (*wizard.Flow, error) {
	flow := wizard.New()
	if err := s.store.Save(ctx, flow); err != nil {
		s.log("Start", flow.ID).WithError(err).Error("Failed to save new wizard flow")
		return nil, fmt.Errorf("service: could not start wizard: %w", err)
	}
	return flow, nil
}

func (s *wizardService) Get(ctx context.Context, id uuid.UUID) (*wizard.Flow, error) {
	flow, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, s.loadError("Get", id, err)
	}
	return flow, nil
}

func (s *wizardService) Navigate(ctx context.Context, id uuid.UUID, step wizard.Step) (*wizard.Flow, error) {
	return s.mutate(ctx, "Navigate", id, func(f *wizard.Flow) error {
		return f.Navigate(step)
	})
}

func (s *wizardService) SelectType(ctx context.Context, id uuid.UUID, t models.IncidentType) (*wizard.Flow, error) {
	return s.mutate(ctx, "SelectType", id, func(f *wizard.Flow) error {
		return f.SelectType(t)
	})
}

// AcquireLocation пробует получить координаты. Неудача переводит поток в ручной ввод адреса
// и ошибкой не считается.
func (s *wizardService) AcquireLocation(ctx context.Context, id uuid.UUID, env location.Environment, signals location.Signals) (*wizard.Flow, error) {
	return s.mutate(ctx, "AcquireLocation", id, func(f *wizard.Flow) error {
		if f.Exited {
			return wizard.ErrExited
		}
		if f.Step != wizard.StepLocation {
			return wizard.ErrWrongStep
		}
		if s.acquirer == nil {
			return f.LocationFailed((&location.ManualEntryRequired{Reason: location.ReasonUnsupported}).Message())
		}

		loc, err := s.acquirer.Acquire(ctx, env, signals)
		if err != nil {
			var manual *location.ManualEntryRequired
			if errors.As(err, &manual) {
				return f.LocationFailed(manual.Message())
			}
			return f.LocationFailed(err.Error())
		}
		return f.LocationAcquired(*loc)
	})
}

func (s *wizardService) Skip(ctx context.Context, id uuid.UUID) (*wizard.Flow, error) {
	return s.mutate(ctx, "Skip", id, func(f *wizard.Flow) error {
		return f.Skip()
	})
}

func (s *wizardService) ConfirmAddress(ctx context.Context, id uuid.UUID, address string) (*wizard.Flow, error) {
	return s.mutate(ctx, "ConfirmAddress", id, func(f *wizard.Flow) error {
		return f.ConfirmAddress(address)
	})
}

func (s *wizardService) Back(ctx context.Context, id uuid.UUID) (*wizard.Flow, error) {
	return s.mutate(ctx, "Back", id, func(f *wizard.Flow) error {
		f.Back()
		return nil
	})
}

// Submit переводит поток в submitting и делает одну запись. Исход записи хранится в потоке,
// ошибка отправки не возвращается вызывающему. Переход из details выполняет только один запрос,
// повторный получает wizard.ErrWrongStep.
func (s *wizardService) Submit(ctx context.Context, id uuid.UUID, details string, session models.Session) (*wizard.Flow, error) {
	var draft models.IncidentDraft
	flow, err := s.mutate(ctx, "Submit", id, func(f *wizard.Flow) error {
		d, err := f.BeginSubmit(details, s.clock.Now())
		draft = d
		return err
	})
	if err != nil {
		return flow, err
	}
	submittedAt := flow.SubmittedAt

	incidentID, submitErr := s.incidents.Submit(ctx, draft, session)
	if submitErr != nil {
		s.log("Submit", id).WithError(submitErr).Warn("Wizard submission failed")
	}

	return s.mutate(ctx, "Submit", id, func(f *wizard.Flow) error {
		// пользователь мог уйти назад, пока шла запись
		if !f.Submitting() || !f.SubmittedAt.Equal(submittedAt) {
			return nil
		}
		if submitErr != nil {
			f.Finish(nil, submitErr)
			return nil
		}
		f.Finish(&incidentID, nil)
		return nil
	})
}

// mutate загружает поток, применяет переход и сохраняет результат с проверкой ревизии.
// При конкурентном изменении переход повторяется на свежей копии.
// Поток сохраняется и при ошибке перехода, так как переход мог сбросить его к выбору типа.
func (s *wizardService) mutate(ctx context.Context, method string, id uuid.UUID, apply func(*wizard.Flow) error) (*wizard.Flow, error) {
	log := s.log(method, id)

	for attempt := 1; ; attempt++ {
		flow, err := s.store.Load(ctx, id)
		if err != nil {
			return nil, s.loadError(method, id, err)
		}

		stepErr := apply(flow)
		if err := s.store.Update(ctx, flow); err != nil {
			if errors.Is(err, ErrWizardConflict) {
				if attempt < maxWizardAttempts {
					log.WithField("attempt", attempt).Debug("Wizard flow changed concurrently, retrying")
					continue
				}
				log.Warn("Wizard flow kept changing concurrently")
				return nil, ErrWizardConflict
			}
			if errors.Is(err, ErrWizardNotFound) {
				return nil, ErrWizardNotFound
			}
			log.WithError(err).Error("Failed to save wizard flow")
			return nil, fmt.Errorf("service: could not save wizard: %w", err)
		}
		if stepErr != nil {
			log.WithError(stepErr).WithField("step", flow.Step).Info("Wizard transition rejected")
			return flow, stepErr
		}

		log.WithField("step", flow.Step).Debug("Wizard transition applied")
		return flow, nil
	}
}

func (s *wizardService) loadError(method string, id uuid.UUID, err error) error {
	if errors.Is(err, ErrWizardNotFound) {
		return ErrWizardNotFound
	}
	s.log(method, id).WithError(err).Error("Failed to load wizard flow")
	return fmt.Errorf("service: could not load wizard: %w", err)
}

func (s *wizardService) log(method string, id uuid.UUID) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service":   "wizard",
		"method":    method,
		"wizard_id": id,
	})
}

package wizard

import (
	"errors"
	"strings"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/google/uuid"
)

// Step шаг мастера, совпадает со значением параметра навигации step
type Step string

const (
	StepType       Step = "type"
	StepLocation   Step = "location"
	StepDetails    Step = "details"
	StepSubmitting Step = "submitting"
)

// LocationMode подсостояние шага location
type LocationMode string

const (
	ModeChoice LocationMode = "choice"
	ModeManual LocationMode = "manual"
)

// Outcome результат отправки
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

const (
	// MinimumDwell минимальное время в состоянии submitting
	MinimumDwell = 1500 * time.Millisecond
	// DisplayWindow через сколько после успешной отправки происходит уход со страницы
	DisplayWindow = 3 * time.Second
)

var (
	ErrWrongStep    = errors.New("transition is not allowed from the current step")
	ErrInvalidType  = errors.New("unknown incident type")
	ErrEmptyAddress = errors.New("address is required")
	ErrUnknownStep  = errors.New("unknown step")
	ErrExited       = errors.New("wizard flow has been exited")
)

// Flow значение конечного автомата мастера. Навигация является следствием переходов.
type Flow struct {
	ID            uuid.UUID           `json:"id"`
	Step          Step                `json:"step"`
	Mode          LocationMode        `json:"mode"`
	Type          models.IncidentType `json:"type,omitempty"`
	Location      *models.Location    `json:"location,omitempty"`
	Address       string              `json:"address,omitempty"`
	Details       string              `json:"details,omitempty"`
	LocationError string              `json:"locationError,omitempty"`
	SubmittedAt   time.Time           `json:"submittedAt"`
	Outcome       Outcome             `json:"outcome,omitempty"`
	IncidentID    *uuid.UUID          `json:"incidentId,omitempty"`
	FailureReason string              `json:"failureReason,omitempty"`
	Exited        bool                `json:"exited"`
	Revision      int64               `json:"revision"`
}

// New начинает поток с выбора типа
func New() *Flow {
	return &Flow{
		ID:   uuid.New(),
		Step: StepType,
		Mode: ModeChoice,
	}
}

// SelectType фиксирует категорию и переводит к шагу location
func (f *Flow) SelectType(t models.IncidentType) error {
	if err := f.expect(StepType); err != nil {
		return err
	}
	if !t.Valid() {
		return ErrInvalidType
	}
	f.Type = t
	f.Step = StepLocation
	f.Mode = ModeChoice
	f.LocationError = ""
	return nil
}

// LocationAcquired успешное определение координат
func (f *Flow) LocationAcquired(loc models.Location) error {
	if err := f.expect(StepLocation); err != nil {
		return err
	}
	f.Location = &loc
	f.LocationError = ""
	f.Step = StepDetails
	return nil
}

// LocationFailed переводит в ручной ввод и сохраняет сообщение для показа
func (f *Flow) LocationFailed(message string) error {
	if err := f.expect(StepLocation); err != nil {
		return err
	}
	f.Mode = ModeManual
	f.LocationError = message
	return nil
}

// Skip ручной ввод по просьбе пользователя
func (f *Flow) Skip() error {
	if err := f.expect(StepLocation); err != nil {
		return err
	}
	f.Mode = ModeManual
	return nil
}

// ConfirmAddress принимает адрес, введённый вручную
func (f *Flow) ConfirmAddress(address string) error {
	if err := f.expect(StepLocation); err != nil {
		return err
	}
	if f.Mode != ModeManual {
		return ErrWrongStep
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrEmptyAddress
	}
	f.Address = address
	f.Step = StepDetails
	return nil
}

// BeginSubmit переводит в submitting и возвращает черновик для записи
func (f *Flow) BeginSubmit(details string, now time.Time) (models.IncidentDraft, error) {
	if err := f.expect(StepDetails); err != nil {
		return models.IncidentDraft{}, err
	}
	f.Details = details
	f.Step = StepSubmitting
	f.SubmittedAt = now
	f.Outcome = OutcomeNone
	f.IncidentID = nil
	f.FailureReason = ""
	return f.Draft(), nil
}

// Finish записывает исход отправки. Поток завершается после MinimumDwell при любом исходе.
func (f *Flow) Finish(id *uuid.UUID, err error) {
	if err != nil {
		f.Outcome = OutcomeFailed
		f.FailureReason = err.Error()
		return
	}
	f.Outcome = OutcomeSucceeded
	f.IncidentID = id
}

// Complete true, когда с начала отправки прошло не меньше MinimumDwell
func (f *Flow) Complete(now time.Time) bool {
	if f.Step != StepSubmitting || f.SubmittedAt.IsZero() {
		return false
	}
	return !now.Before(f.SubmittedAt.Add(MinimumDwell))
}

// RedirectAt момент ухода со страницы после успешной отправки
func (f *Flow) RedirectAt() (time.Time, bool) {
	if f.Step != StepSubmitting || f.Outcome != OutcomeSucceeded {
		return time.Time{}, false
	}
	return f.SubmittedAt.Add(DisplayWindow), true
}

// Back возвращает на предыдущее состояние. Из manual возвращает к выбору способа,
// а с первого шага завершает поток.
func (f *Flow) Back() {
	switch f.Step {
	case StepType:
		f.Exited = true
	case StepLocation:
		if f.Mode == ModeManual {
			f.Mode = ModeChoice
			return
		}
		f.Step = StepType
	case StepDetails:
		f.Step = StepLocation
		f.Mode = ModeChoice
	case StepSubmitting:
		f.Step = StepDetails
		f.SubmittedAt = time.Time{}
		f.Outcome = OutcomeNone
		f.FailureReason = ""
	}
}

// Navigate прямой переход на шаг. Без выбранного типа любой шаг, кроме type, сбрасывает поток.
// В submitting можно попасть только через BeginSubmit, прямой переход ведёт на details.
func (f *Flow) Navigate(step Step) error {
	switch step {
	case StepType, StepLocation, StepDetails, StepSubmitting:
	default:
		return ErrUnknownStep
	}
	if f.Exited {
		return ErrExited
	}
	if step != StepType && f.Type == "" {
		f.reset()
		return nil
	}
	if step == StepSubmitting {
		if f.Submitting() {
			return nil
		}
		step = StepDetails
	}
	f.Step = step
	if step == StepLocation {
		f.Mode = ModeChoice
	}
	return nil
}

// Submitting true, пока поток находится в начатой отправке
func (f *Flow) Submitting() bool {
	return f.Step == StepSubmitting && !f.SubmittedAt.IsZero()
}

// Responders службы, показываемые на экране подтверждения
func (f *Flow) Responders() []string {
	return []string{"Nearby Volunteers", "Social Organizations", models.RespondersFor(f.Type)}
}

// Draft черновик происшествия из собранных данных
func (f *Flow) Draft() models.IncidentDraft {
	return models.IncidentDraft{
		Type:     f.Type,
		Location: f.Location,
		Address:  f.Address,
		Details:  f.Details,
	}
}

func (f *Flow) expect(step Step) error {
	if f.Exited {
		return ErrExited
	}
	if f.Type == "" && step != StepType {
		f.reset()
		return ErrWrongStep
	}
	if f.Step != step {
		return ErrWrongStep
	}
	return nil
}

func (f *Flow) reset() {
	id := f.ID
	*f = Flow{ID: id, Step: StepType, Mode: ModeChoice}
}

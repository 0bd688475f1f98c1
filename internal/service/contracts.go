package service

import (
	"context"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/wizard"
	"github.com/google/uuid"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов.
// Отсутствующее происшествие возвращается как ErrIncidentNotFound.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListAll(ctx context.Context) ([]*models.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// JoinVolunteer атомарно добавляет пару (происшествие, пользователь) и увеличивает счетчик.
	// joined=false, если пара уже была.
	JoinVolunteer(ctx context.Context, id uuid.UUID, userID string) (incident *models.Incident, joined bool, err error)
	AddPledge(ctx context.Context, id uuid.UUID, pledge models.Pledge) (*models.Incident, error)
	MarkResolved(ctx context.Context, id uuid.UUID, note string) (*models.Incident, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// ResolutionLogRepository журнал закрытий, только дополняется
type ResolutionLogRepository interface {
	Append(ctx context.Context, entry *models.ResolutionLogEntry) error
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.ResolutionLogEntry, error)
}

// ProfileRepository регистрации добровольцев и организаций. Отсутствие профиля это (nil, nil).
type ProfileRepository interface {
	UpsertVolunteer(ctx context.Context, profile *models.VolunteerProfile) error
	FindVolunteerByName(ctx context.Context, name string) (*models.VolunteerProfile, error)
	UpsertOrganization(ctx context.Context, profile *models.OrganizationProfile) error
	FindOrganizationByOwner(ctx context.Context, owner string) (*models.OrganizationProfile, error)
}

// JoinHistory локальная история присоединений пользователя
type JoinHistory interface {
	HasJoined(ctx context.Context, userID string, incidentID uuid.UUID) (bool, error)
	RecordJoin(ctx context.Context, userID string, incidentID uuid.UUID) error
	Joined(ctx context.Context, userID string) ([]uuid.UUID, error)
}

// WizardStore хранение незавершенных потоков мастера.
// Update пишет поток, только если сохранённая ревизия совпадает с flow.Revision,
// иначе ErrWizardConflict. При успехе flow.Revision увеличивается.
type WizardStore interface {
	Save(ctx context.Context, flow *wizard.Flow) error
	Load(ctx context.Context, id uuid.UUID) (*wizard.Flow, error)
	Update(ctx context.Context, flow *wizard.Flow) error
}

// ResponderNotifier ставит новое происшествие в очередь вебхука внешним службам
type ResponderNotifier interface {
	NotifyCreated(ctx context.Context, incident *models.Incident) error
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const defaultIncidentCacheTTL = 5 * time.Minute

// setIfNotOlder пишет происшествие, только если в кэше нет версии новее.
// KEYS[1] ключ, ARGV[1] json, ARGV[2] версия, ARGV[3] ttl в миллисекундах.
var setIfNotOlder = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
	local ok, cached = pcall(cjson.decode, cur)
	if ok and type(cached) == 'table' and tonumber(cached['version']) and tonumber(cached['version']) > tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

const incidentColumns = `
	id,
	type,
	status,
	latitude,
	longitude,
	accuracy,
	address,
	details,
	reporter_id,
	reporter_name,
	volunteer_count,
	org_pledges,
	resolution_note,
	version,
	created_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	if cacheTTL <= 0 {
		cacheTTL = defaultIncidentCacheTTL
	}
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create добавляет новое происшествие. id и created_at выдаёт база.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	pledges, err := json.Marshal(nonNilPledges(incident.Pledges))
	if err != nil {
		return fmt.Errorf("failed to marshal pledges: %w", err)
	}
	lat, lon, acc := locationArgs(incident.Location)

	query := `
		INSERT INTO incidents (type, status, latitude, longitude, accuracy, address, details,
			reporter_id, reporter_name, volunteer_count, org_pledges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, version;
	`
	err = r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Status,
		lat, lon, acc,
		incident.Address,
		incident.Details,
		incident.ReporterID,
		incident.ReporterName,
		incident.VolunteerCount,
		pledges,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.Version)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает происшествие по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListAll полный набор происшествий, новые первыми
func (r *IncidentRepository) ListAll(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// Delete удаляет происшествие. Записи о присоединении удаляются каскадом, журнал закрытий остаётся.
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for delete: %w", id, service.ErrIncidentNotFound)
	}
	return nil
}

// JoinVolunteer в одной транзакции вставляет пару (происшествие, пользователь),
// если её нет, и только тогда увеличивает счетчик и переводит pending в acknowledged.
func (r *IncidentRepository) JoinVolunteer(ctx context.Context, id uuid.UUID, userID string) (*models.Incident, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin join transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var status models.IncidentStatus
	err = tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE;`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
		}
		return nil, false, fmt.Errorf("failed to lock incident: %w", err)
	}
	if status == models.StatusResolved {
		return nil, false, service.ErrIncidentResolved
	}

	cmdTag, err := tx.Exec(ctx, `
		INSERT INTO volunteer_joins (incident_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (incident_id, user_id) DO NOTHING;
	`, id, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to record volunteer join: %w", err)
	}

	joined := cmdTag.RowsAffected() > 0
	var incident *models.Incident
	if joined {
		query := `
			UPDATE incidents SET
				volunteer_count = volunteer_count + 1,
				status = CASE WHEN status = 'pending' THEN 'acknowledged' ELSE status END,
				version = version + 1,
				updated_at = NOW()
			WHERE id = $1
			RETURNING ` + incidentColumns + `;`
		incident, err = scanIncident(tx.QueryRow(ctx, query, id))
	} else {
		incident, err = scanIncident(tx.QueryRow(ctx, `SELECT `+incidentColumns+` FROM incidents WHERE id = $1;`, id))
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to update volunteer count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit join transaction: %w", err)
	}
	return incident, joined, nil
}

// AddPledge одним запросом дописывает обязательство и увеличивает счетчик на count.
// Оба изменения коммутативны, поэтому параллельные обязательства не теряются.
func (r *IncidentRepository) AddPledge(ctx context.Context, id uuid.UUID, pledge models.Pledge) (*models.Incident, error) {
	entry, err := json.Marshal([]models.Pledge{pledge})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pledge: %w", err)
	}

	query := `
		UPDATE incidents SET
			org_pledges = org_pledges || $2::jsonb,
			volunteer_count = volunteer_count + $3,
			status = CASE WHEN status = 'pending' THEN 'acknowledged' ELSE status END,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND status <> 'resolved'
		RETURNING ` + incidentColumns + `;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id, entry, pledge.Count))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.explainMissing(ctx, id, service.ErrIncidentResolved)
		}
		return nil, fmt.Errorf("failed to add pledge: %w", err)
	}
	return incident, nil
}

// MarkResolved переводит происшествие в resolved. Уже закрытое не трогается.
func (r *IncidentRepository) MarkResolved(ctx context.Context, id uuid.UUID, note string) (*models.Incident, error) {
	query := `
		UPDATE incidents SET
			status = 'resolved',
			resolution_note = $2,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND status <> 'resolved'
		RETURNING ` + incidentColumns + `;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id, note))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.explainMissing(ctx, id, service.ErrAlreadyResolved)
		}
		return nil, fmt.Errorf("failed to resolve incident: %w", err)
	}
	return incident, nil
}

// explainMissing различает отсутствующее и уже закрытое происшествие после пустого UPDATE
func (r *IncidentRepository) explainMissing(ctx context.Context, id uuid.UUID, resolvedErr error) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM incidents WHERE id = $1);`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check incident existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
	}
	return resolvedErr
}

// GetIncidentFromCache пытается получить происшествие из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет происшествие в Redis. Более новая версия в кэше не перезаписывается.
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	err = setIfNotOlder.Run(ctx, r.redisClient,
		[]string{incidentCacheKey(incident.ID)},
		val, incident.Version, r.cacheTTL.Milliseconds(),
	).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет происшествие из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	var (
		incident      models.Incident
		lat, lon, acc *float64
		pledges       []byte
	)
	err := row.Scan(
		&incident.ID,
		&incident.Type,
		&incident.Status,
		&lat,
		&lon,
		&acc,
		&incident.Address,
		&incident.Details,
		&incident.ReporterID,
		&incident.ReporterName,
		&incident.VolunteerCount,
		&pledges,
		&incident.ResolutionNote,
		&incident.Version,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lon != nil {
		incident.Location = &models.Location{Latitude: *lat, Longitude: *lon}
		if acc != nil {
			incident.Location.Accuracy = *acc
		}
	}
	if len(pledges) > 0 {
		if err := json.Unmarshal(pledges, &incident.Pledges); err != nil {
			return nil, fmt.Errorf("failed to unmarshal org_pledges: %w", err)
		}
	}
	return &incident, nil
}

func locationArgs(loc *models.Location) (lat, lon, acc *float64) {
	if loc == nil {
		return nil, nil, nil
	}
	return &loc.Latitude, &loc.Longitude, &loc.Accuracy
}

func nonNilPledges(p []models.Pledge) []models.Pledge {
	if p == nil {
		return []models.Pledge{}
	}
	return p
}

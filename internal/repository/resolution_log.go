package repository

import (
	"context"
	"fmt"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResolutionLogRepository struct {
	db *pgxpool.Pool
}

func NewResolutionLogRepository(db *pgxpool.Pool) service.ResolutionLogRepository {
	return &ResolutionLogRepository{db: db}
}

// Append записывает запись аудита. Обновления и удаления для журнала не предусмотрены.
func (r *ResolutionLogRepository) Append(ctx context.Context, entry *models.ResolutionLogEntry) error {
	query := `
		INSERT INTO resolution_logs (incident_id, incident_type, resolved_by_name, resolved_by_user_id,
			resolved_at, note, original_incident_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.IncidentID,
		entry.IncidentType,
		entry.ResolvedByName,
		entry.ResolvedByUserID,
		entry.ResolvedAt,
		entry.Note,
		entry.OriginalIncidentTimestamp,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append resolution log: %w", err)
	}
	return nil
}

func (r *ResolutionLogRepository) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.ResolutionLogEntry, error) {
	query := `
		SELECT
			id,
			incident_id,
			incident_type,
			resolved_by_name,
			resolved_by_user_id,
			resolved_at,
			note,
			original_incident_created
		FROM resolution_logs
		WHERE incident_id = $1
		ORDER BY resolved_at DESC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resolution logs: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.ResolutionLogEntry, 0)
	for rows.Next() {
		e := &models.ResolutionLogEntry{}
		if err := rows.Scan(
			&e.ID,
			&e.IncidentID,
			&e.IncidentType,
			&e.ResolvedByName,
			&e.ResolvedByUserID,
			&e.ResolvedAt,
			&e.Note,
			&e.OriginalIncidentTimestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resolution log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error resolution log iteration: %w", err)
	}
	return entries, nil
}

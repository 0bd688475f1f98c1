package models

import (
	"time"

	"github.com/google/uuid"
)

// ResolutionLogEntry неизменяемая запись аудита о закрытии происшествия
type ResolutionLogEntry struct {
	ID                        uuid.UUID    `json:"id"`
	IncidentID                uuid.UUID    `json:"reportId"`
	IncidentType              IncidentType `json:"reportType"`
	ResolvedByName            string       `json:"resolvedBy"`
	ResolvedByUserID          string       `json:"resolvedById"`
	ResolvedAt                time.Time    `json:"timestamp"`
	Note                      string       `json:"resolutionNote"`
	OriginalIncidentTimestamp time.Time    `json:"originalReportTime"`
}

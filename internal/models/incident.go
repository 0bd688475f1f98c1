package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IncidentType категория происшествия
type IncidentType string

const (
	TypeFire     IncidentType = "fire"
	TypeMedical  IncidentType = "medical"
	TypeAccident IncidentType = "accident"
	TypeViolence IncidentType = "violence"
	TypeDisaster IncidentType = "disaster"
	TypePanic    IncidentType = "panic"
	TypeOther    IncidentType = "other"
)

// Valid сообщает, входит ли тип в фиксированный набор
func (t IncidentType) Valid() bool {
	switch t {
	case TypeFire, TypeMedical, TypeAccident, TypeViolence, TypeDisaster, TypePanic, TypeOther:
		return true
	}
	return false
}

// IncidentStatus статус происшествия. Переходы только вперёд.
type IncidentStatus string

const (
	StatusPending      IncidentStatus = "pending"
	StatusAcknowledged IncidentStatus = "acknowledged"
	StatusResolved     IncidentStatus = "resolved"
)

// AnonymousReporterID подставляется, когда у сессии нет идентификатора
const (
	AnonymousReporterID   = "anonymous"
	AnonymousReporterName = "Anonymous"
)

// SOSDetails текст, которым помечаются отчёты с кнопки SOS
const SOSDetails = "IMMEDIATE SOS BUTTON PRESSED"

// Location координаты, полученные с устройства
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Pledge обязательство организации выделить людей
type Pledge struct {
	OrganizationName string    `json:"orgName"`
	Count            int       `json:"count"`
	PledgedAt        time.Time `json:"-"`
}

type Incident struct {
	ID             uuid.UUID      `json:"id"`
	Type           IncidentType   `json:"type"`
	Status         IncidentStatus `json:"status"`
	CreatedAt      time.Time      `json:"timestamp"`
	Location       *Location      `json:"location,omitempty"`
	Address        string         `json:"address,omitempty"`
	Details        string         `json:"details"`
	ReporterID     string         `json:"userId,omitempty"`
	ReporterName   string         `json:"userName,omitempty"`
	VolunteerCount int            `json:"volunteerCount"`
	Pledges        []Pledge       `json:"orgPledges,omitempty"`
	ResolutionNote string         `json:"resolution,omitempty"`
	Version        int64          `json:"version"`
}

// IsResolved true для терминального статуса
func (i *Incident) IsResolved() bool {
	return i.Status == StatusResolved
}

// PledgedTotal сумма людей по всем обязательствам организаций
func (i *Incident) PledgedTotal() int {
	total := 0
	for _, p := range i.Pledges {
		total += p.Count
	}
	return total
}

// MentionsViewer проверяет, упомянуто ли имя зрителя в деталях
func (i *Incident) MentionsViewer(displayName string) bool {
	if displayName == "" {
		return false
	}
	return strings.Contains(i.Details, displayName)
}

// IncidentDraft входные данные для создания происшествия
type IncidentDraft struct {
	Type     IncidentType
	Location *Location
	Address  string
	Details  string
}

package v1

import (
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/google/uuid"
)

// LocationDTO координаты устройства
// @Description Координаты устройства
type LocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Accuracy  float64 `json:"accuracy" validate:"gte=0"`
}

// SubmitIncidentRequest DTO для отправки происшествия
// @Description DTO для отправки происшествия
type SubmitIncidentRequest struct {
	Type     string       `json:"type" validate:"required,oneof=fire medical accident violence disaster panic other"`
	Location *LocationDTO `json:"location,omitempty"`
	Address  string       `json:"address,omitempty" validate:"max=500"`
	Details  string       `json:"details,omitempty" validate:"max=2000"`
}

// SOSRequest DTO для кнопки SOS
// @Description DTO для кнопки SOS, все поля необязательны
type SOSRequest struct {
	Location *LocationDTO `json:"location,omitempty"`
	Address  string       `json:"address,omitempty" validate:"max=500"`
}

// CreatedResponse идентификатор созданного происшествия
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// PledgeResponse обязательство организации
type PledgeResponse struct {
	OrgName   string `json:"orgName"`
	Count     int    `json:"count"`
	Timestamp int64  `json:"timestamp"`
}

// IncidentResponse DTO для ответа с информацией о происшествии
// @Description DTO для ответа с информацией о происшествии
type IncidentResponse struct {
	ID               uuid.UUID        `json:"id"`
	Type             string           `json:"type"`
	Status           string           `json:"status"`
	Timestamp        time.Time        `json:"timestamp"`
	Location         *LocationDTO     `json:"location,omitempty"`
	Address          string           `json:"address,omitempty"`
	Details          string           `json:"details"`
	UserID           string           `json:"userId,omitempty"`
	UserName         string           `json:"userName,omitempty"`
	VolunteerCount   int              `json:"volunteerCount"`
	OrgPledges       []PledgeResponse `json:"orgPledges,omitempty"`
	Resolution       string           `json:"resolution,omitempty"`
	Version          int64            `json:"version"`
	NotifiedServices []string         `json:"notifiedServices"`
}

// StatsResponse DTO для ответа со статистикой
// @Description Сводка для панели: активные, откликнувшиеся, закрытые
type StatsResponse struct {
	Active     int `json:"active"`
	Responders int `json:"responders"`
	Resolved   int `json:"resolved"`
}

// JoinResponse результат присоединения добровольца
type JoinResponse struct {
	AlreadyJoined bool `json:"already_joined"`
}

// PledgeRequest DTO для обязательства организации. Количество приходит строкой из формы.
type PledgeRequest struct {
	Count string `json:"count" validate:"required"`
}

// ResolveRequest DTO для закрытия происшествия
type ResolveRequest struct {
	ResolutionNote string `json:"resolutionNote"`
}

// WiFiAccessPointDTO точка доступа для определения местоположения
type WiFiAccessPointDTO struct {
	MACAddress     string  `json:"macAddress" validate:"required,mac"`
	SignalStrength float64 `json:"signalStrength"`
}

// CellTowerDTO вышка сотовой связи
type CellTowerDTO struct {
	CellID            int `json:"cellId" validate:"gte=0"`
	LocationAreaCode  int `json:"locationAreaCode" validate:"gte=0"`
	MobileCountryCode int `json:"mobileCountryCode" validate:"gte=0"`
	MobileNetworkCode int `json:"mobileNetworkCode" validate:"gte=0"`
	SignalStrength    int `json:"signalStrength"`
}

// LocationAcquireRequest сигналы устройства для геолокации
// @Description Сигналы Wi-Fi и сотовых вышек, могут быть пустыми
type LocationAcquireRequest struct {
	WiFiAccessPoints []WiFiAccessPointDTO `json:"wifiAccessPoints,omitempty" validate:"max=64,dive"`
	CellTowers       []CellTowerDTO       `json:"cellTowers,omitempty" validate:"max=64,dive"`
}

// LocationAcquireResponse либо координаты, либо требование ручного ввода
type LocationAcquireResponse struct {
	Location    *LocationDTO `json:"location,omitempty"`
	ManualEntry bool         `json:"manualEntry"`
	Reason      string       `json:"reason,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// SelectTypeRequest выбор типа в мастере
type SelectTypeRequest struct {
	Type string `json:"type" validate:"required"`
}

// AddressRequest ручной ввод адреса
type AddressRequest struct {
	Address string `json:"address" validate:"max=500"`
}

// WizardSubmitRequest последний шаг мастера
type WizardSubmitRequest struct {
	Details string `json:"details" validate:"max=2000"`
}

// WizardResponse состояние мастера
// @Description Состояние мастера отправки
type WizardResponse struct {
	ID            uuid.UUID    `json:"id"`
	Step          string       `json:"step"`
	Mode          string       `json:"mode"`
	Type          string       `json:"type,omitempty"`
	Location      *LocationDTO `json:"location,omitempty"`
	Address       string       `json:"address,omitempty"`
	Details       string       `json:"details,omitempty"`
	LocationError string       `json:"locationError,omitempty"`
	Responders    []string     `json:"responders,omitempty"`
	Outcome       string       `json:"outcome,omitempty"`
	IncidentID    *uuid.UUID   `json:"incidentId,omitempty"`
	FailureReason string       `json:"failureReason,omitempty"`
	Exited        bool         `json:"exited"`
	Complete      bool         `json:"complete"`
	RedirectAt    *time.Time   `json:"redirectAt,omitempty"`
}

// VolunteerProfileRequest регистрация добровольца
type VolunteerProfileRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=255"`
	Age        int    `json:"age" validate:"required,gte=16,lte=100"`
	BloodGroup string `json:"blood" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	State      string `json:"state" validate:"required,max=100"`
	District   string `json:"district" validate:"required,max=100"`
	Address    string `json:"address" validate:"max=500"`
}

// OrganizationProfileRequest регистрация организации
type OrganizationProfileRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	SocietyRegNo string `json:"societyRegNo" validate:"required,max=100"`
	Address      string `json:"address" validate:"max=500"`
}

// ProfileResponse сессия и её регистрации
type ProfileResponse struct {
	Session            models.Session              `json:"session"`
	Volunteer          *models.VolunteerProfile    `json:"volunteer,omitempty"`
	Organization       *models.OrganizationProfile `json:"organization,omitempty"`
	VolunteeredReports []uuid.UUID                 `json:"volunteeredReports"`
}

// FeedFrameResponse данные SSE-событий snapshot и change
type FeedFrameResponse struct {
	Change    *FeedChangeResponse `json:"change,omitempty"`
	Incidents []IncidentResponse  `json:"incidents"`
	Stats     StatsResponse       `json:"stats"`
}

// FeedChangeResponse какое происшествие изменилось
type FeedChangeResponse struct {
	Kind       string    `json:"kind"`
	IncidentID uuid.UUID `json:"incidentId"`
	Version    int64     `json:"version"`
}

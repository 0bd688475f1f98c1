package v1

import (
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	"github.com/NITHEESH-14/CrisisSync/internal/location"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/wizard"
)

// DTOToDraft преобразует запрос на отправку в черновик
func DTOToDraft(dto SubmitIncidentRequest) models.IncidentDraft {
	return models.IncidentDraft{
		Type:     models.IncidentType(dto.Type),
		Location: DTOToLocation(dto.Location),
		Address:  dto.Address,
		Details:  dto.Details,
	}
}

func DTOToLocation(dto *LocationDTO) *models.Location {
	if dto == nil {
		return nil
	}
	return &models.Location{
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Accuracy:  dto.Accuracy,
	}
}

func LocationToDTO(loc *models.Location) *LocationDTO {
	if loc == nil {
		return nil
	}
	return &LocationDTO{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Accuracy:  loc.Accuracy,
	}
}

// DTOToSignals сигналы устройства для геолокации
func DTOToSignals(dto LocationAcquireRequest) location.Signals {
	signals := location.Signals{}
	for _, ap := range dto.WiFiAccessPoints {
		signals.WiFiAccessPoints = append(signals.WiFiAccessPoints, location.WiFiAccessPoint{
			MACAddress:     ap.MACAddress,
			SignalStrength: ap.SignalStrength,
		})
	}
	for _, tower := range dto.CellTowers {
		signals.CellTowers = append(signals.CellTowers, location.CellTower{
			CellID:            tower.CellID,
			LocationAreaCode:  tower.LocationAreaCode,
			MobileCountryCode: tower.MobileCountryCode,
			MobileNetworkCode: tower.MobileNetworkCode,
			SignalStrength:    tower.SignalStrength,
		})
	}
	return signals
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) IncidentResponse {
	resp := IncidentResponse{
		ID:               model.ID,
		Type:             string(model.Type),
		Status:           string(model.Status),
		Timestamp:        model.CreatedAt,
		Location:         LocationToDTO(model.Location),
		Address:          model.Address,
		Details:          model.Details,
		UserID:           model.ReporterID,
		UserName:         model.ReporterName,
		VolunteerCount:   model.VolunteerCount,
		Resolution:       model.ResolutionNote,
		Version:          model.Version,
		NotifiedServices: models.NotifiedServicesFor(model.Type),
	}
	for _, p := range model.Pledges {
		resp.OrgPledges = append(resp.OrgPledges, PledgeResponse{
			OrgName:   p.OrganizationName,
			Count:     p.Count,
			Timestamp: p.PledgedAt.UnixMilli(),
		})
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(items []*models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(items))
	for i, model := range items {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func StatsToResponse(s feed.Stats) StatsResponse {
	return StatsResponse{
		Active:     s.Active,
		Responders: s.Responders,
		Resolved:   s.Resolved,
	}
}

// FlowToResponse состояние мастера на момент now
func FlowToResponse(flow *wizard.Flow, now time.Time) WizardResponse {
	resp := WizardResponse{
		ID:            flow.ID,
		Step:          string(flow.Step),
		Mode:          string(flow.Mode),
		Type:          string(flow.Type),
		Location:      LocationToDTO(flow.Location),
		Address:       flow.Address,
		Details:       flow.Details,
		LocationError: flow.LocationError,
		Outcome:       string(flow.Outcome),
		IncidentID:    flow.IncidentID,
		FailureReason: flow.FailureReason,
		Exited:        flow.Exited,
		Complete:      flow.Complete(now),
	}
	if flow.Type != "" {
		resp.Responders = flow.Responders()
	}
	if at, ok := flow.RedirectAt(); ok {
		resp.RedirectAt = &at
	}
	return resp
}

// FrameToResponse данные SSE-кадра ленты
func FrameToResponse(frame feed.Frame) FeedFrameResponse {
	resp := FeedFrameResponse{
		Incidents: ModelsToIncidentResponses(frame.Incidents),
		Stats:     StatsToResponse(frame.Stats),
	}
	if frame.Change != nil && frame.Change.Incident != nil {
		resp.Change = &FeedChangeResponse{
			Kind:       string(frame.Change.Kind),
			IncidentID: frame.Change.Incident.ID,
			Version:    frame.Change.Incident.Version,
		}
	}
	return resp
}

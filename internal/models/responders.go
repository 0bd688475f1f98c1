package models

// RespondersFor статическая таблица служб, показываемая после отправки мастера.
// Это не механизм диспетчеризации, а подпись для пользователя.
func RespondersFor(t IncidentType) string {
	switch t {
	case TypeFire:
		return "Fire Services"
	case TypeMedical:
		return "Ambulance & Medical Team"
	case TypeAccident:
		return "Police & Ambulance"
	case TypeViolence:
		return "Police Department"
	case TypeDisaster:
		return "Disaster Management Team"
	default:
		return "Police Control Room"
	}
}

const nearbyVolunteers = "Nearby Volunteers"

// NotifiedServicesFor список служб, которые показываются на карточке происшествия
func NotifiedServicesFor(t IncidentType) []string {
	switch t {
	case TypePanic:
		return []string{"Police Department", "District Organizations", nearbyVolunteers}
	case TypeFire:
		return []string{"Fire Department", "Medical Team", nearbyVolunteers}
	case TypeMedical:
		return []string{"Ambulance", "Nearby Hospitals", nearbyVolunteers}
	case TypeAccident:
		return []string{"Police", "Ambulance", nearbyVolunteers}
	case TypeViolence:
		return []string{"Police Department", nearbyVolunteers}
	case TypeDisaster:
		return []string{"Disaster Relief Team", "State Control Room", "District Organizations", nearbyVolunteers}
	default:
		return []string{"Police Control Room", nearbyVolunteers}
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerProfile регистрация добровольца, ищется по имени
type VolunteerProfile struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	BloodGroup string    `json:"blood"`
	State      string    `json:"state"`
	District   string    `json:"district"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"timestamp"`
}

// OrganizationProfile регистрация организации, ищется по владельцу
type OrganizationProfile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Owner        string    `json:"owner"`
	SocietyRegNo string    `json:"societyRegNo"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"timestamp"`
}

// Profiles регистрации текущей сессии
type Profiles struct {
	Volunteer    *VolunteerProfile    `json:"volunteer,omitempty"`
	Organization *OrganizationProfile `json:"organization,omitempty"`
}

// IsRegisteredVolunteer есть ли у сессии профиль добровольца
func (p Profiles) IsRegisteredVolunteer() bool {
	return p.Volunteer != nil
}

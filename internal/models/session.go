package models

// Role роль пользователя, выдаваемая провайдером сессий
type Role string

const (
	RoleCitizen      Role = "citizen"
	RoleVolunteer    Role = "volunteer"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
)

// Session явный контекст пользователя, передаваемый в каждый вызов сервисов.
// Заполняется внешним провайдером сессий, ядро его не проверяет.
type Session struct {
	UserID                       string `json:"id,omitempty"`
	DisplayName                  string `json:"fullName,omitempty"`
	Role                         Role   `json:"role,omitempty"`
	IsRegisteredVolunteer        bool   `json:"isRegisteredVolunteer"`
	OrganizationID               string `json:"organizationId,omitempty"`
	NotificationsEnabled         bool   `json:"notificationsEnabled"`
	PlatformNotificationsGranted bool   `json:"platformNotificationsGranted"`
}

// ReporterIdentity возвращает id и имя автора с подстановкой анонима
func (s Session) ReporterIdentity() (string, string) {
	id, name := s.UserID, s.DisplayName
	if id == "" {
		id = AnonymousReporterID
	}
	if name == "" {
		name = AnonymousReporterName
	}
	return id, name
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
)

// ResolvedVisibilityWindow сколько закрытое происшествие остаётся в ленте.
// Отсчитывается от createdAt, а не от момента закрытия.
const ResolvedVisibilityWindow = 3 * time.Hour

const (
	AreaAll    = "All"
	AreaNearMe = "Near Me"
)

// Visible правило видимости: закрытые скрываются, когда now - createdAt > 3h
func Visible(inc *models.Incident, now time.Time) bool {
	if !inc.IsResolved() {
		return true
	}
	return now.Sub(inc.CreatedAt) <= ResolvedVisibilityWindow
}

// InArea фильтр по подстроке адреса. "Near Me" пока ничего не отбрасывает.
func InArea(inc *models.Incident, area string) bool {
	if area == "" || area == AreaAll || area == AreaNearMe {
		return true
	}
	return strings.Contains(inc.Address, area)
}

// Order сортирует по createdAt по убыванию, затем стабильно поднимает наверх
// происшествия, в деталях которых упомянуто имя зрителя.
func Order(incidents []*models.Incident, viewerName string) {
	sort.SliceStable(incidents, func(i, j int) bool {
		a, b := incidents[i], incidents[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	if viewerName == "" {
		return
	}
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].MentionsViewer(viewerName) && !incidents[j].MentionsViewer(viewerName)
	})
}

// Query параметры построения ленты для конкретного зрителя
type Query struct {
	ViewerName string
	Area       string
	Now        time.Time
}

// Build строит упорядоченную ленту из произвольного набора происшествий
func Build(all []*models.Incident, q Query) []*models.Incident {
	out := make([]*models.Incident, 0, len(all))
	for _, inc := range all {
		if !Visible(inc, q.Now) || !InArea(inc, q.Area) {
			continue
		}
		out = append(out, inc)
	}
	Order(out, q.ViewerName)
	return out
}

// Stats сводка для панели
type Stats struct {
	Active     int `json:"active"`
	Responders int `json:"responders"`
	Resolved   int `json:"resolved"`
}

// Summarize считает сводку по всем происшествиям без фильтра видимости
func Summarize(all []*models.Incident) Stats {
	var s Stats
	for _, inc := range all {
		if inc.IsResolved() {
			s.Resolved++
		} else {
			s.Active++
		}
		s.Responders += inc.VolunteerCount
	}
	return s
}

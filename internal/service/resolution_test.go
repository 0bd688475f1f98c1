package service

import (
	"context"
	"errors"
	"testing"
	"time"

	feed_mocks "github.com/NITHEESH-14/CrisisSync/internal/feed/mocks"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/service/mocks"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resolutionDeps struct {
	repo      *mocks.MockIncidentRepository
	logs      *mocks.MockResolutionLogRepository
	publisher *feed_mocks.MockPublisher
}

func newTestResolutionService(t *testing.T) (ResolutionService, resolutionDeps) {
	ctrl := gomock.NewController(t)
	deps := resolutionDeps{
		repo:      mocks.NewMockIncidentRepository(ctrl),
		logs:      mocks.NewMockResolutionLogRepository(ctrl),
		publisher: feed_mocks.NewMockPublisher(ctrl),
	}
	return NewResolutionService(deps.repo, deps.logs, deps.publisher, clock.NewFake(testNow), quietLogger()), deps
}

var responder = models.Session{UserID: "resp-9", DisplayName: "Officer Das"}

func TestResolve_WritesAuditBeforeStatus(t *testing.T) {
	svc, deps := newTestResolutionService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	created := testNow.Add(-2 * time.Hour)
	incident := &models.Incident{ID: incidentID, Type: models.TypeAccident, Status: models.StatusAcknowledged, CreatedAt: created}
	resolved := &models.Incident{ID: incidentID, Status: models.StatusResolved, Version: 2}

	gomock.InOrder(
		deps.repo.EXPECT().GetByID(ctx, incidentID).Return(incident, nil),
		deps.logs.EXPECT().
			Append(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.ResolutionLogEntry) error {
				assert.Equal(t, incidentID, e.IncidentID)
				assert.Equal(t, models.TypeAccident, e.IncidentType)
				assert.Equal(t, "Officer Das", e.ResolvedByName)
				assert.Equal(t, "resp-9", e.ResolvedByUserID)
				assert.Equal(t, testNow, e.ResolvedAt)
				assert.Equal(t, "Cleared by traffic police", e.Note)
				assert.Equal(t, created, e.OriginalIncidentTimestamp)
				return nil
			}),
		deps.repo.EXPECT().MarkResolved(ctx, incidentID, "Cleared by traffic police").
			Return(resolved, nil),
		deps.repo.EXPECT().SetIncidentCache(ctx, resolved).Return(nil),
		deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil),
	)

	err := svc.Resolve(ctx, incidentID, "  Cleared by traffic police ", responder)

	require.NoError(t, err)
}

func TestResolve_EmptyNoteNeverTouchesStore(t *testing.T) {
	svc, _ := newTestResolutionService(t)

	err := svc.Resolve(context.Background(), uuid.New(), "   \n\t", responder)

	assert.ErrorIs(t, err, ErrEmptyNote)
}

func TestResolve_AlreadyResolved(t *testing.T) {
	svc, deps := newTestResolutionService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: models.StatusResolved}, nil)

	err := svc.Resolve(ctx, incidentID, "done", responder)

	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestResolve_StatusFailureKeepsAuditEntry(t *testing.T) {
	svc, deps := newTestResolutionService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	writeErr := errors.New("connection reset")

	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: models.StatusPending}, nil)
	deps.logs.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)
	deps.repo.EXPECT().MarkResolved(ctx, incidentID, "done").Return(nil, writeErr)

	err := svc.Resolve(ctx, incidentID, "done", responder)

	assert.ErrorIs(t, err, writeErr)
}

func TestResolve_AuditFailureStopsResolution(t *testing.T) {
	svc, deps := newTestResolutionService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: models.StatusPending}, nil)
	deps.logs.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("insert failed"))

	err := svc.Resolve(ctx, incidentID, "done", responder)

	assert.ErrorContains(t, err, "could not write resolution log")
}

func TestHistory(t *testing.T) {
	svc, deps := newTestResolutionService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	entries := []*models.ResolutionLogEntry{{IncidentID: incidentID, Note: "done"}}

	deps.logs.EXPECT().ListByIncident(ctx, incidentID).Return(entries, nil)

	got, err := svc.History(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

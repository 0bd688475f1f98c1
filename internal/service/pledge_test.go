package service

import (
	"context"
	"errors"
	"testing"

	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	feed_mocks "github.com/NITHEESH-14/CrisisSync/internal/feed/mocks"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/service/mocks"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pledgeDeps struct {
	repo      *mocks.MockIncidentRepository
	profiles  *mocks.MockProfileRepository
	history   *mocks.MockJoinHistory
	publisher *feed_mocks.MockPublisher
}

func newTestPledgeService(t *testing.T) (PledgeService, pledgeDeps) {
	ctrl := gomock.NewController(t)
	deps := pledgeDeps{
		repo:      mocks.NewMockIncidentRepository(ctrl),
		profiles:  mocks.NewMockProfileRepository(ctrl),
		history:   mocks.NewMockJoinHistory(ctrl),
		publisher: feed_mocks.NewMockPublisher(ctrl),
	}
	svc := NewPledgeService(deps.repo, deps.profiles, deps.history, deps.publisher, clock.NewFake(testNow), quietLogger())
	return svc, deps
}

var volunteer = models.Session{UserID: "vol-1", DisplayName: "Kiran", Role: models.RoleVolunteer}

func TestJoinAsVolunteer_Success(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	updated := &models.Incident{ID: incidentID, Status: models.StatusAcknowledged, VolunteerCount: 1, Version: 2}

	gomock.InOrder(
		deps.profiles.EXPECT().FindVolunteerByName(ctx, "Kiran").Return(&models.VolunteerProfile{Name: "Kiran"}, nil),
		deps.history.EXPECT().HasJoined(ctx, "vol-1", incidentID).Return(false, nil),
		deps.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: models.StatusPending, ReporterID: "someone"}, nil),
		deps.repo.EXPECT().JoinVolunteer(ctx, incidentID, "vol-1").Return(updated, true, nil),
		deps.history.EXPECT().RecordJoin(ctx, "vol-1", incidentID).Return(nil),
		deps.repo.EXPECT().SetIncidentCache(ctx, updated).Return(nil),
		deps.publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev feed.Event) error {
				assert.Equal(t, feed.EventUpdated, ev.Kind)
				assert.Equal(t, updated, ev.Incident)
				return nil
			}),
	)

	err := svc.JoinAsVolunteer(ctx, incidentID, volunteer)

	require.NoError(t, err)
}

func TestJoinAsVolunteer_NotRegistered(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()

	deps.profiles.EXPECT().FindVolunteerByName(ctx, "Kiran").Return(nil, nil)

	err := svc.JoinAsVolunteer(ctx, uuid.New(), volunteer)

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestJoinAsVolunteer_ShortCircuitedByHistory(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.profiles.EXPECT().FindVolunteerByName(ctx, "Kiran").Return(&models.VolunteerProfile{}, nil)
	deps.history.EXPECT().HasJoined(ctx, "vol-1", incidentID).Return(true, nil)

	err := svc.JoinAsVolunteer(ctx, incidentID, volunteer)

	assert.ErrorIs(t, err, ErrAlreadyJoined)
}

func TestJoinAsVolunteer_DatabaseDedupWhenHistoryIsCold(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	current := &models.Incident{ID: incidentID, Status: models.StatusAcknowledged, VolunteerCount: 3}

	deps.profiles.EXPECT().FindVolunteerByName(ctx, "Kiran").Return(&models.VolunteerProfile{}, nil)
	deps.history.EXPECT().HasJoined(ctx, "vol-1", incidentID).Return(false, errors.New("redis down"))
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(current, nil)
	deps.repo.EXPECT().JoinVolunteer(ctx, incidentID, "vol-1").Return(current, false, nil)
	deps.history.EXPECT().RecordJoin(ctx, "vol-1", incidentID).Return(nil)

	err := svc.JoinAsVolunteer(ctx, incidentID, volunteer)

	assert.ErrorIs(t, err, ErrAlreadyJoined)
}

func TestJoinAsVolunteer_OwnIncident(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.profiles.EXPECT().FindVolunteerByName(ctx, "Kiran").Return(&models.VolunteerProfile{}, nil)
	deps.history.EXPECT().HasJoined(ctx, "vol-1", incidentID).Return(false, nil)
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, ReporterID: "vol-1"}, nil)

	err := svc.JoinAsVolunteer(ctx, incidentID, volunteer)

	assert.ErrorIs(t, err, ErrOwnIncident)
}

func TestJoinAsVolunteer_ResolvedIncident(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.profiles.EXPECT().FindVolunteerByName(ctx, "Kiran").Return(&models.VolunteerProfile{}, nil)
	deps.history.EXPECT().HasJoined(ctx, "vol-1", incidentID).Return(false, nil)
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: models.StatusResolved}, nil)

	err := svc.JoinAsVolunteer(ctx, incidentID, volunteer)

	assert.ErrorIs(t, err, ErrIncidentResolved)
}

func TestJoinAsVolunteer_AnonymousSession(t *testing.T) {
	svc, _ := newTestPledgeService(t)

	err := svc.JoinAsVolunteer(context.Background(), uuid.New(), models.Session{})

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestPledgeOrganization_Success(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	owner := models.Session{UserID: "org-owner", DisplayName: "Latha"}
	updated := &models.Incident{ID: incidentID, VolunteerCount: 12, Status: models.StatusAcknowledged}

	deps.profiles.EXPECT().FindOrganizationByOwner(ctx, "Latha").Return(&models.OrganizationProfile{Name: "Red Cross Unit 7"}, nil)
	deps.repo.EXPECT().
		AddPledge(ctx, incidentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p models.Pledge) (*models.Incident, error) {
			assert.Equal(t, "Red Cross Unit 7", p.OrganizationName)
			assert.Equal(t, 12, p.Count)
			assert.Equal(t, testNow, p.PledgedAt)
			return updated, nil
		})
	deps.repo.EXPECT().SetIncidentCache(ctx, updated).Return(nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	err := svc.PledgeOrganization(ctx, incidentID, owner, " 12 ")

	require.NoError(t, err)
}

func TestPledgeOrganization_InvalidCount(t *testing.T) {
	svc, _ := newTestPledgeService(t)
	owner := models.Session{UserID: "org-owner", DisplayName: "Latha"}

	for _, raw := range []string{"", "0", "-3", "abc", "2.5", "7 people"} {
		err := svc.PledgeOrganization(context.Background(), uuid.New(), owner, raw)
		assert.ErrorIs(t, err, ErrInvalidCount, "raw count %q", raw)
	}
}

func TestPledgeOrganization_NoOrganization(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()

	deps.profiles.EXPECT().FindOrganizationByOwner(ctx, "Latha").Return(nil, nil)

	err := svc.PledgeOrganization(ctx, uuid.New(), models.Session{DisplayName: "Latha"}, "5")

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestPledgeOrganization_Resolved(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.profiles.EXPECT().FindOrganizationByOwner(ctx, "Latha").Return(&models.OrganizationProfile{Name: "NSS"}, nil)
	deps.repo.EXPECT().AddPledge(ctx, incidentID, gomock.Any()).Return(nil, ErrIncidentResolved)

	err := svc.PledgeOrganization(ctx, incidentID, models.Session{DisplayName: "Latha"}, "5")

	assert.ErrorIs(t, err, ErrIncidentResolved)
}

func TestJoinedIncidents(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	deps.history.EXPECT().Joined(ctx, "vol-1").Return(ids, nil)

	got, err := svc.JoinedIncidents(ctx, volunteer)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestPledgeOrganization_CacheWriteFailureDropsKey(t *testing.T) {
	svc, deps := newTestPledgeService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	owner := models.Session{UserID: "org-owner", DisplayName: "Latha"}
	updated := &models.Incident{ID: incidentID, VolunteerCount: 4, Status: models.StatusAcknowledged, Version: 3}

	gomock.InOrder(
		deps.profiles.EXPECT().FindOrganizationByOwner(ctx, "Latha").Return(&models.OrganizationProfile{Name: "Red Cross Unit 7"}, nil),
		deps.repo.EXPECT().AddPledge(ctx, incidentID, gomock.Any()).Return(updated, nil),
		deps.repo.EXPECT().SetIncidentCache(ctx, updated).Return(errors.New("redis down")),
		deps.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil),
		deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil),
	)

	err := svc.PledgeOrganization(ctx, incidentID, owner, "4")

	require.NoError(t, err)
}

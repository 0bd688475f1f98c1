package service

import (
	"context"
	"errors"
	"testing"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T) (ProfileService, *mocks.MockProfileRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	return NewProfileService(repo, quietLogger()), repo
}

func TestRegisterVolunteer_DefaultsNameFromSession(t *testing.T) {
	svc, repo := newTestProfileService(t)
	ctx := context.Background()
	session := models.Session{UserID: "u-7", DisplayName: "Arjun"}

	repo.EXPECT().
		UpsertVolunteer(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.VolunteerProfile) error {
			assert.Equal(t, "u-7", p.UserID)
			assert.Equal(t, "Arjun", p.Name)
			assert.Equal(t, 27, p.Age)
			return nil
		})

	err := svc.RegisterVolunteer(ctx, session, &models.VolunteerProfile{Age: 27, BloodGroup: "O+"})

	require.NoError(t, err)
}

func TestRegisterVolunteer_RequiresUser(t *testing.T) {
	svc, _ := newTestProfileService(t)

	err := svc.RegisterVolunteer(context.Background(), models.Session{}, &models.VolunteerProfile{Name: "X"})

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestRegisterOrganization_OwnerIsSession(t *testing.T) {
	svc, repo := newTestProfileService(t)
	ctx := context.Background()

	repo.EXPECT().
		UpsertOrganization(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.OrganizationProfile) error {
			assert.Equal(t, "Latha", p.Owner)
			return nil
		})

	err := svc.RegisterOrganization(ctx, models.Session{DisplayName: "Latha"}, &models.OrganizationProfile{Name: "NSS", Owner: "someone else"})

	require.NoError(t, err)
}

func TestLookup(t *testing.T) {
	svc, repo := newTestProfileService(t)
	ctx := context.Background()
	vol := &models.VolunteerProfile{Name: "Latha"}

	repo.EXPECT().FindVolunteerByName(ctx, "Latha").Return(vol, nil)
	repo.EXPECT().FindOrganizationByOwner(ctx, "Latha").Return(nil, nil)

	profiles, err := svc.Lookup(ctx, models.Session{DisplayName: "Latha"})

	require.NoError(t, err)
	assert.True(t, profiles.IsRegisteredVolunteer())
	assert.Nil(t, profiles.Organization)
}

func TestLookup_StoreError(t *testing.T) {
	svc, repo := newTestProfileService(t)
	ctx := context.Background()

	repo.EXPECT().FindVolunteerByName(ctx, "Latha").Return(nil, errors.New("timeout"))

	_, err := svc.Lookup(ctx, models.Session{DisplayName: "Latha"})

	assert.ErrorContains(t, err, "could not look up volunteer profile")
}

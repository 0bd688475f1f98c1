package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestFlow_GuidedHappyPath(t *testing.T) {
	f := New()
	require.Equal(t, StepType, f.Step)

	require.NoError(t, f.SelectType(models.TypeFire))
	assert.Equal(t, StepLocation, f.Step)
	assert.Equal(t, ModeChoice, f.Mode)

	require.NoError(t, f.LocationAcquired(models.Location{Latitude: 1, Longitude: 2, Accuracy: 10}))
	assert.Equal(t, StepDetails, f.Step)

	draft, err := f.BeginSubmit("", t0)
	require.NoError(t, err)
	assert.Equal(t, models.TypeFire, draft.Type)
	assert.Equal(t, 1.0, draft.Location.Latitude)
	assert.Equal(t, StepSubmitting, f.Step)

	id := uuid.New()
	f.Finish(&id, nil)
	assert.Equal(t, OutcomeSucceeded, f.Outcome)
	assert.Equal(t, []string{"Nearby Volunteers", "Social Organizations", "Fire Services"}, f.Responders())
}

func TestFlow_SubmittingDwellAndRedirect(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeMedical))
	require.NoError(t, f.Skip())
	require.NoError(t, f.ConfirmAddress("12 MG Road"))
	_, err := f.BeginSubmit("two injured", t0)
	require.NoError(t, err)

	assert.False(t, f.Complete(t0.Add(1499*time.Millisecond)))
	assert.True(t, f.Complete(t0.Add(MinimumDwell)))

	_, ok := f.RedirectAt()
	assert.False(t, ok, "no redirect before the outcome is known")

	id := uuid.New()
	f.Finish(&id, nil)
	at, ok := f.RedirectAt()
	require.True(t, ok)
	assert.Equal(t, t0.Add(3*time.Second), at)
}

func TestFlow_FailedSubmissionStillCompletes(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeOther))
	require.NoError(t, f.Skip())
	require.NoError(t, f.ConfirmAddress("Ward 5"))
	_, err := f.BeginSubmit("", t0)
	require.NoError(t, err)

	f.Finish(nil, errors.New("store unavailable"))

	assert.Equal(t, OutcomeFailed, f.Outcome)
	assert.True(t, f.Complete(t0.Add(2*time.Second)))
	_, ok := f.RedirectAt()
	assert.False(t, ok)
}

func TestFlow_LocationFailureEntersManual(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeAccident))

	require.NoError(t, f.LocationFailed("Location permission denied. Switched to manual entry."))
	assert.Equal(t, StepLocation, f.Step)
	assert.Equal(t, ModeManual, f.Mode)
	assert.NotEmpty(t, f.LocationError)

	assert.ErrorIs(t, f.ConfirmAddress("   "), ErrEmptyAddress)
	assert.Equal(t, StepLocation, f.Step)

	require.NoError(t, f.ConfirmAddress("  Near City Hospital  "))
	assert.Equal(t, "Near City Hospital", f.Address)
	assert.Equal(t, StepDetails, f.Step)
}

func TestFlow_ConfirmAddressRequiresManualMode(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeFire))

	assert.ErrorIs(t, f.ConfirmAddress("somewhere"), ErrWrongStep)
}

func TestFlow_BackFromManualReturnsToChoice(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeViolence))
	require.NoError(t, f.Skip())

	f.Back()
	assert.Equal(t, StepLocation, f.Step)
	assert.Equal(t, ModeChoice, f.Mode)

	f.Back()
	assert.Equal(t, StepType, f.Step)
	assert.False(t, f.Exited)

	f.Back()
	assert.True(t, f.Exited)
	assert.ErrorIs(t, f.SelectType(models.TypeFire), ErrExited)
}

func TestFlow_BackFromDetails(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeDisaster))
	require.NoError(t, f.LocationAcquired(models.Location{}))

	f.Back()
	assert.Equal(t, StepLocation, f.Step)
	assert.Equal(t, ModeChoice, f.Mode)
}

func TestFlow_TypeIsFixedAfterSelection(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeFire))

	assert.ErrorIs(t, f.SelectType(models.TypeMedical), ErrWrongStep)
	assert.Equal(t, models.TypeFire, f.Type)
}

func TestFlow_RejectsUnknownType(t *testing.T) {
	f := New()
	assert.ErrorIs(t, f.SelectType("earthquake"), ErrInvalidType)
	assert.Equal(t, StepType, f.Step)
}

func TestFlow_NavigateWithoutTypeRedirectsToType(t *testing.T) {
	f := New()

	require.NoError(t, f.Navigate(StepDetails))
	assert.Equal(t, StepType, f.Step)

	require.NoError(t, f.Navigate(StepSubmitting))
	assert.Equal(t, StepType, f.Step)
}

func TestFlow_TransitionWithoutTypeResets(t *testing.T) {
	f := &Flow{ID: uuid.New(), Step: StepDetails}

	_, err := f.BeginSubmit("x", t0)

	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, StepType, f.Step)
}

func TestFlow_NavigateWithType(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypePanic))

	require.NoError(t, f.Navigate(StepDetails))
	assert.Equal(t, StepDetails, f.Step)
	assert.ErrorIs(t, f.Navigate("review"), ErrUnknownStep)
}

func TestFlow_NavigateToSubmittingWithoutSubmissionGoesToDetails(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypePanic))

	require.NoError(t, f.Navigate(StepSubmitting))

	assert.Equal(t, StepDetails, f.Step)
	assert.False(t, f.Submitting())
	assert.False(t, f.Complete(t0.Add(time.Hour)))
}

func TestFlow_NavigateToSubmittingKeepsSubmissionInFlight(t *testing.T) {
	f := New()
	require.NoError(t, f.SelectType(models.TypeFire))
	require.NoError(t, f.Skip())
	require.NoError(t, f.ConfirmAddress("Ring Road"))
	_, err := f.BeginSubmit("", t0)
	require.NoError(t, err)

	require.NoError(t, f.Navigate(StepSubmitting))

	assert.Equal(t, StepSubmitting, f.Step)
	assert.True(t, f.Complete(t0.Add(MinimumDwell)))
}

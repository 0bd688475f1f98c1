package location

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource возвращает заранее заданные результаты по порядку и запоминает опции
type scriptedSource struct {
	mu      sync.Mutex
	results []scriptedResult
	calls   []Options
}

type scriptedResult struct {
	loc models.Location
	err error
}

func (s *scriptedSource) CurrentPosition(_ context.Context, _ Signals, opts Options) (models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, opts)
	r := s.results[len(s.calls)-1]
	return r.loc, r.err
}

type countingObserver struct {
	outcomes []string
}

func (o *countingObserver) ObserveLocation(outcome string) {
	o.outcomes = append(o.outcomes, outcome)
}

func newTestAcquirer(source PositionSource) (*Acquirer, *countingObserver) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	obs := &countingObserver{}
	return NewAcquirer(source, logger, obs), obs
}

var secureEnv = Environment{Secure: true, Hostname: "crisis.example.org"}

func TestAcquire_HighAccuracySuccessShortCircuits(t *testing.T) {
	source := &scriptedSource{results: []scriptedResult{
		{loc: models.Location{Latitude: 12.97, Longitude: 77.59, Accuracy: 8}},
	}}
	acquirer, obs := newTestAcquirer(source)

	loc, err := acquirer.Acquire(context.Background(), secureEnv, Signals{})

	require.NoError(t, err)
	assert.Equal(t, 12.97, loc.Latitude)
	require.Len(t, source.calls, 1)
	assert.True(t, source.calls[0].EnableHighAccuracy)
	assert.Equal(t, HighAccuracyTimeout, source.calls[0].Timeout)
	assert.Zero(t, source.calls[0].MaximumAge)
	assert.Equal(t, []string{"high_accuracy"}, obs.outcomes)
}

func TestAcquire_TimeoutThenLowAccuracySuccess(t *testing.T) {
	source := &scriptedSource{results: []scriptedResult{
		{err: &PositionError{Code: CodeTimeout}},
		{loc: models.Location{Latitude: 1, Longitude: 2, Accuracy: 1500}},
	}}
	acquirer, _ := newTestAcquirer(source)

	loc, err := acquirer.Acquire(context.Background(), secureEnv, Signals{})

	require.NoError(t, err)
	assert.Equal(t, models.Location{Latitude: 1, Longitude: 2, Accuracy: 1500}, *loc)
	require.Len(t, source.calls, 2, "exactly one retry")
	assert.False(t, source.calls[1].EnableHighAccuracy)
	assert.Equal(t, LowAccuracyTimeout, source.calls[1].Timeout)
	assert.Zero(t, source.calls[1].MaximumAge)
}

func TestAcquire_PermissionDeniedTwice(t *testing.T) {
	source := &scriptedSource{results: []scriptedResult{
		{err: &PositionError{Code: CodePermissionDenied}},
		{err: &PositionError{Code: CodePermissionDenied}},
	}}
	acquirer, obs := newTestAcquirer(source)

	loc, err := acquirer.Acquire(context.Background(), secureEnv, Signals{})

	assert.Nil(t, loc)
	var manual *ManualEntryRequired
	require.True(t, errors.As(err, &manual))
	assert.Equal(t, ReasonPermissionDenied, manual.Reason)
	assert.Len(t, source.calls, 2, "no attempts after the low accuracy one")
	assert.Equal(t, []string{string(ReasonPermissionDenied)}, obs.outcomes)
}

func TestAcquire_ClassifiesLowAccuracyFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Reason
	}{
		{"unavailable", &PositionError{Code: CodePositionUnavailable}, ReasonPositionUnavailable},
		{"timeout", &PositionError{Code: CodeTimeout}, ReasonTimeout},
		{"unknown code", &PositionError{Code: 42}, ReasonUnknown},
		{"plain error", errors.New("boom"), ReasonUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := &scriptedSource{results: []scriptedResult{
				{err: &PositionError{Code: CodePermissionDenied}},
				{err: tc.err},
			}}
			acquirer, _ := newTestAcquirer(source)

			_, err := acquirer.Acquire(context.Background(), secureEnv, Signals{})

			var manual *ManualEntryRequired
			require.True(t, errors.As(err, &manual))
			assert.Equal(t, tc.want, manual.Reason)
		})
	}
}

func TestAcquire_UnavailableCapability(t *testing.T) {
	acquirer, _ := newTestAcquirer(nil)

	_, err := acquirer.Acquire(context.Background(), secureEnv, Signals{})

	var manual *ManualEntryRequired
	require.True(t, errors.As(err, &manual))
	assert.Equal(t, ReasonUnsupported, manual.Reason)
}

func TestAcquire_InsecureContextNeverAttempts(t *testing.T) {
	source := &scriptedSource{}
	acquirer, _ := newTestAcquirer(source)

	_, err := acquirer.Acquire(context.Background(), Environment{Secure: false, Hostname: "10.0.0.5"}, Signals{})

	var manual *ManualEntryRequired
	require.True(t, errors.As(err, &manual))
	assert.Equal(t, ReasonInsecureContext, manual.Reason)
	assert.Empty(t, source.calls)
}

func TestAcquire_LocalhostIsExempt(t *testing.T) {
	source := &scriptedSource{results: []scriptedResult{
		{loc: models.Location{Latitude: 5, Longitude: 6}},
	}}
	acquirer, _ := newTestAcquirer(source)

	loc, err := acquirer.Acquire(context.Background(), Environment{Secure: false, Hostname: "localhost"}, Signals{})

	require.NoError(t, err)
	assert.Equal(t, 5.0, loc.Latitude)
}

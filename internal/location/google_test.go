package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type fakeGeolocator struct {
	requests []*maps.GeolocationRequest
	result   *maps.GeolocationResult
	err      error
}

func (f *fakeGeolocator) Geolocate(_ context.Context, r *maps.GeolocationRequest) (*maps.GeolocationResult, error) {
	f.requests = append(f.requests, r)
	return f.result, f.err
}

func TestGoogleSource_HighAccuracyDisablesIP(t *testing.T) {
	geo := &fakeGeolocator{result: &maps.GeolocationResult{
		Location: maps.LatLng{Lat: 19.07, Lng: 72.87},
		Accuracy: 30,
	}}
	source := newGoogleSource(geo, 0)
	signals := Signals{WiFiAccessPoints: []WiFiAccessPoint{{MACAddress: "00:25:9c:cf:1c:ac", SignalStrength: -43}}}

	loc, err := source.CurrentPosition(context.Background(), signals, Options{EnableHighAccuracy: true})

	require.NoError(t, err)
	assert.Equal(t, 19.07, loc.Latitude)
	assert.Equal(t, 30.0, loc.Accuracy)
	require.Len(t, geo.requests, 1)
	assert.False(t, geo.requests[0].ConsiderIP)
	assert.Len(t, geo.requests[0].WiFiAccessPoints, 1)
}

func TestGoogleSource_HighAccuracyWithoutSignals(t *testing.T) {
	geo := &fakeGeolocator{}
	source := newGoogleSource(geo, 0)

	_, err := source.CurrentPosition(context.Background(), Signals{}, Options{EnableHighAccuracy: true})

	assert.Equal(t, ReasonPositionUnavailable, Classify(err))
	assert.Empty(t, geo.requests)
}

func TestGoogleSource_LowAccuracyAllowsIP(t *testing.T) {
	geo := &fakeGeolocator{result: &maps.GeolocationResult{Location: maps.LatLng{Lat: 1, Lng: 1}, Accuracy: 5000}}
	source := newGoogleSource(geo, 0)

	_, err := source.CurrentPosition(context.Background(), Signals{}, Options{EnableHighAccuracy: false})

	require.NoError(t, err)
	assert.True(t, geo.requests[0].ConsiderIP)
}

func TestToPositionError(t *testing.T) {
	assert.Equal(t, ReasonPositionUnavailable, Classify(toPositionError(errors.New("maps: notFound - Not Found"))))
	assert.Equal(t, ReasonPermissionDenied, Classify(toPositionError(errors.New("maps: keyInvalid"))))
	assert.Equal(t, ReasonTimeout, Classify(toPositionError(context.DeadlineExceeded)))
	assert.Equal(t, ReasonUnknown, Classify(toPositionError(errors.New("connection reset"))))
}

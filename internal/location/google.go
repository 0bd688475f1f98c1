package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"
)

// geolocator часть клиента Google Maps, которая нужна источнику
type geolocator interface {
	Geolocate(ctx context.Context, r *maps.GeolocationRequest) (*maps.GeolocationResult, error)
}

// GoogleSource определяет позицию по сигналам Wi-Fi и сотовых вышек через Geolocation API.
// Высокая точность запрещает позиционирование по IP, низкая разрешает.
type GoogleSource struct {
	client  geolocator
	limiter *rate.Limiter
}

// NewGoogleSource создает источник. ratePerSecond ограничивает расход квоты API.
func NewGoogleSource(apiKey string, ratePerSecond float64) (*GoogleSource, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create google maps client: %w", err)
	}
	return newGoogleSource(client, ratePerSecond), nil
}

func newGoogleSource(client geolocator, ratePerSecond float64) *GoogleSource {
	limit := rate.Limit(ratePerSecond)
	if ratePerSecond <= 0 {
		limit = rate.Inf
	}
	burst := int(ratePerSecond)
	if burst < 1 {
		burst = 1
	}
	return &GoogleSource{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (g *GoogleSource) CurrentPosition(ctx context.Context, signals Signals, opts Options) (models.Location, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return models.Location{}, &PositionError{Code: CodeTimeout, Message: err.Error()}
	}

	req := &maps.GeolocationRequest{
		ConsiderIP: !opts.EnableHighAccuracy,
	}
	for _, ap := range signals.WiFiAccessPoints {
		req.WiFiAccessPoints = append(req.WiFiAccessPoints, maps.WiFiAccessPoint{
			MACAddress:     ap.MACAddress,
			SignalStrength: ap.SignalStrength,
		})
	}
	for _, ct := range signals.CellTowers {
		req.CellTowers = append(req.CellTowers, maps.CellTower{
			CellID:            ct.CellID,
			LocationAreaCode:  ct.LocationAreaCode,
			MobileCountryCode: ct.MobileCountryCode,
			MobileNetworkCode: ct.MobileNetworkCode,
			SignalStrength:    ct.SignalStrength,
		})
	}
	if opts.EnableHighAccuracy && len(req.WiFiAccessPoints) == 0 && len(req.CellTowers) == 0 {
		return models.Location{}, &PositionError{Code: CodePositionUnavailable, Message: "no device signals for high accuracy fix"}
	}

	res, err := g.client.Geolocate(ctx, req)
	if err != nil {
		return models.Location{}, toPositionError(err)
	}
	return models.Location{
		Latitude:  res.Location.Lat,
		Longitude: res.Location.Lng,
		Accuracy:  res.Accuracy,
	}, nil
}

// toPositionError сопоставляет ответы API с кодами Geolocation API браузера
func toPositionError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &PositionError{Code: CodeTimeout, Message: err.Error()}
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "notFound"), strings.Contains(msg, "ZERO_RESULTS"):
		return &PositionError{Code: CodePositionUnavailable, Message: msg}
	case strings.Contains(msg, "keyInvalid"), strings.Contains(msg, "accessNotConfigured"),
		strings.Contains(msg, "REQUEST_DENIED"), strings.Contains(msg, "PERMISSION_DENIED"):
		return &PositionError{Code: CodePermissionDenied, Message: msg}
	}
	return fmt.Errorf("geolocate: %w", err)
}

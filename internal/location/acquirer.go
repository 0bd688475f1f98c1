package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/sirupsen/logrus"
)

// Reason причина, по которой требуется ручной ввод адреса
type Reason string

const (
	ReasonPermissionDenied    Reason = "permission-denied"
	ReasonPositionUnavailable Reason = "position-unavailable"
	ReasonTimeout             Reason = "timeout"
	ReasonUnknown             Reason = "unknown"
	ReasonUnsupported         Reason = "unsupported"
	ReasonInsecureContext     Reason = "insecure-context"
)

// Коды ошибок источника координат, как у Geolocation API браузера
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

const (
	HighAccuracyTimeout = 10 * time.Second
	LowAccuracyTimeout  = 20 * time.Second
)

// ManualEntryRequired терминальный исход, после которого пользователь вводит адрес вручную
type ManualEntryRequired struct {
	Reason Reason
}

func (e *ManualEntryRequired) Error() string {
	return fmt.Sprintf("manual address entry required: %s", e.Reason)
}

// Message текст для показа пользователю
func (e *ManualEntryRequired) Message() string {
	switch e.Reason {
	case ReasonPermissionDenied:
		return "Location permission denied. Switched to manual entry."
	case ReasonPositionUnavailable:
		return "Location unavailable. Switched to manual entry."
	case ReasonTimeout:
		return "Location request timed out. Switched to manual entry."
	case ReasonUnsupported:
		return "Geolocation is not supported. Please enter address manually."
	case ReasonInsecureContext:
		return "Location is blocked on insecure connections. Please enter address manually."
	default:
		return "Unable to retrieve location. Switched to manual entry."
	}
}

// PositionError ошибка источника координат с кодом
type PositionError struct {
	Code    int
	Message string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position error %d: %s", e.Code, e.Message)
}

// Options параметры одной попытки
type Options struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// Signals сырые сигналы устройства, по которым определяется позиция
type Signals struct {
	WiFiAccessPoints []WiFiAccessPoint
	CellTowers       []CellTower
}

type WiFiAccessPoint struct {
	MACAddress     string
	SignalStrength float64
}

type CellTower struct {
	CellID            int
	LocationAreaCode  int
	MobileCountryCode int
	MobileNetworkCode int
	SignalStrength    int
}

// PositionSource платформенная возможность определения местоположения
type PositionSource interface {
	CurrentPosition(ctx context.Context, signals Signals, opts Options) (models.Location, error)
}

// Environment описывает окружение, из которого пришёл запрос
type Environment struct {
	Secure   bool
	Hostname string
}

var localHosts = map[string]struct{}{
	"localhost": {},
	"127.0.0.1": {},
	"::1":       {},
}

// allowsAcquisition проверяет правило безопасного контекста
func (e Environment) allowsAcquisition() bool {
	if e.Secure {
		return true
	}
	_, ok := localHosts[e.Hostname]
	return ok
}

// Observer получает исход каждой попытки определения, используется для метрик
type Observer interface {
	ObserveLocation(outcome string)
}

type Acquirer struct {
	source   PositionSource
	logger   *logrus.Logger
	observer Observer
}

// NewAcquirer создает Acquirer. source == nil означает, что возможность недоступна.
func NewAcquirer(source PositionSource, logger *logrus.Logger, observer Observer) *Acquirer {
	return &Acquirer{
		source:   source,
		logger:   logger,
		observer: observer,
	}
}

// Acquire выполняет не более двух попыток: высокая точность, затем низкая.
// Любая неудача возвращается как *ManualEntryRequired.
func (a *Acquirer) Acquire(ctx context.Context, env Environment, signals Signals) (*models.Location, error) {
	log := a.logger.WithFields(logrus.Fields{
		"component": "location",
		"method":    "Acquire",
	})

	if !env.allowsAcquisition() {
		log.WithField("hostname", env.Hostname).Warn("Refusing geolocation in insecure context")
		return nil, a.manual(ReasonInsecureContext)
	}
	if a.source == nil {
		log.Warn("Geolocation capability is unavailable")
		return nil, a.manual(ReasonUnsupported)
	}

	loc, err := a.attempt(ctx, signals, Options{
		EnableHighAccuracy: true,
		Timeout:            HighAccuracyTimeout,
		MaximumAge:         0,
	})
	if err == nil {
		a.observe("high_accuracy")
		return &loc, nil
	}
	log.WithError(err).Info("High accuracy attempt failed, retrying with low accuracy")

	loc, err = a.attempt(ctx, signals, Options{
		EnableHighAccuracy: false,
		Timeout:            LowAccuracyTimeout,
		MaximumAge:         0,
	})
	if err == nil {
		a.observe("low_accuracy")
		return &loc, nil
	}

	reason := Classify(err)
	log.WithError(err).WithField("reason", reason).Warn("Location acquisition failed, manual entry required")
	return nil, a.manual(reason)
}

func (a *Acquirer) attempt(ctx context.Context, signals Signals, opts Options) (models.Location, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	loc, err := a.source.CurrentPosition(attemptCtx, signals, opts)
	if err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return models.Location{}, &PositionError{Code: CodeTimeout, Message: "location request timed out"}
	}
	return loc, err
}

func (a *Acquirer) manual(reason Reason) error {
	a.observe(string(reason))
	return &ManualEntryRequired{Reason: reason}
}

func (a *Acquirer) observe(outcome string) {
	if a.observer != nil {
		a.observer.ObserveLocation(outcome)
	}
}

// Classify переводит ошибку источника в причину для пользователя
func Classify(err error) Reason {
	var posErr *PositionError
	if errors.As(err, &posErr) {
		switch posErr.Code {
		case CodePermissionDenied:
			return ReasonPermissionDenied
		case CodePositionUnavailable:
			return ReasonPositionUnavailable
		case CodeTimeout:
			return ReasonTimeout
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	return ReasonUnknown
}

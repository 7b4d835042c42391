package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cristianoliveira/pairup/internal/bus"
	"github.com/cristianoliveira/pairup/internal/logging"
	"github.com/cristianoliveira/pairup/internal/metrics"
	"github.com/cristianoliveira/pairup/internal/storage"
)

// Publisher is the part of the bus the service needs.
type Publisher interface {
	Publish(bus.Event) error
}

// Service loads and saves settings through the key-value store and
// announces dark mode changes on the bus.
type Service struct {
	kv      storage.Store
	bus     Publisher
	log     logging.Logger
	metrics *metrics.Metrics
}

// NewService creates a settings service. A nil logger or metrics set
// disables that concern.
func NewService(kv storage.Store, pub Publisher, log logging.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logging.Noop()
	}
	if m == nil {
		m = metrics.Noop()
	}
	return &Service{kv: kv, bus: pub, log: log.With("component", "settings"), metrics: m}
}

// Load returns the saved settings. Missing fields keep their defaults and an
// absent, unreadable or malformed value yields DefaultSettings.
func (s *Service) Load(ctx context.Context) AppSettings {
	settings, _ := s.load(ctx)
	return settings
}

// load also reports whether a well-formed value was stored.
func (s *Service) load(ctx context.Context) (AppSettings, bool) {
	settings := DefaultSettings()
	raw, ok, err := s.kv.Get(ctx, KeyAppSettings)
	if err != nil {
		s.readFailed(KeyAppSettings, err)
		return settings, false
	}
	if !ok {
		return settings, false
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.readFailed(KeyAppSettings, err)
		return DefaultSettings(), false
	}
	return settings, true
}

// Save persists settings. Fields in the stored object that AppSettings does
// not model belong to other screens and are kept.
func (s *Service) Save(ctx context.Context, settings AppSettings) error {
	known, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	merged := s.storedFields(ctx)
	if err := json.Unmarshal(known, &merged); err != nil {
		return fmt.Errorf("failed to merge settings: %w", err)
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.kv.Set(ctx, KeyAppSettings, string(data)); err != nil {
		s.metrics.StoreWriteFailures.WithLabelValues(KeyAppSettings).Inc()
		s.log.Warn("write dropped", "key", KeyAppSettings, "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// storedFields returns the raw stored object, or an empty one when it is
// absent, unreadable or not a JSON object.
func (s *Service) storedFields(ctx context.Context) map[string]json.RawMessage {
	fields := make(map[string]json.RawMessage)
	raw, ok, err := s.kv.Get(ctx, KeyAppSettings)
	if err != nil || !ok {
		return fields
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return make(map[string]json.RawMessage)
	}
	return fields
}

// ThemeOverride returns the persisted theme override. It is ThemeSystem
// until settings have been saved at least once, or when they are malformed.
func (s *Service) ThemeOverride(ctx context.Context) Theme {
	settings, ok := s.load(ctx)
	if !ok {
		return ThemeSystem
	}
	return settings.Theme()
}

// SetDarkMode saves the dark mode preference and then publishes a
// theme_change event. The event is published even if saving fails so the
// running session reflects the choice; the save error is still returned.
func (s *Service) SetDarkMode(ctx context.Context, on bool) error {
	settings := s.Load(ctx)
	settings.DarkModeEnabled = on
	saveErr := s.Save(ctx, settings)

	event := bus.ThemeChange(on)
	if s.bus != nil {
		if err := s.bus.Publish(event); err != nil {
			return fmt.Errorf("publish theme change: %w", err)
		}
	}
	s.metrics.ThemeChanges.WithLabelValues(event.Payload).Inc()
	s.log.Info("theme changed", "theme", event.Payload)
	return saveErr
}

// Language returns the chosen language code, or DefaultLanguage.
func (s *Service) Language(ctx context.Context) string {
	code, ok, err := s.kv.Get(ctx, KeyLanguage)
	if err != nil {
		s.readFailed(KeyLanguage, err)
		return DefaultLanguage
	}
	if !ok || ValidateLanguage(code) != nil {
		return DefaultLanguage
	}
	return code
}

// SetLanguage validates and persists code.
func (s *Service) SetLanguage(ctx context.Context, code string) error {
	if err := ValidateLanguage(code); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyLanguage, code); err != nil {
		s.metrics.StoreWriteFailures.WithLabelValues(KeyLanguage).Inc()
		return fmt.Errorf("failed to save language: %w", err)
	}
	return nil
}

// Clear removes the stored settings and language.
func (s *Service) Clear(ctx context.Context) error {
	for _, key := range []string{KeyAppSettings, KeyLanguage} {
		if err := s.kv.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

func (s *Service) readFailed(key string, err error) {
	s.metrics.StoreReadFailures.WithLabelValues(key).Inc()
	s.log.Warn("read failed, using default", "key", key, "error", err)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cambridgestyling/stylequote/internal/adapters/driven/storage/memory"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

// mapStore is the smallest driven.ConfigStore the services accept.
type mapStore map[string]any

func (m mapStore) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) GetString(key string) string {
	s, _ := m[key].(string)
	return s
}

func (m mapStore) GetInt(key string) int {
	n, _ := m[key].(int64)
	return int(n)
}

func (m mapStore) Set(key string, value any) error {
	m[key] = value
	return nil
}

func TestServices_AcceptMinimalStore(t *testing.T) {
	store := mapStore{"pricing.extra.garden": int64(500)}
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set("animation.counter_ms", "800"))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 800*time.Millisecond, settings.Animation.CounterDuration)

	table, err := DefaultPriceTable().WithOverrides(store)
	require.NoError(t, err)
	assert.Equal(t, int64(500), table.Sheet().ExtraFees[domain.ExtraGarden])
}

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_StoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("enquiry.recipient", "studio@example.com")
	_ = store.Set("enquiry.business_name", "Studio North")
	_ = store.Set("animation.quote_ms", int64(900))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "studio@example.com", settings.Enquiry.Recipient)
	assert.Equal(t, "Studio North", settings.Enquiry.BusinessName)
	assert.Equal(t, "Jessie", settings.Enquiry.ContactName)
	assert.Equal(t, 900*time.Millisecond, settings.Animation.QuoteDuration)
	assert.Equal(t, 2*time.Second, settings.Animation.CounterDuration)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)
	want := &domain.AppSettings{
		Enquiry: domain.EnquirySettings{
			Recipient:    "a@b.co",
			ContactName:  "Alex",
			BusinessName: "Alex Interiors",
		},
		Animation: domain.AnimationSettings{
			CounterDuration: 500 * time.Millisecond,
			QuoteDuration:   750 * time.Millisecond,
		},
	}

	require.NoError(t, svc.Save(want))
	got, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 750, store.GetInt("animation.quote_ms"))
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"recipient", "enquiry.recipient", "owner@example.com", nil},
		{"recipient with name", "enquiry.recipient", "Owner <owner@example.com>", nil},
		{"bad recipient", "enquiry.recipient", "not-an-address", domain.ErrInvalidInput},
		{"contact", "enquiry.contact_name", "Riley", nil},
		{"empty contact", "enquiry.contact_name", "", domain.ErrInvalidInput},
		{"empty business", "enquiry.business_name", "", domain.ErrInvalidInput},
		{"counter", "animation.counter_ms", "1200", nil},
		{"zero quote ms", "animation.quote_ms", "0", domain.ErrInvalidInput},
		{"text quote ms", "animation.quote_ms", "fast", domain.ErrInvalidInput},
		{"unknown key", "theme.colour", "pink", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSettingsService(memory.NewConfigStore())

			err := svc.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSettingsService_SetMillisStoredAsInt(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set("animation.counter_ms", "1200"))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 1200*time.Millisecond, settings.Animation.CounterDuration)
}

func TestSettingsService_Keys(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	keys := svc.Keys()

	assert.Len(t, keys, 5)
	for _, k := range keys {
		err := svc.Set(k, "")
		assert.NotErrorIs(t, err, domain.ErrNotFound, k)
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), svc.GetDefaults())
}

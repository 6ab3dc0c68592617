package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-ledger/models"
)

func TestTaxRateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	federal, provincial := svc.TaxRates()
	assert.True(t, federal.Equal(dec(t, "5")))
	assert.True(t, provincial.Equal(dec(t, "8")))
}

func TestTaxRateOverrides(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	require.NoError(t, svc.Set(models.SettingFederalTaxRate, "7.5"))
	require.NoError(t, svc.Set(models.SettingProvincialTaxRate, "9.975"))

	federal, provincial := svc.TaxRates()
	assert.True(t, federal.Equal(dec(t, "7.5")))
	assert.True(t, provincial.Equal(dec(t, "9.975")))
}

func TestTaxRateFallsBackOnGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	require.NoError(t, svc.Set(models.SettingFederalTaxRate, "not-a-number"))
	require.NoError(t, svc.Set(models.SettingProvincialTaxRate, "-3"))

	federal, provincial := svc.TaxRates()
	assert.True(t, federal.Equal(dec(t, "5")))
	assert.True(t, provincial.Equal(dec(t, "8")))
}

func TestSettingsSetUpdatesExisting(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	require.NoError(t, svc.Set("contact_email", "a@example.com"))
	require.NoError(t, svc.Set("contact_email", "b@example.com"))

	value, ok := svc.Get("contact_email")
	require.True(t, ok)
	assert.Equal(t, "b@example.com", value)

	all, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), "status %q deveria ser válido", s)
	}

	assert.False(t, LeadStatus("Ghosted").Valid())
	assert.False(t, LeadStatus("call booked").Valid(), "status é case-sensitive")
	assert.False(t, LeadStatus("").Valid())
}

func TestPipelineOrder(t *testing.T) {
	assert.Len(t, AllStatuses, 8)
	assert.Equal(t, StatusNewLead, AllStatuses[0])
	assert.Equal(t, StatusClosedPaid, AllStatuses[7])
}

func TestConfigGetOr(t *testing.T) {
	cfg := Config{
		ConfigManagerEmail: "boss@agency.com",
	}

	assert.Equal(t, "boss@agency.com", cfg.GetOr(ConfigManagerEmail, "fallback@agency.com"))
	assert.Equal(t, "fallback@agency.com", cfg.GetOr(ConfigSMTPEmail, "fallback@agency.com"))
	assert.Empty(t, cfg.Get(ConfigStripeAPIKey))

	var empty Config
	assert.Equal(t, "x", empty.GetOr(ConfigManagerEmail, "x"))
}

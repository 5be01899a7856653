package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStateToCode(t *testing.T) {
	assert.Equal(t, "GA", MapStateToCode("Georgia"))
	assert.Equal(t, "GA", MapStateToCode("ga"))
	assert.Equal(t, "NC", MapStateToCode(" North Carolina "))
	assert.Equal(t, "DC", MapStateToCode("District of Columbia"))

	// Unknown values fall back to uppercase.
	assert.Equal(t, "PUERTO RICO", MapStateToCode("Puerto Rico"))
	assert.Equal(t, "", MapStateToCode(""))
}

func TestMapStatusToLabel(t *testing.T) {
	assert.Equal(t, "Ready for pickup", MapStatusToLabel("ready_for_pickup"))
	assert.Equal(t, "Paid", MapStatusToLabel("PAID"))
	assert.Equal(t, "Refunded", MapStatusToLabel("refunded"))
	assert.Equal(t, "", MapStatusToLabel(""))
}

func TestMapCarrierToLabel(t *testing.T) {
	assert.Equal(t, "UPS", MapCarrierToLabel("ups"))
	assert.Equal(t, "FedEx", MapCarrierToLabel("FEDEX"))
	assert.Equal(t, "Stamps.com", MapCarrierToLabel("stamps_com"))
	assert.Equal(t, "PONY_EXPRESS", MapCarrierToLabel("pony_express"))
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnquiryCmd_Use(t *testing.T) {
	assert.Equal(t, "enquiry", enquiryCmd.Use)
}

func TestEnquiryCmd_PrintsMessage(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, append([]string{"enquiry"}, workedExample...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Hi Jessie,")
	assert.Contains(t, out, "--- QUOTE SUMMARY ---")
	assert.Contains(t, out, "Add-ons: Professional Photography, Express Delivery (+25%)")
	assert.Contains(t, out, "Estimated Total: £6,438")
	assert.NotContains(t, out, "\r")
}

func TestEnquiryCmd_Mailto(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, append([]string{"enquiry", "--mailto"}, workedExample...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "mailto:jessie@cambridgecolourconsultants.co.uk?")
	assert.Contains(t, out, "%0D%0A")
}

func TestEnquiryCmd_UsesConfiguredContact(t *testing.T) {
	setupTestServices(t)
	require.NoError(t, settingsService.Set("enquiry.contact_name", "Sam"))

	out, err := execute(t, append([]string{"enquiry"}, workedExample...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Hi Sam,")
}

func TestEnquiryCmd_IncompleteSelection(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "enquiry", "--service", "refresh")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--size")
}

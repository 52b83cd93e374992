package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseURLResolution(t *testing.T) {
	t.Setenv("NUSH_API_URL", "")
	assert.Equal(t, "http://localhost:5001", BaseURL(""))

	t.Setenv("NUSH_API_URL", "https://api.nush.dev/")
	assert.Equal(t, "https://api.nush.dev", BaseURL(""))

	assert.Equal(t, "https://staging.nush.dev", BaseURL("https://staging.nush.dev/"),
		"an explicit override wins over the environment")
}

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLinkURL_AddsScheme(t *testing.T) {
	got, err := NormalizeLinkURL("1177.se/journal")
	assert.NoError(t, err)
	assert.Equal(t, "https://1177.se/journal", got)
}

func TestNormalizeLinkURL_KeepsExistingScheme(t *testing.T) {
	got, err := NormalizeLinkURL("http://example.com")
	assert.NoError(t, err)
	assert.Equal(t, "http://example.com", got)

	got, err = NormalizeLinkURL("https://example.com")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", got)
}

func TestNormalizeLinkURL_RejectsEmpty(t *testing.T) {
	_, err := NormalizeLinkURL("   ")
	assert.Error(t, err)
}

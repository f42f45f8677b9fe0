package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndTranslate(t *testing.T) {
	b, err := Load("en")
	require.NoError(t, err)
	assert.Contains(t, b.Languages(), "en")
	assert.Contains(t, b.Languages(), "ru")

	en := b.T("en", "notification.title.contract")
	ru := b.T("ru", "notification.title.contract")
	assert.NotEmpty(t, en)
	assert.NotEmpty(t, ru)
	assert.NotEqual(t, en, ru)
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	b, err := Load("en")
	require.NoError(t, err)
	assert.Equal(t, b.T("en", "notification.title.mileage"), b.T("de", "notification.title.mileage"))
}

func TestMissingKeyReturnsKey(t *testing.T) {
	b, err := Load("en")
	require.NoError(t, err)
	assert.Equal(t, "no.such.key", b.T("en", "no.such.key"))
}

func TestUnknownDefaultLangFallsBackToEnglish(t *testing.T) {
	b, err := Load("xx")
	require.NoError(t, err)
	assert.Equal(t, b.T("en", "notification.title.contract"), b.T("xx", "notification.title.contract"))
}

package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	catalog, err := NewCatalog("fr-FR")
	require.NoError(t, err)

	testCases := []struct {
		name        string
		preferences []string
		key         string
		expected    string
	}{
		{name: "default locale", key: "create-tournament", expected: "Créer un tournoi"},
		{name: "english header", preferences: []string{"en-US,en;q=0.9"}, key: "create-tournament", expected: "Create a tournament"},
		{name: "unknown language falls back", preferences: []string{"de-DE"}, key: "create-tournament", expected: "Créer un tournoi"},
		{name: "bye placeholder", key: "bye", expected: "Exempt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalog.For(tc.preferences...).Translate(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTranslateMissingKey(t *testing.T) {
	catalog, err := NewCatalog("fr-FR")
	require.NoError(t, err)

	got, err := catalog.For().Translate("delete-tournament")
	require.Error(t, err)
	assert.Empty(t, got)

	var locErr *LocalizationError
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, "delete-tournament", locErr.Key)
	assert.Equal(t, "fr", locErr.Locale)
}

func TestLocalizationErrorReportsResolvedLanguage(t *testing.T) {
	catalog, err := NewCatalog("fr-FR")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		preference string
		expected   string
	}{
		{name: "malformed header", preference: "garbage;;q=x", expected: "fr"},
		{name: "english header", preference: "en-GB,en;q=0.8", expected: "en"},
		{name: "unsupported language", preference: "de-DE", expected: "fr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.For(tc.preference).Translate("nope")

			var locErr *LocalizationError
			require.True(t, errors.As(err, &locErr))
			assert.Equal(t, tc.expected, locErr.Locale)
			assert.NotContains(t, err.Error(), tc.preference)
		})
	}
}

func TestNewCatalogRejectsBadLocale(t *testing.T) {
	_, err := NewCatalog("not a locale!")
	assert.Error(t, err)
}

func TestLanguages(t *testing.T) {
	catalog, err := NewCatalog("fr-CA")
	require.NoError(t, err)
	assert.Len(t, catalog.Languages(), 2)
}

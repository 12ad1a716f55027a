package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadLabels(t *testing.T) {
	t.Run("english defaults", func(t *testing.T) {
		labels, err := LoadLabels(language.AmericanEnglish)
		require.NoError(t, err)
		assert.Equal(t, "Latest posts", labels.HomeHeading)
		assert.Equal(t, "Read more →", labels.ReadMore)
		assert.Equal(t, "404 — Not found", labels.NotFoundHeading)
		assert.Equal(t, "Go home", labels.GoHome)
	})

	t.Run("german catalog", func(t *testing.T) {
		labels, err := LoadLabels(language.MustParse("de-AT"))
		require.NoError(t, err)
		assert.Equal(t, "Neueste Beiträge", labels.HomeHeading)
		assert.Equal(t, "← Zurück", labels.Back)
	})

	t.Run("unsupported locale falls back to english", func(t *testing.T) {
		labels, err := LoadLabels(language.Japanese)
		require.NoError(t, err)
		assert.Equal(t, "Latest posts", labels.HomeHeading)
	})

	t.Run("every label is set", func(t *testing.T) {
		for _, tag := range []language.Tag{language.English, language.German, language.French} {
			labels, err := LoadLabels(tag)
			require.NoError(t, err)
			assert.NotEmpty(t, labels.HomeSubheading, tag.String())
			assert.NotEmpty(t, labels.NotFoundMessage, tag.String())
		}
	})
}

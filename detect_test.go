package lingo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lingo"
)

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestDetectSystemLanguage(t *testing.T) {
	t.Run("posix locale with codeset", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANG", "es_ES.UTF-8")
		assert.Equal(t, "es", lingo.DetectSystemLanguage())
	})

	t.Run("bcp47 tag reduced to primary subtag", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANG", "en-US")
		assert.Equal(t, "en", lingo.DetectSystemLanguage())
	})

	t.Run("LC_ALL wins over LANG", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LC_ALL", "de_DE.UTF-8")
		t.Setenv("LANG", "fr_FR.UTF-8")
		assert.Equal(t, "de", lingo.DetectSystemLanguage())
	})

	t.Run("LANGUAGE priority list head wins", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "pl:en")
		t.Setenv("LANG", "en_US.UTF-8")
		assert.Equal(t, "pl", lingo.DetectSystemLanguage())
	})

	t.Run("modifier suffix stripped", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANG", "de_DE.UTF-8@euro")
		assert.Equal(t, "de", lingo.DetectSystemLanguage())
	})

	t.Run("C locale falls back to english", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANG", "C")
		assert.Equal(t, "en", lingo.DetectSystemLanguage())
	})

	t.Run("POSIX locale falls back to english", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LC_ALL", "POSIX")
		assert.Equal(t, "en", lingo.DetectSystemLanguage())
	})

	t.Run("garbage falls through to next variable", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LC_ALL", "!!not-a-locale!!")
		t.Setenv("LANG", "it_IT")
		assert.Equal(t, "it", lingo.DetectSystemLanguage())
	})

	t.Run("nothing set falls back to english", func(t *testing.T) {
		clearLocaleEnv(t)
		assert.Equal(t, "en", lingo.DetectSystemLanguage())
	})
}

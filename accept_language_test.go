package lingo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lingo"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"pl", "en", "de"}

	t.Run("empty available returns empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, lingo.MatchAcceptLanguage("en", nil))
	})

	t.Run("empty header returns first available", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "pl", lingo.MatchAcceptLanguage("", available))
	})

	t.Run("highest quality match wins", func(t *testing.T) {
		t.Parallel()
		got := lingo.MatchAcceptLanguage("en-US,en;q=0.9,pl;q=0.8", available)
		assert.Equal(t, "en", got)
	})

	t.Run("quality ordering respected", func(t *testing.T) {
		t.Parallel()
		got := lingo.MatchAcceptLanguage("pl;q=0.8,de;q=0.9", available)
		assert.Equal(t, "de", got)
	})

	t.Run("base language serves regional variant", func(t *testing.T) {
		t.Parallel()
		got := lingo.MatchAcceptLanguage("de-AT", []string{"en", "de"})
		assert.Equal(t, "de", got)
	})

	t.Run("exact match preferred", func(t *testing.T) {
		t.Parallel()
		got := lingo.MatchAcceptLanguage("es", []string{"en", "es"})
		assert.Equal(t, "es", got)
	})

	t.Run("malformed header returns first available", func(t *testing.T) {
		t.Parallel()
		got := lingo.MatchAcceptLanguage(";;;", available)
		assert.Equal(t, "pl", got)
	})

	t.Run("no overlap returns first available", func(t *testing.T) {
		t.Parallel()
		got := lingo.MatchAcceptLanguage("zu", available)
		assert.Equal(t, "pl", got)
	})
}

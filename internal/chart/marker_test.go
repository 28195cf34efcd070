package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	assert.Equal(t, "[[CHART:zones]]", Marker("zones"))
}

func TestSplit(t *testing.T) {
	t.Run("text and chart segments", func(t *testing.T) {
		text := "Analyse :\n\n[[CHART:zones]]\n\nConclusion. [[CHART:satisfaction]]"
		segments := Split(text)

		require.Len(t, segments, 4)
		assert.Equal(t, "Analyse :\n\n", segments[0].Text)
		assert.Equal(t, KeyZones, segments[1].Chart)
		assert.Equal(t, "zones", segments[1].ChartID)
		assert.Equal(t, "\n\nConclusion. ", segments[2].Text)
		assert.Equal(t, KeySatisfaction, segments[3].Chart)
	})

	t.Run("unknown identifier keeps its id", func(t *testing.T) {
		segments := Split("[[CHART:planets]]")
		require.Len(t, segments, 2)
		assert.Equal(t, "", segments[0].Text)
		assert.Equal(t, KeyUnknown, segments[1].Chart)
		assert.Equal(t, "planets", segments[1].ChartID)
	})

	t.Run("no markers", func(t *testing.T) {
		segments := Split("Texte sans graphique.")
		require.Len(t, segments, 1)
		assert.Equal(t, "Texte sans graphique.", segments[0].Text)
	})

	t.Run("empty input", func(t *testing.T) {
		segments := Split("")
		require.Len(t, segments, 1)
		assert.Equal(t, "", segments[0].Text)
	})

	t.Run("malformed markers stay text", func(t *testing.T) {
		for _, text := range []string{"[[CHART:]]", "[[chart:zones]]", "[CHART:zones]"} {
			segments := Split(text)
			require.Len(t, segments, 1, text)
			assert.Equal(t, text, segments[0].Text)
		}
	})
}

func TestJoinRoundTrip(t *testing.T) {
	texts := []string{
		"Analyse :\n\n[[CHART:zones]]\n\nConclusion. [[CHART:satisfaction]]",
		"[[CHART:competitors]]",
		"Sans marqueur.",
		"",
	}
	for _, text := range texts {
		assert.Equal(t, text, Join(Split(text)))
	}
}

func TestStrip(t *testing.T) {
	text := "Avant [[CHART:zones]]après [[CHART:unknownId]]fin"
	assert.Equal(t, "Avant après fin", Strip(text))
	assert.Equal(t, "rien", Strip("rien"))
}

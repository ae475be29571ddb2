package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "sao paulo", NormalizeText("São Paulo"))
	assert.Equal(t, "cote d-azur", NormalizeText("Côte d-Azur"))
	assert.Equal(t, "harbor hotel", NormalizeText("  Harbor Hotel "))
	assert.Equal(t, "", NormalizeText(""))
}

func TestScoreProperty(t *testing.T) {
	property := SearchableProperty{
		Name:      "Harbor Hotel",
		City:      "Lisbon",
		Country:   "Portugal",
		Amenities: []string{"pool", "free wifi"},
	}

	assert.Greater(t, ScoreProperty("harbor", property, nil), 0)
	assert.Greater(t, ScoreProperty("Harbour Hotel", property, nil), 0, "near-miss spellings still match")
	assert.Greater(t, ScoreProperty("lisbon", property, nil), 0)
	assert.Greater(t, ScoreProperty("wifi", property, nil), 0)
	assert.Equal(t, 0, ScoreProperty("zanzibar", property, nil))
	assert.Equal(t, 0, ScoreProperty("", property, nil))
}

func TestRankByQuery(t *testing.T) {
	items := []SearchableProperty{
		{Name: "Old Mill", City: "Porto", Country: "Portugal"},
		{Name: "Harbor Hotel", City: "Lisbon", Country: "Portugal"},
		{Name: "Lisbon Rooftop Flat", City: "Lisbon", Country: "Portugal"},
	}

	order := RankByQuery("harbor hotel", items)
	assert.NotEmpty(t, order)
	assert.Equal(t, 1, order[0], "exact name match ranks first")

	order = RankByQuery("xyzzy", nil)
	assert.Empty(t, order)
}

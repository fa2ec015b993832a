package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"answersite/internal/models"
)

func TestJoin(t *testing.T) {
	keywords := []models.KeywordRecord{{Slug: "c"}, {Slug: "a"}, {Slug: "b"}}
	metrics := []models.MetricRecord{
		{Slug: "a", Clicks: 1},
		{Slug: "x", Clicks: 9},
		{Slug: "a", Clicks: 2},
		{Slug: "c", Clicks: 3},
	}

	got := Join(keywords, metrics)
	require.Len(t, got, 3)

	assert.Equal(t, "c", got[0].Slug)
	assert.Equal(t, int64(3), got[0].Clicks())
	assert.Equal(t, "a", got[1].Slug)
	assert.Equal(t, int64(1), got[1].Clicks(), "first metrics row wins")
	assert.Equal(t, "b", got[2].Slug)
	assert.False(t, got[2].HasMetric())
	assert.Zero(t, got[2].Clicks())
}

func TestUnmatched(t *testing.T) {
	keywords := []models.KeywordRecord{{Slug: "a"}}
	metrics := []models.MetricRecord{{Slug: "z"}, {Slug: "a"}, {Slug: "y"}, {Slug: "z"}}

	assert.Equal(t, []string{"z", "y"}, Unmatched(keywords, metrics))
	assert.Nil(t, Unmatched(keywords, nil))
}

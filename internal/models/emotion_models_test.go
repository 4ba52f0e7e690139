package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maze4080/emotionsense/internal/models"
)

func TestDominant_DistinctScores(t *testing.T) {
	tests := []struct {
		name   string
		scores models.EmotionScores
		want   string
	}{
		{
			name:   "joy wins",
			scores: models.EmotionScores{Anger: 0.1, Disgust: 0.05, Fear: 0.2, Joy: 0.9, Sadness: 0.15},
			want:   "joy",
		},
		{
			name:   "sadness wins",
			scores: models.EmotionScores{Anger: 0.1, Disgust: 0.05, Fear: 0.08, Joy: 0.02, Sadness: 0.8},
			want:   "sadness",
		},
		{
			name:   "anger wins",
			scores: models.EmotionScores{Anger: 0.7, Disgust: 0.3, Fear: 0.1, Joy: 0.05, Sadness: 0.2},
			want:   "anger",
		},
		{
			name:   "fear wins",
			scores: models.EmotionScores{Anger: 0.01, Disgust: 0.02, Fear: 0.95, Joy: 0.1, Sadness: 0.3},
			want:   "fear",
		},
		{
			name:   "disgust wins",
			scores: models.EmotionScores{Anger: 0.2, Disgust: 0.6, Fear: 0.1, Joy: 0.05, Sadness: 0.3},
			want:   "disgust",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scores.Dominant())
		})
	}
}

func TestDominant_TiesResolveToEarliestLabel(t *testing.T) {
	tests := []struct {
		name   string
		scores models.EmotionScores
		want   string
	}{
		{
			name:   "all zero picks anger",
			scores: models.EmotionScores{},
			want:   "anger",
		},
		{
			name:   "joy and sadness tied picks joy",
			scores: models.EmotionScores{Anger: 0.1, Disgust: 0.1, Fear: 0.1, Joy: 0.5, Sadness: 0.5},
			want:   "joy",
		},
		{
			name:   "disgust and fear tied picks disgust",
			scores: models.EmotionScores{Anger: 0.2, Disgust: 0.4, Fear: 0.4, Joy: 0.1, Sadness: 0.1},
			want:   "disgust",
		},
		{
			name:   "five-way tie picks anger",
			scores: models.EmotionScores{Anger: 0.2, Disgust: 0.2, Fear: 0.2, Joy: 0.2, Sadness: 0.2},
			want:   "anger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scores.Dominant())
		})
	}
}

func TestScore_MapsLabelsToFields(t *testing.T) {
	scores := models.EmotionScores{Anger: 0.1, Disgust: 0.2, Fear: 0.3, Joy: 0.4, Sadness: 0.5}

	for i, label := range models.EmotionLabels {
		assert.InDelta(t, float64(i+1)/10, scores.Score(label), 1e-9)
	}
	assert.Zero(t, scores.Score("surprise"))
}

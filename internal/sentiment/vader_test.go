package sentiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maze4080/emotionsense/internal/sentiment"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "read this", sentiment.RemoveLinks("read [this](https://example.com/post)"))
	assert.Equal(t, "check  now", sentiment.RemoveLinks("check https://example.com now"))
	assert.Equal(t, "see  too", sentiment.RemoveLinks("see www.example.com too"))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markdown emphasis stripped",
			input: "I **really** enjoy this",
			want:  "I really enjoy this",
		},
		{
			name:  "markdown link keeps text",
			input: "found it [here](https://example.com/thing)",
			want:  "found it here",
		},
		{
			name:  "bare url dropped",
			input: "so angry about https://example.com/news today",
			want:  "so angry about today",
		},
		{
			name:  "whitespace collapsed",
			input: "too   many\n\nspaces",
			want:  "too many spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sentiment.CleanText(tt.input))
		})
	}
}

func TestLocalPolarity(t *testing.T) {
	score, label := sentiment.LocalPolarity("I absolutely love this, it is wonderful!")
	assert.Equal(t, "positive", label)
	assert.Greater(t, score, 0.20)

	score, label = sentiment.LocalPolarity("I hate this, it is horrible and disgusting.")
	assert.Equal(t, "negative", label)
	assert.Less(t, score, -0.20)

	_, label = sentiment.LocalPolarity("The package arrived on Tuesday.")
	assert.Equal(t, "neutral", label)
}

package models

import "time"

// EmotionLabels is the fixed enumeration order for the five emotion
// categories. Argmax ties are broken by whichever label comes first here.
var EmotionLabels = []string{"anger", "disgust", "fear", "joy", "sadness"}

type EmotionScores struct {
	Anger   float64 `json:"anger"`
	Disgust float64 `json:"disgust"`
	Fear    float64 `json:"fear"`
	Joy     float64 `json:"joy"`
	Sadness float64 `json:"sadness"`
}

// Score returns the value for one of the five fixed labels.
func (s EmotionScores) Score(label string) float64 {
	switch label {
	case "anger":
		return s.Anger
	case "disgust":
		return s.Disgust
	case "fear":
		return s.Fear
	case "joy":
		return s.Joy
	case "sadness":
		return s.Sadness
	}
	return 0
}

// Dominant returns the label with the greatest score. Comparison is
// strictly-greater over EmotionLabels, so exact ties resolve to the
// earliest label in that order.
func (s EmotionScores) Dominant() string {
	dominant := EmotionLabels[0]
	best := s.Score(dominant)
	for _, label := range EmotionLabels[1:] {
		if v := s.Score(label); v > best {
			dominant = label
			best = v
		}
	}
	return dominant
}

type EmotionResult struct {
	EmotionScores
	DominantEmotion string `json:"dominant_emotion"`
}

type AnalysisRequest struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
}

type AnalysisResult struct {
	AnalysisRequest
	EmotionResult
	LocalPolarity float64   `json:"local_polarity"`
	LocalLabel    string    `json:"local_label"`
	Timestamp     time.Time `json:"timestamp"`
}

package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
)

// RemoveLinks strips markdown links (keeping their text) and bare URLs.
// URLs carry no emotional signal and only pad the payload sent upstream.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// CleanText renders markdown down to plain text and drops links, so the
// backend sees prose rather than markup. Links go first, while they are
// still in markdown form.
func CleanText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := htmlTagPattern.ReplaceAllString(string(output), " ")

	return strings.Join(strings.Fields(plainText), " ")
}

// LocalPolarity scores text with VADER as a cheap local cross-check
// against the remote emotion scores. Labels follow the usual compound
// thresholds.
func LocalPolarity(text string) (float64, string) {
	scores := analyzer.PolarityScores(CleanText(text))
	score := scores.Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

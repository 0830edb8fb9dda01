// Package lexical holds the pure keyword classifiers shared by every engine:
// sentiment, keywords, topic, communication style and formality.
package lexical

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentCurious  = "curious"
	SentimentNeutral  = "neutral"
)

// TopicGeneral is returned when no category matches.
const TopicGeneral = "general"

// CategoryConversational is the vocabulary category of words outside every topic.
const CategoryConversational = "conversacional"

// VectorDims is the size of keyword vectors stored with memories.
const VectorDims = 64

// Sentiment is the result of DetectSentiment.
type Sentiment struct {
	Label     string   `json:"label"`
	Intensity float64  `json:"intensity"`
	Emotions  []string `json:"emotions"`
}

// DetectSentiment counts positive, negative and interrogative keywords.
func DetectSentiment(text string) Sentiment {
	lower := strings.ToLower(text)
	pos := utils.CountAny(lower, positiveWords)
	neg := utils.CountAny(lower, negativeWords)
	neu := utils.CountAny(lower, interrogativeWords)

	s := Sentiment{Label: SentimentNeutral, Intensity: 0.5}
	switch {
	case pos > neg:
		s.Label = SentimentPositive
		s.Intensity = math.Min(0.9, 0.5+0.1*float64(pos))
		s.Emotions = append(s.Emotions, "alegría", "satisfacción")
	case neg > pos:
		s.Label = SentimentNegative
		s.Intensity = math.Min(0.9, 0.5+0.1*float64(neg))
		s.Emotions = append(s.Emotions, "frustración", "descontento")
	case neu > 0:
		s.Label = SentimentCurious
		s.Intensity = 0.6
		s.Emotions = append(s.Emotions, "curiosidad", "interés")
	}

	if strings.Contains(lower, "gracias") || strings.Contains(lower, "agradezco") {
		s.Emotions = append(s.Emotions, "gratitud")
	}
	if strings.Contains(lower, "ayuda") || strings.Contains(lower, "ayúdame") {
		s.Emotions = append(s.Emotions, "necesidad de apoyo")
	}
	if strings.Contains(lower, "no entiendo") || strings.Contains(lower, "confundido") {
		s.Emotions = append(s.Emotions, "confusión")
	}
	return s
}

// Words lowercases text, strips punctuation and splits on whitespace.
func Words(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return -1
	}, text)
	return strings.Fields(cleaned)
}

// ExtractKeywords returns up to five content words ranked by frequency,
// ties broken by first occurrence.
func ExtractKeywords(text string) []string {
	type counted struct {
		word  string
		count int
	}
	index := map[string]int{}
	var words []counted
	for _, w := range Words(text) {
		if utils.RuneLen(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if i, ok := index[w]; ok {
			words[i].count++
			continue
		}
		index[w] = len(words)
		words = append(words, counted{word: w, count: 1})
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].count > words[j].count
	})
	if len(words) > 5 {
		words = words[:5]
	}
	out := make([]string, len(words))
	for i, c := range words {
		out[i] = c.word
	}
	return out
}

// DetectTopic picks the category with most keyword matches across messages.
func DetectTopic(messages ...string) string {
	keywords := ExtractKeywords(strings.ToLower(strings.Join(messages, " ")))
	best := TopicGeneral
	bestCount := 0
	for _, cat := range topicCategories {
		n := 0
		for _, kw := range keywords {
			if matchesCategory(kw, cat.words) {
				n++
			}
		}
		if n > bestCount {
			bestCount = n
			best = cat.name
		}
	}
	return best
}

// CategorizeWord returns the first topic category word belongs to.
func CategorizeWord(word string) string {
	w := strings.ToLower(word)
	for _, cat := range topicCategories {
		if matchesCategory(w, cat.words) {
			return cat.name
		}
	}
	return CategoryConversational
}

func matchesCategory(word string, catWords []string) bool {
	for _, cw := range catWords {
		if strings.Contains(word, cw) || strings.Contains(cw, word) {
			return true
		}
	}
	return false
}

// DetectStyle classifies the communication style of text.
// Enthusiastic markers win; otherwise formal and informal counts compete.
func DetectStyle(text string) types.Style {
	lower := strings.ToLower(text)
	if utils.ContainsAny(lower, EnthusiasticMarkers) {
		return types.StyleEnthusiastic
	}
	formal, informal := registerCounts(lower)
	switch {
	case formal > informal:
		return types.StyleFormal
	case informal > formal:
		return types.StyleInformal
	default:
		return types.StyleNeutral
	}
}

// DetectFormality compares formal and informal word counts.
func DetectFormality(text string) types.Formality {
	formal, informal := registerCounts(strings.ToLower(text))
	switch {
	case formal > informal:
		return types.FormalityHigh
	case informal > formal:
		return types.FormalityLow
	default:
		return types.FormalityMedium
	}
}

func registerCounts(lower string) (formal, informal int) {
	for _, w := range FormalWords {
		if utils.ContainsWord(lower, w) {
			formal++
		}
	}
	for _, w := range InformalWords {
		if utils.ContainsWord(lower, w) {
			informal++
		}
	}
	return formal, informal
}

// KeywordVector hashes words into a normalized bag-of-words vector.
func KeywordVector(words []string) []float32 {
	vec := make([]float32, VectorDims)
	for _, w := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(strings.ToLower(w)))
		vec[h.Sum32()%VectorDims]++
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}

// Cosine returns the cosine similarity of two equally sized vectors.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

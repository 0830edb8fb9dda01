package emotion

import (
	"strings"

	"github.com/easeaico/oriona/internal/utils"
)

// DetermineSupportLevel classifies the care a reply needs. Crisis wins over
// everything. The level is recomputed for every message, with no memory of
// earlier levels.
func DetermineSupportLevel(text string, state State) SupportLevel {
	switch {
	case IsCrisis(text):
		return SupportCrisis
	case state == StateSad || state == StateAnxious || state == StateAngry:
		return SupportEmotional
	case IsPersonalQuestion(text):
		return SupportPersonal
	default:
		return SupportBasic
	}
}

// Bucket names a family of hand-written support replies.
type Bucket string

const (
	BucketDepression Bucket = "depression"
	BucketAnxiety    Bucket = "anxiety"
	BucketLoneliness Bucket = "loneliness"
	BucketSelfEsteem Bucket = "self_esteem"
	BucketCrisis     Bucket = "crisis"
	BucketGeneral    Bucket = "general"
)

type bucketRule struct {
	bucket Bucket
	words  []string
}

// Checked in order; the first hit wins and general is the fallback.
var bucketRules = []bucketRule{
	{BucketDepression, []string{"deprimido", "triste", "vacío", "sin esperanza"}},
	{BucketAnxiety, []string{"ansioso", "pánico", "preocupado", "nervioso"}},
	{BucketLoneliness, []string{"solo", "nadie me entiende", "no tengo amigos"}},
	{BucketSelfEsteem, []string{"no valgo", "soy un fracaso", "me odio"}},
	{BucketCrisis, []string{"quiero morir", "no quiero vivir", "me quiero lastimar"}},
}

// SupportBucket picks the support reply family for text.
func SupportBucket(text string) Bucket {
	lower := strings.ToLower(text)
	for _, r := range bucketRules {
		if utils.ContainsAny(lower, r.words) {
			return r.bucket
		}
	}
	return BucketGeneral
}

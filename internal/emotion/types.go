// Package emotion classifies the emotional state of an utterance, decides
// how much psychological care a reply needs and renders support replies.
package emotion

// State is the detected emotional state of an utterance.
type State string

const (
	StateSad       State = "sad"
	StateAnxious   State = "anxious"
	StateAngry     State = "angry"
	StateConfused  State = "confused"
	StateHappy     State = "happy"
	StateCalm      State = "calm"
	StateMotivated State = "motivated"
	StateNeutral   State = "neutral"
)

// SupportLevel is how much psychological care a reply must carry.
type SupportLevel string

const (
	SupportBasic     SupportLevel = "basic"
	SupportPersonal  SupportLevel = "personal"
	SupportEmotional SupportLevel = "emotional"
	SupportCrisis    SupportLevel = "crisis"
)

// Tone is the conversational register of an utterance.
type Tone string

const (
	TonePolite       Tone = "polite"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneSerious      Tone = "serious"
	ToneFriendly     Tone = "friendly"
)

// Kind names the rule that produced a reply.
type Kind string

const (
	KindCrisis        Kind = "crisis"
	KindSupport       Kind = "support"
	KindPersonal      Kind = "personal"
	KindEmotional     Kind = "emotional"
	KindPhilosophical Kind = "philosophical"
	KindCasual        Kind = "casual"
	KindGeneral       Kind = "general"
)

// Context is the per-message analysis. It is recomputed for every message.
type Context struct {
	State              State        `json:"state"`
	Tone               Tone         `json:"tone"`
	TopicDepth         int          `json:"topic_depth"`
	PersonalConnection float64      `json:"personal_connection"`
	Support            SupportLevel `json:"support"`
}

package domain

import "errors"

// QuestionID identifies one question of the self-assessment.
type QuestionID string

const (
	QuestionFeeling       QuestionID = "feeling"
	QuestionOverwhelmed   QuestionID = "overwhelmed"
	QuestionEnjoyment     QuestionID = "enjoyment"
	QuestionSleep         QuestionID = "sleep"
	QuestionSocializing   QuestionID = "socializing"
	QuestionConcentration QuestionID = "concentration"
	QuestionAppetite      QuestionID = "appetite"
	QuestionTired         QuestionID = "tired"
	QuestionMoodChanges   QuestionID = "moodChanges"
	QuestionHopeless      QuestionID = "hopeless"
	QuestionReflection    QuestionID = "reflection"
)

// QuestionKind tells how a question is answered.
type QuestionKind string

const (
	KindScale  QuestionKind = "scale"  // integer 1-10
	KindChoice QuestionKind = "choice" // one of Options
	KindText   QuestionKind = "text"   // free text
)

// Question is one entry of the fixed questionnaire.
type Question struct {
	ID      QuestionID   `json:"id"`
	Prompt  string       `json:"question"`
	Kind    QuestionKind `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// Answer holds the value given to a question. Scale is used by scale
// questions, Text by choice and free-text questions.
type Answer struct {
	Scale int    `json:"scale,omitempty"`
	Text  string `json:"text,omitempty"`
}

func ScaleAnswer(n int) Answer     { return Answer{Scale: n} }
func ChoiceAnswer(s string) Answer { return Answer{Text: s} }
func TextAnswer(s string) Answer   { return Answer{Text: s} }

var ErrResponseComplete = errors.New("questionnaire response is complete")

// QuestionnaireResponse collects answers keyed by question. It is built one
// answer at a time and frozen once the assessment is complete.
type QuestionnaireResponse struct {
	answers map[QuestionID]Answer
	frozen  bool
}

func NewQuestionnaireResponse() *QuestionnaireResponse {
	return &QuestionnaireResponse{answers: make(map[QuestionID]Answer)}
}

// Set records the answer for id. It fails once the response is frozen.
func (r *QuestionnaireResponse) Set(id QuestionID, a Answer) error {
	if r.frozen {
		return ErrResponseComplete
	}
	if r.answers == nil {
		r.answers = make(map[QuestionID]Answer)
	}
	r.answers[id] = a
	return nil
}

// Get returns the answer for id, if any. A nil response has no answers.
func (r *QuestionnaireResponse) Get(id QuestionID) (Answer, bool) {
	if r == nil {
		return Answer{}, false
	}
	a, ok := r.answers[id]
	return a, ok
}

func (r *QuestionnaireResponse) Len() int {
	if r == nil {
		return 0
	}
	return len(r.answers)
}

func (r *QuestionnaireResponse) Freeze()      { r.frozen = true }
func (r *QuestionnaireResponse) Frozen() bool { return r.frozen }

// Tier is a self-assessment outcome, ordered from least to most severe.
type Tier int

const (
	TierBalanced Tier = iota
	TierMildlyStressed
	TierFatigued
	TierHighlyAnxious
	TierAtRisk
)

func (t Tier) String() string {
	switch t {
	case TierBalanced:
		return "balanced"
	case TierMildlyStressed:
		return "mildly_stressed"
	case TierFatigued:
		return "fatigued"
	case TierHighlyAnxious:
		return "highly_anxious"
	case TierAtRisk:
		return "at_risk"
	default:
		return "unknown"
	}
}

// ScoreResult is derived from a response and never stored.
type ScoreResult struct {
	Total    int
	Tier     Tier
	Title    string
	Guidance string
}

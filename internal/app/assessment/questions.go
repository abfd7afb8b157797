package assessment

import "github.com/PabloGalante/mindmesh/internal/domain"

// Intro is shown before the first question.
const Intro = "Hi there, this is a quick and private mental health check-in. " +
	"These questions are designed to help you reflect on how you're doing emotionally and mentally. Ready to begin?"

var questions = []domain.Question{
	{
		ID:     domain.QuestionFeeling,
		Prompt: "On a scale of 1 to 10, how have you been feeling mentally in the past week?",
		Kind:   domain.KindScale,
	},
	{
		ID:      domain.QuestionOverwhelmed,
		Prompt:  "How often have you felt overwhelmed or anxious in the last 7 days?",
		Kind:    domain.KindChoice,
		Options: []string{"Never", "Occasionally", "Frequently", "Almost all the time"},
	},
	{
		ID:      domain.QuestionEnjoyment,
		Prompt:  "Do you find it hard to enjoy things you once loved?",
		Kind:    domain.KindChoice,
		Options: []string{"Yes", "No", "Not sure"},
	},
	{
		ID:      domain.QuestionSleep,
		Prompt:  "How well are you sleeping these days?",
		Kind:    domain.KindChoice,
		Options: []string{"Great", "Okay", "Poor", "Very disturbed or inconsistent"},
	},
	{
		ID:      domain.QuestionSocializing,
		Prompt:  "Have you been socializing with friends/family or isolating more lately?",
		Kind:    domain.KindChoice,
		Options: []string{"Socializing actively", "Somewhat social", "Mostly isolated"},
	},
	{
		ID:      domain.QuestionConcentration,
		Prompt:  "Do you find it hard to concentrate or stay focused on tasks?",
		Kind:    domain.KindChoice,
		Options: []string{"Not at all", "Sometimes", "Often", "Very frequently"},
	},
	{
		ID:      domain.QuestionAppetite,
		Prompt:  "How is your appetite these days?",
		Kind:    domain.KindChoice,
		Options: []string{"Normal", "Increased", "Decreased", "Not eating properly at all"},
	},
	{
		ID:      domain.QuestionTired,
		Prompt:  "Have you been feeling physically tired or low on energy lately, even without much activity?",
		Kind:    domain.KindChoice,
		Options: []string{"Yes", "No", "Not sure"},
	},
	{
		ID:      domain.QuestionMoodChanges,
		Prompt:  "Have you experienced sudden mood changes or emotional outbursts recently?",
		Kind:    domain.KindChoice,
		Options: []string{"Yes", "No"},
	},
	{
		ID:      domain.QuestionHopeless,
		Prompt:  "Have you had thoughts of giving up or feeling hopeless?",
		Kind:    domain.KindChoice,
		Options: []string{"Never", "Sometimes", "Frequently", "Prefer not to say"},
	},
	{
		ID:     domain.QuestionReflection,
		Prompt: "If you'd like to share, describe in a few words what's been on your mind most these days.",
		Kind:   domain.KindText,
	},
}

// Questions returns the questionnaire in the order it is asked.
// The returned slice is a copy.
func Questions() []domain.Question {
	out := make([]domain.Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// QuestionByID looks up a question of the catalog.
func QuestionByID(id domain.QuestionID) (domain.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Question{}, false
}

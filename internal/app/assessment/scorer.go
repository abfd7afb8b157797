package assessment

import (
	"slices"

	"github.com/PabloGalante/mindmesh/internal/domain"
)

const defaultFeeling = 5

// Severity ranks. The position of an answer in its list is its weight.
// enjoyment ranks "Yes" highest even though it is the healthy answer; kept
// as-is so results match the published check-in.
var (
	overwhelmedRanks   = []string{"Never", "Occasionally", "Frequently", "Almost all the time"}
	enjoymentRanks     = []string{"No", "Not sure", "Yes"}
	sleepRanks         = []string{"Great", "Okay", "Poor", "Very disturbed or inconsistent"}
	socializingRanks   = []string{"Socializing actively", "Somewhat social", "Mostly isolated"}
	concentrationRanks = []string{"Not at all", "Sometimes", "Often", "Very frequently"}
	hopelessRanks      = []string{"Never", "Sometimes", "Frequently", "Prefer not to say"}
)

type tierInfo struct {
	tier     domain.Tier
	below    int // exclusive upper bound of the total
	title    string
	guidance string
}

// tiers are evaluated in order; the last one has no upper bound.
var tiers = []tierInfo{
	{domain.TierBalanced, 10, "Mentally Balanced",
		"You're doing relatively well mentally. Keep doing what works for you, and always check in with yourself regularly."},
	{domain.TierMildlyStressed, 20, "Mildly Stressed",
		"You're experiencing normal stress that many go through. Try some deep breaths, a break, or a walk outside."},
	{domain.TierFatigued, 30, "Mentally Fatigued",
		"You're likely tired emotionally. Consider journaling, sleeping well, and talking to someone close."},
	{domain.TierHighlyAnxious, 40, "Highly Anxious",
		"You may be dealing with strong anxiety. Try grounding exercises and, if needed, talk to a professional."},
	{domain.TierAtRisk, 0, "At Risk of Burnout/Depression",
		"Your responses suggest signs of burnout or depression. You're not alone—seeking support is a strong step."},
}

// Score computes the result for a complete or partial response.
// Missing answers count as the least severe option; a missing or out of
// range feeling counts as 5.
func Score(r *domain.QuestionnaireResponse) domain.ScoreResult {
	total := Total(r)
	info := tierFor(total)
	return domain.ScoreResult{
		Total:    total,
		Tier:     info.tier,
		Title:    info.title,
		Guidance: info.guidance,
	}
}

// Total returns the weighted severity sum of r.
func Total(r *domain.QuestionnaireResponse) int {
	return (10 - feeling(r)) +
		rank(r, domain.QuestionOverwhelmed, overwhelmedRanks)*2 +
		rank(r, domain.QuestionEnjoyment, enjoymentRanks)*2 +
		rank(r, domain.QuestionSleep, sleepRanks)*2 +
		rank(r, domain.QuestionSocializing, socializingRanks)*2 +
		rank(r, domain.QuestionConcentration, concentrationRanks)*2 +
		rank(r, domain.QuestionHopeless, hopelessRanks)*3
}

// TierFor maps a total to its tier.
func TierFor(total int) domain.Tier {
	return tierFor(total).tier
}

// Guidance returns the title and guidance text of t.
func Guidance(t domain.Tier) (title, text string) {
	for _, info := range tiers {
		if info.tier == t {
			return info.title, info.guidance
		}
	}
	return "", ""
}

func tierFor(total int) tierInfo {
	for _, info := range tiers[:len(tiers)-1] {
		if total < info.below {
			return info
		}
	}
	return tiers[len(tiers)-1]
}

func feeling(r *domain.QuestionnaireResponse) int {
	a, ok := r.Get(domain.QuestionFeeling)
	if !ok || a.Scale < 1 || a.Scale > 10 {
		return defaultFeeling
	}
	return a.Scale
}

func rank(r *domain.QuestionnaireResponse, id domain.QuestionID, options []string) int {
	a, ok := r.Get(id)
	if !ok {
		return 0
	}
	if i := slices.Index(options, a.Text); i >= 0 {
		return i
	}
	return 0
}

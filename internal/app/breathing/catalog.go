package breathing

import (
	"errors"

	"github.com/PabloGalante/mindmesh/internal/domain"
)

var ErrUnknownTechnique = errors.New("unknown breathing technique")

var techniques = []domain.Technique{
	{
		ID:          "4-7-8",
		Name:        "4-7-8 Breathing",
		Description: "Reduces anxiety and helps with sleep. Inhale for 4, hold for 7, exhale for 8.",
		Inhale:      4,
		Hold:        7,
		Exhale:      8,
	},
	{
		ID:              "box",
		Name:            "Box Breathing",
		Description:     "Used by Navy SEALs for calm and focus. Equal counts of 4 for inhale, hold, exhale, and hold.",
		Inhale:          4,
		Hold:            4,
		Exhale:          4,
		HoldAfterExhale: 4,
	},
	{
		ID:          "relaxing",
		Name:        "Relaxing Breath",
		Description: "Simple calming breath. Long inhale, longer exhale to activate the parasympathetic system.",
		Inhale:      4,
		Exhale:      6,
	},
}

// Techniques returns the preset catalog.
func Techniques() []domain.Technique {
	return append([]domain.Technique(nil), techniques...)
}

// Lookup finds a preset by id.
func Lookup(id string) (domain.Technique, error) {
	for _, t := range techniques {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Technique{}, ErrUnknownTechnique
}

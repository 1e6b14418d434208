// This file implements TemplateReflector, a deterministic stand-in for an
// LLM-backed reflection generator. The HTTP layer depends only on the
// Reflector interface, so a real generator can be swapped in later.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/reflecta-app/reflecta/internal/server/models"
)

// TemplateReflector composes a reflection from the entry's mood, energy and
// stress levels using fixed phrasing.
type TemplateReflector struct{}

func NewTemplateReflector() *TemplateReflector {
	return &TemplateReflector{}
}

func (r *TemplateReflector) Reflect(_ context.Context, entry *models.Entry) (string, error) {
	var parts []string

	switch {
	case entry.MoodLevel >= 8:
		parts = append(parts, "Sounds like a genuinely good day.")
	case entry.MoodLevel <= 3:
		parts = append(parts, "That reads like a rough day; be kind to yourself.")
	default:
		parts = append(parts, "Thanks for taking a moment to check in.")
	}

	if entry.StressLevel >= 7 {
		parts = append(parts, "Your stress has been running high lately; a short break might help.")
	}
	if entry.EnergyLevel <= 3 {
		parts = append(parts, "Low energy can be a signal to slow down.")
	}
	if entry.SleepHours != nil && *entry.SleepHours < 6 {
		parts = append(parts, fmt.Sprintf("You logged %.1f hours of sleep; an earlier night could make tomorrow easier.", *entry.SleepHours))
	}

	return strings.Join(parts, " "), nil
}

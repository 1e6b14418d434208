package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/reflecta-app/reflecta/internal/server/models"
)

type authRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type authResponse struct {
	Token string `json:"token"`
}

type createEntryRequest struct {
	Content     string   `json:"content" validate:"required"`
	MoodLevel   int      `json:"mood_level" validate:"required,min=1,max=10"`
	EnergyLevel int      `json:"energy_level" validate:"required,min=1,max=10"`
	StressLevel int      `json:"stress_level" validate:"required,min=1,max=10"`
	SleepHours  *float64 `json:"sleep_hours" validate:"omitempty,gte=0,lte=24"`
	WorkHours   *float64 `json:"work_hours" validate:"omitempty,gte=0,lte=24"`
	Tags        []string `json:"tags"`
	Activities  []string `json:"activities"`
}

func (r *createEntryRequest) toModel() *models.Entry {
	return &models.Entry{
		Content:     r.Content,
		MoodLevel:   r.MoodLevel,
		EnergyLevel: r.EnergyLevel,
		StressLevel: r.StressLevel,
		SleepHours:  r.SleepHours,
		WorkHours:   r.WorkHours,
		Tags:        r.Tags,
		Activities:  r.Activities,
	}
}

type listResponse struct {
	Entries  []*models.Entry `json:"entries"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

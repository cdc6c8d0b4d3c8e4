package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/abhisek/mathdrop/internal/answer"
	"github.com/abhisek/mathdrop/internal/mathgen"
	"github.com/abhisek/mathdrop/internal/store"
)

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	Input    string `json:"input"`
	Expected string `json:"expected" validate:"required"`
}

// EventRequest is the body of POST /api/events.
type EventRequest struct {
	EventType string          `json:"event_type" validate:"required,oneof=game_start game_end correct_answer wrong_answer level_up equation_spawned equation_missed pause resume"`
	DeviceID  string          `json:"device_id" validate:"omitempty,uuid"`
	SessionID string          `json:"session_id"`
	Grade     int             `json:"grade" validate:"omitempty,gte=2,lte=5"`
	Level     int             `json:"level" validate:"gte=0"`
	Score     int             `json:"score" validate:"gte=0"`
	Data      store.EventData `json:"data"`
}

// HighScoreRequest is the body of POST /api/highscores.
type HighScoreRequest struct {
	PlayerName      string  `json:"player_name" validate:"required,max=20"`
	Score           int     `json:"score" validate:"gte=0"`
	Grade           int     `json:"grade" validate:"gte=2,lte=5"`
	Level           int     `json:"level" validate:"gte=1"`
	CorrectAnswers  int     `json:"correct_answers" validate:"gte=0"`
	WrongAnswers    int     `json:"wrong_answers" validate:"gte=0"`
	Accuracy        float64 `json:"accuracy" validate:"gte=0,lte=100"`
	SessionDuration int     `json:"session_duration" validate:"gte=0"`
	DeviceID        string  `json:"device_id" validate:"omitempty,uuid"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// GenerateEquations handles GET /api/equations.
func (h *Handler) GenerateEquations(w http.ResponseWriter, r *http.Request) {
	grade, err := intParam(r, "grade", mathgen.MinGrade)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	level, err := intParam(r, "level", 1)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	count, err := intParam(r, "count", DefaultEquationCount)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if count < 1 || count > MaxEquationCount {
		RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("count must be between 1 and %d", MaxEquationCount))
		return
	}

	gen := h.newGenerator(grade, level)
	equations := make([]mathgen.Equation, count)
	for i := range equations {
		equations[i] = gen.Generate()
	}
	RespondWithJSON(w, r, http.StatusOK, equations)
}

// ValidateAnswer handles POST /api/validate.
func (h *Handler) ValidateAnswer(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	RespondWithJSON(w, r, http.StatusOK, answer.Validate(req.Input, req.Expected))
}

// RecordEvent handles POST /api/events.
func (h *Handler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ev := store.GameEvent{
		Type:      req.EventType,
		DeviceID:  req.DeviceID,
		SessionID: req.SessionID,
		Grade:     req.Grade,
		Level:     req.Level,
		Score:     req.Score,
		Data:      req.Data,
	}
	if err := h.events.Append(r.Context(), &ev); err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to record event", err)
		return
	}
	RespondWithJSON(w, r, http.StatusCreated, ev)
}

// SaveHighScore handles POST /api/highscores.
func (h *Handler) SaveHighScore(w http.ResponseWriter, r *http.Request) {
	var req HighScoreRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	hs := store.HighScore{
		PlayerName:      req.PlayerName,
		Score:           req.Score,
		Grade:           req.Grade,
		Level:           req.Level,
		CorrectAnswers:  req.CorrectAnswers,
		WrongAnswers:    req.WrongAnswers,
		Accuracy:        req.Accuracy,
		SessionDuration: req.SessionDuration,
		DeviceID:        req.DeviceID,
	}
	if err := h.scores.Save(r.Context(), &hs); err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to save high score", err)
		return
	}
	RespondWithJSON(w, r, http.StatusCreated, hs)
}

// Leaderboard handles GET /api/leaderboard.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	grade, err := intParam(r, "grade", 0)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if grade != 0 && (grade < mathgen.MinGrade || grade > mathgen.MaxGrade) {
		RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("grade must be between %d and %d", mathgen.MinGrade, mathgen.MaxGrade))
		return
	}
	limit, err := intParam(r, "limit", DefaultLeaderboard)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if limit < 1 || limit > MaxLeaderboard {
		RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("limit must be between 1 and %d", MaxLeaderboard))
		return
	}

	scores, err := h.scores.Leaderboard(r.Context(), grade, limit)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to load leaderboard", err)
		return
	}
	if scores == nil {
		scores = []store.HighScore{}
	}
	RespondWithJSON(w, r, http.StatusOK, scores)
}

// intParam reads an integer query parameter, returning def when absent.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

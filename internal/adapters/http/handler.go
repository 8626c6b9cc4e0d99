package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/IgorKammerGrahl/MoodTrack/internal/app/assessment"
	authapp "github.com/IgorKammerGrahl/MoodTrack/internal/app/auth"
	chatapp "github.com/IgorKammerGrahl/MoodTrack/internal/app/chat"
	moodapp "github.com/IgorKammerGrahl/MoodTrack/internal/app/mood"
	"github.com/IgorKammerGrahl/MoodTrack/internal/app/reflection"
	"github.com/IgorKammerGrahl/MoodTrack/internal/app/suggestion"
	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

type Server struct {
	auth         *authapp.Service
	moods        *moodapp.Service
	chat         *chatapp.Service
	suggestions  *suggestion.Engine
	orchestrator *reflection.Orchestrator

	authLimiter    *keyedLimiter
	aiLimiter      *keyedLimiter
	generalLimiter *keyedLimiter
}

func NewServer(
	auth *authapp.Service,
	moods *moodapp.Service,
	chat *chatapp.Service,
	suggestions *suggestion.Engine,
	orchestrator *reflection.Orchestrator,
) http.Handler {
	s := &Server{
		auth:         auth,
		moods:        moods,
		chat:         chat,
		suggestions:  suggestions,
		orchestrator: orchestrator,

		// Same windows as before: auth 5, AI 20, general 100 per 15 min.
		authLimiter:    newKeyedLimiter(5, 15*time.Minute),
		aiLimiter:      newKeyedLimiter(20, 15*time.Minute),
		generalLimiter: newKeyedLimiter(100, 15*time.Minute),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/healthz", s.handleHealth)

	mux.HandleFunc("/auth/register", s.handleRegister)
	mux.HandleFunc("/auth/login", s.handleLogin)

	// /api/mood           → GET: list, POST: create
	// /api/mood/questions → GET: assessment catalog
	// /api/mood/{id}      → GET: one entry (clients poll reflection here)
	mux.HandleFunc("/api/mood", s.handleMoods)
	mux.HandleFunc("/api/mood/", s.handleMoodWithPath)

	mux.HandleFunc("/api/ai/chat", s.handleChat)
	mux.HandleFunc("/api/ai/reflection", s.handleReflection)
	mux.HandleFunc("/api/ai/suggestion", s.handleSuggestion)

	return chainMiddlewares(mux, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type createMoodRequest struct {
	MoodLevel         int            `json:"mood_level"`
	Emoji             string         `json:"emoji"`
	Color             string         `json:"color"`
	Note              string         `json:"note,omitempty"`
	ContextualAnswers map[string]any `json:"contextual_answers,omitempty"`
	Date              *time.Time     `json:"date,omitempty"`
}

type chatRequest struct {
	Message    string `json:"message"`
	RecentMood int    `json:"recent_mood,omitempty"`
}

type reflectionRequest struct {
	MoodLevel         int            `json:"mood_level"`
	ContextualAnswers map[string]any `json:"contextual_answers,omitempty"`
	Note              string         `json:"note,omitempty"`
}

type suggestionRequest struct {
	MoodLevel int            `json:"mood_level"`
	Answers   map[string]any `json:"answers,omitempty"`
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("MoodTrack API is running"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─────────────────────────────────────────────
// Auth
// ─────────────────────────────────────────────

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.authLimiter.check(w, r.RemoteAddr) {
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	creds, err := s.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "User already exists"})
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{User: creds.User, Token: creds.Token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.authLimiter.check(w, r.RemoteAddr) {
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	creds, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authapp.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{User: creds.User, Token: creds.Token})
}

// ─────────────────────────────────────────────
// Moods
// ─────────────────────────────────────────────

func (s *Server) handleMoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if !s.generalLimiter.check(w, string(userID)) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleListMoods(w, r, userID)
	case http.MethodPost:
		s.handleCreateMood(w, r, userID)
	default:
		methodNotAllowed(w)
	}
}

// /api/mood/questions or /api/mood/{id}
func (s *Server) handleMoodWithPath(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/mood/")
	if path == "" || strings.Contains(path, "/") {
		http.NotFound(w, r)
		return
	}

	if path == "questions" {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		writeJSON(w, http.StatusOK, assessment.DailyQuestions)
		return
	}

	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if !s.generalLimiter.check(w, string(userID)) {
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	entry, err := s.moods.GetEntry(r.Context(), userID, domain.EntryID(path))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	entries, err := s.moods.ListEntries(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	if entries == nil {
		entries = []*domain.MoodEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateMood(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	var req createMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	in := moodapp.CreateEntryInput{
		UserID:            userID,
		MoodLevel:         req.MoodLevel,
		Emoji:             req.Emoji,
		Color:             req.Color,
		Note:              req.Note,
		ContextualAnswers: req.ContextualAnswers,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	entry, err := s.moods.CreateEntry(r.Context(), in)
	if err != nil {
		if errors.Is(err, moodapp.ErrInvalidMoodLevel) {
			badRequest(w, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	// Returned before the reflection finishes: status is pending and
	// clients poll GET /api/mood/{id} for the final text.
	writeJSON(w, http.StatusCreated, entry)
}

// ─────────────────────────────────────────────
// AI
// ─────────────────────────────────────────────

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if !s.aiLimiter.check(w, string(userID)) {
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		badRequest(w, "message is required")
		return
	}

	response := s.chat.Respond(r.Context(), req.Message, req.RecentMood)
	writeJSON(w, http.StatusOK, map[string]string{"response": response})
}

func (s *Server) handleReflection(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if !s.aiLimiter.check(w, string(userID)) {
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req reflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	text := s.orchestrator.Generate(r.Context(), domain.ReflectionRequest{
		MoodLevel:         req.MoodLevel,
		ContextualAnswers: req.ContextualAnswers,
		Note:              req.Note,
	})

	writeJSON(w, http.StatusOK, map[string]string{"reflection": text})
}

func (s *Server) handleSuggestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if !s.aiLimiter.check(w, string(userID)) {
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out := s.suggestions.Generate(suggestion.Context{
		MoodLevel: req.MoodLevel,
		Answers:   req.Answers,
	})
	writeJSON(w, http.StatusOK, out)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "missing bearer token"})
		return "", false
	}

	userID, err := s.auth.VerifyToken(token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return "", false
	}

	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	quizai "github.com/NgxAD/quizz-ai-be"
)

type Server struct {
	store     *quizai.Store
	generator *quizai.Generator
	sessions  *sessions.CookieStore
	logger    *zap.Logger
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to yaml config file")
		dev        = flag.Bool("dev", false, "Enable development logging")
	)
	flag.Parse()

	logger, err := quizai.NewLogger(*dev)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := quizai.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := quizai.OpenStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("session_secret not configured, sessions will not survive restarts")
	}

	srv := &Server{
		store: store,
		generator: quizai.NewGenerator(cfg.APIKey,
			append(cfg.GeneratorOptions(), quizai.WithLogger(logger))...),
		sessions: sessions.NewCookieStore([]byte(secret)),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /exams/extract-from-text", srv.handleExtractFromText)
	mux.HandleFunc("POST /exams/create-from-text", srv.handleCreateFromText)
	mux.HandleFunc("POST /exams/{id}/publish", srv.handlePublish)
	mux.HandleFunc("POST /questions/generate", srv.handleGenerate)
	mux.HandleFunc("GET /exams", srv.handleListExams)
	mux.HandleFunc("GET /exams/{id}", srv.handleGetExam)

	logger.Info("starting server", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// userID returns the caller's session identity, minting one on first visit.
func (s *Server) userID(w http.ResponseWriter, r *http.Request) string {
	session, _ := s.sessions.Get(r, "quizai-session")
	id, ok := session.Values["user_id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		session.Values["user_id"] = id
		session.Save(r, w)
	}
	return id
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// handleExtractFromText parses questions out of pasted text without storing
// anything, so the user can review and edit before creating an exam.
func (s *Server) handleExtractFromText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		s.writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	questions, err := quizai.ExtractQuestions(body.Text)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"questionsFound": len(questions),
		"questions":      questions,
	})
}

// handleCreateFromText extracts questions from pasted text and stores them as
// a new draft exam in one step.
func (s *Server) handleCreateFromText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Text        string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		s.writeError(w, http.StatusBadRequest, "Text is required")
		return
	}
	if body.Title == "" {
		s.writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	questions, err := quizai.ExtractQuestions(body.Text)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz, err := s.store.CreateQuizFromExtracted(body.Title, body.Description, s.userID(w, r), questions)
	if err != nil {
		s.logger.Error("failed to store exam", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to store exam")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"quizId":         quiz.ID,
		"questionsFound": len(questions),
	})
}

// handleGenerate runs the two-stage AI generation and stores the validated
// drafts as a pending-review quiz.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req quizai.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	drafts, err := s.generator.GenerateQuestions(r.Context(), req)
	if err != nil {
		var malformed *quizai.MalformedReplyError
		if errors.As(err, &malformed) {
			s.logger.Error("model reply unrecoverable", zap.Error(err))
			s.writeError(w, http.StatusBadGateway, malformed.Error())
			return
		}
		s.logger.Error("generation failed", zap.Error(err))
		s.writeError(w, http.StatusBadGateway, "AI service unavailable - "+err.Error())
		return
	}

	quiz, err := s.store.CreateQuizFromDrafts(s.userID(w, r), drafts)
	if err != nil {
		s.logger.Error("failed to store drafts", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to store questions")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Đã sinh câu hỏi thành công",
		"count":     len(drafts),
		"quizId":    quiz.ID,
		"quizTitle": quiz.Title,
		"questions": drafts,
		"status":    "pending_review",
	})
}

func (s *Server) handleListExams(w http.ResponseWriter, r *http.Request) {
	quizzes, err := s.store.ListQuizzes(50)
	if err != nil {
		s.logger.Error("failed to list exams", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to list exams")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"quizzes": quizzes,
	})
}

func (s *Server) handleGetExam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	quiz, err := s.store.GetQuiz(id)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	questions, err := s.store.GetQuestions(id)
	if err != nil {
		s.logger.Error("failed to get questions", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to get questions")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"quiz":      quiz,
		"questions": questions,
	})
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if err := s.store.PublishQuiz(r.PathValue("id")); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

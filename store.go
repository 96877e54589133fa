package quizai

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store is the persistence collaborator. The extraction and generation
// pipelines hand it finished records; it assigns durable identity and owns
// nothing about how those records were produced.
type Store struct {
	db *sql.DB
}

// StoredQuiz is a quiz row.
type StoredQuiz struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedBy      string    `json:"created_by"`
	TotalQuestions int       `json:"total_questions"`
	IsPublished    bool      `json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
}

// StoredQuestion is a question row. Options holds a JSON array of
// DraftOption; CorrectAnswer holds the answer letter or free-form answer for
// non-choice types.
type StoredQuestion struct {
	ID            string `json:"id"`
	QuizID        string `json:"quiz_id"`
	Content       string `json:"content"`
	Type          string `json:"type"`
	Options       string `json:"options"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Level         string `json:"level"`
	Points        int    `json:"points"`
	QuestionOrder int    `json:"question_order"`
	IsActive      bool   `json:"is_active"`
}

// OpenStore opens the sqlite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Init creates the tables if they don't exist.
func (s *Store) Init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS quizzes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			created_by TEXT NOT NULL,
			total_questions INTEGER NOT NULL DEFAULT 0,
			is_published INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			quiz_id TEXT NOT NULL,
			content TEXT NOT NULL,
			type TEXT NOT NULL,
			options TEXT NOT NULL,
			correct_answer TEXT,
			explanation TEXT,
			level TEXT NOT NULL DEFAULT 'medium',
			points INTEGER NOT NULL DEFAULT 1,
			question_order INTEGER NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (quiz_id) REFERENCES quizzes(id)
		)`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute %s: %w", query, err)
		}
	}
	return nil
}

// CreateQuizFromExtracted stores a quiz built from extracted questions. The
// answer index is clamped into the option range here, at the durability
// boundary, because the section-based parser passes it through unclamped.
func (s *Store) CreateQuizFromExtracted(title, description, createdBy string, questions []ExtractedQuestion) (*StoredQuiz, error) {
	quiz := &StoredQuiz{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		CreatedBy:      createdBy,
		TotalQuestions: len(questions),
		CreatedAt:      time.Now(),
	}
	if err := s.insertQuiz(quiz); err != nil {
		return nil, err
	}

	for i, q := range questions {
		correct := clampIndex(q.CorrectAnswer, len(q.Options))
		opts := make([]DraftOption, len(q.Options))
		for j, text := range q.Options {
			opts[j] = DraftOption{Text: text, IsCorrect: j == correct}
		}
		optionsJSON, err := json.Marshal(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal options: %w", err)
		}

		row := &StoredQuestion{
			ID:            uuid.NewString(),
			QuizID:        quiz.ID,
			Content:       q.Content,
			Type:          strings.ToLower(string(q.Type)),
			Options:       string(optionsJSON),
			Level:         string(LevelMedium),
			Points:        PointsForLevel(LevelMedium),
			QuestionOrder: i,
			IsActive:      true,
		}
		if err := s.insertQuestion(row); err != nil {
			return nil, err
		}
	}
	return quiz, nil
}

// CreateQuizFromDrafts stores AI drafts as a new pending-review quiz. The
// questions stay inactive until a teacher reviews them; points follow the
// per-level defaults.
func (s *Store) CreateQuizFromDrafts(createdBy string, drafts []AIQuestionDraft) (*StoredQuiz, error) {
	quiz := &StoredQuiz{
		ID:             uuid.NewString(),
		Title:          fmt.Sprintf("Đề thi (%s)", time.Now().Format("02/01/2006 15:04:05")),
		Description:    "Đề thi được tạo bằng AI",
		CreatedBy:      createdBy,
		TotalQuestions: len(drafts),
		CreatedAt:      time.Now(),
	}
	if err := s.insertQuiz(quiz); err != nil {
		return nil, err
	}

	for i, d := range drafts {
		optionsJSON, err := json.Marshal(d.Options)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal options: %w", err)
		}

		row := &StoredQuestion{
			ID:            uuid.NewString(),
			QuizID:        quiz.ID,
			Content:       d.Question,
			Type:          d.Type,
			Options:       string(optionsJSON),
			CorrectAnswer: d.CorrectAnswer,
			Explanation:   d.Explanation,
			Level:         string(d.Level),
			Points:        PointsForLevel(d.Level),
			QuestionOrder: i,
			IsActive:      false,
		}
		if err := s.insertQuestion(row); err != nil {
			return nil, err
		}
	}
	return quiz, nil
}

func (s *Store) insertQuiz(quiz *StoredQuiz) error {
	_, err := s.db.Exec(
		"INSERT INTO quizzes (id, title, description, created_by, total_questions, is_published, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		quiz.ID, quiz.Title, quiz.Description, quiz.CreatedBy, quiz.TotalQuestions, quiz.IsPublished, quiz.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

func (s *Store) insertQuestion(q *StoredQuestion) error {
	_, err := s.db.Exec(
		"INSERT INTO questions (id, quiz_id, content, type, options, correct_answer, explanation, level, points, question_order, is_active) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		q.ID, q.QuizID, q.Content, q.Type, q.Options, q.CorrectAnswer, q.Explanation, q.Level, q.Points, q.QuestionOrder, q.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetQuiz retrieves a quiz by ID.
func (s *Store) GetQuiz(id string) (*StoredQuiz, error) {
	var quiz StoredQuiz
	err := s.db.QueryRow(
		"SELECT id, title, description, created_by, total_questions, is_published, created_at FROM quizzes WHERE id = ?",
		id,
	).Scan(&quiz.ID, &quiz.Title, &quiz.Description, &quiz.CreatedBy, &quiz.TotalQuestions, &quiz.IsPublished, &quiz.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("quiz not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return &quiz, nil
}

// GetQuestions retrieves all questions of a quiz in order.
func (s *Store) GetQuestions(quizID string) ([]StoredQuestion, error) {
	rows, err := s.db.Query(
		"SELECT id, quiz_id, content, type, options, correct_answer, explanation, level, points, question_order, is_active FROM questions WHERE quiz_id = ? ORDER BY question_order",
		quizID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	var questions []StoredQuestion
	for rows.Next() {
		var q StoredQuestion
		var correctAnswer, explanation sql.NullString
		err := rows.Scan(&q.ID, &q.QuizID, &q.Content, &q.Type, &q.Options, &correctAnswer, &explanation, &q.Level, &q.Points, &q.QuestionOrder, &q.IsActive)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.CorrectAnswer = correctAnswer.String
		q.Explanation = explanation.String
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}
	return questions, nil
}

// ListQuizzes retrieves quizzes newest first, optionally limited by count.
func (s *Store) ListQuizzes(limit int) ([]StoredQuiz, error) {
	query := "SELECT id, title, description, created_by, total_questions, is_published, created_at FROM quizzes ORDER BY created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []StoredQuiz
	for rows.Next() {
		var quiz StoredQuiz
		err := rows.Scan(&quiz.ID, &quiz.Title, &quiz.Description, &quiz.CreatedBy, &quiz.TotalQuestions, &quiz.IsPublished, &quiz.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quizzes: %w", err)
	}
	return quizzes, nil
}

// PublishQuiz makes a quiz visible to students. A quiz needs at least one
// question to publish.
func (s *Store) PublishQuiz(id string) error {
	quiz, err := s.GetQuiz(id)
	if err != nil {
		return err
	}
	if quiz.TotalQuestions == 0 {
		return fmt.Errorf("quiz must have at least 1 question to publish")
	}
	if _, err := s.db.Exec("UPDATE quizzes SET is_published = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to publish quiz: %w", err)
	}
	return nil
}

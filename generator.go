package quizai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// GroqBaseURL is the OpenAI-compatible endpoint the generator talks to.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the model used for both generation stages.
const DefaultModel = "llama-3.1-8b-instant"

// DefaultRequestTimeout bounds each of the two model calls.
const DefaultRequestTimeout = 60 * time.Second

// chatCompleter is the slice of the OpenAI client the generator needs.
// *openai.Client satisfies it.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator drives the two-stage question generation sequence: stage 1 has
// the model write the test as free prose, stage 2 converts that prose into a
// JSON array. The stages are strictly ordered and never run concurrently;
// the intermediate prose is a first-class value so stage 2 can be exercised
// with canned stage-1 output.
type Generator struct {
	client     chatCompleter
	model      string
	baseURL    string
	timeout    time.Duration
	logger     *zap.Logger
	transcript *Transcript
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = logger }
}

// WithModel overrides the model name.
func WithModel(model string) GeneratorOption {
	return func(g *Generator) { g.model = model }
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) GeneratorOption {
	return func(g *Generator) { g.baseURL = baseURL }
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(timeout time.Duration) GeneratorOption {
	return func(g *Generator) { g.timeout = timeout }
}

// WithTranscript attaches a transcript of the model traffic.
func WithTranscript(t *Transcript) GeneratorOption {
	return func(g *Generator) { g.transcript = t }
}

// withClient substitutes the chat client; used by tests.
func withClient(c chatCompleter) GeneratorOption {
	return func(g *Generator) { g.client = c }
}

// NewGenerator builds a Generator against the Groq endpoint.
func NewGenerator(apiKey string, opts ...GeneratorOption) *Generator {
	g := &Generator{
		model:   DefaultModel,
		baseURL: GroqBaseURL,
		timeout: DefaultRequestTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = g.baseURL
		g.client = openai.NewClientWithConfig(cfg)
	}
	return g
}

// GenerateQuestions resolves the request, runs both stages, recovers the
// stage-2 JSON and returns the validated drafts. Recovering fewer drafts
// than the prompt asked for is a logged warning, not an error: partial
// results are returned as-is. External failures and unrecoverable replies
// propagate.
func (g *Generator) GenerateQuestions(ctx context.Context, req GenerationRequest) ([]AIQuestionDraft, error) {
	prompt := strings.TrimSpace(req.CustomPrompt)
	if prompt == "" {
		return nil, fmt.Errorf("custom prompt is required")
	}

	count := req.RequestedCount
	if count == 0 {
		count = ResolveQuestionCount(prompt)
	}
	if count < MinQuestions {
		count = MinQuestions
	}
	if count > MaxQuestions {
		count = MaxQuestions
	}

	language := req.Language
	if language == "" {
		language = DetectPromptLanguage(prompt)
	}

	g.logger.Info("generating questions",
		zap.Int("count", count),
		zap.String("language", language))

	text, err := g.GenerateText(ctx, prompt, language, count)
	if err != nil {
		return nil, fmt.Errorf("stage 1 (generate text): %w", err)
	}
	g.logger.Info("stage 1 done", zap.Int("text_length", len(text)))

	reply, err := g.ConvertToJSON(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("stage 2 (convert to JSON): %w", err)
	}
	g.logger.Info("stage 2 done", zap.Int("reply_length", len(reply)))

	drafts, err := RecoverDrafts(reply, g.logger)
	if err != nil {
		return nil, err
	}

	drafts = ValidateDrafts(drafts)
	if len(drafts) < count {
		g.logger.Warn("recovered fewer questions than requested",
			zap.Int("recovered", len(drafts)),
			zap.Int("requested", count))
	}
	return drafts, nil
}

// GenerateText is stage 1: the model writes the test in free prose,
// explicitly not JSON.
func (g *Generator) GenerateText(ctx context.Context, prompt, language string, count int) (string, error) {
	content := buildGeneratePrompt(prompt, language, count)
	if g.transcript != nil {
		g.transcript.LogRequest("stage 1", content)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: 0.8,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	text := resp.Choices[0].Message.Content
	if g.transcript != nil {
		g.transcript.LogResponse("stage 1", text)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("model returned empty content")
	}
	return text, nil
}

// ConvertToJSON is stage 2: the stage-1 prose goes back to the model with
// instructions to emit only a JSON array. The raw reply is returned without
// any parsing; RecoverDrafts owns that.
func (g *Generator) ConvertToJSON(ctx context.Context, generatedText string) (string, error) {
	content := buildConvertPrompt(generatedText)
	if g.transcript != nil {
		g.transcript.LogRequest("stage 2", content)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: 0.3,
		MaxTokens:   4000,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	reply := resp.Choices[0].Message.Content
	if g.transcript != nil {
		g.transcript.LogResponse("stage 2", reply)
	}
	return reply, nil
}

func buildGeneratePrompt(customPrompt, language string, count int) string {
	languageName := "Vietnamese"
	if language == "en" {
		languageName = "English"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are an expert teacher. Create a multiple-choice test with **EXACTLY %d questions** based on the following:\n\n", count))
	sb.WriteString(fmt.Sprintf("Topic/Requirement: %s\n\n", customPrompt))
	sb.WriteString("Format (free text, not JSON):\n")
	sb.WriteString(fmt.Sprintf("- Number each question clearly: Question 1:, Question 2:, ... Question %d:\n", count))
	sb.WriteString("- Each question clearly shows the 4 options (A, B, C, D)\n")
	sb.WriteString("- Each question has 1 correct answer\n")
	sb.WriteString("- Include a brief explanation for each question\n")
	sb.WriteString("- Make each question completely different from the others\n")
	sb.WriteString(fmt.Sprintf("- Write the test in %s\n", languageName))
	sb.WriteString(fmt.Sprintf("- CRITICAL: Create EXACTLY %d questions - not less, not more\n\n", count))
	sb.WriteString("Do NOT output JSON. Just write the questions naturally with clear numbering.")
	return sb.String()
}

func buildConvertPrompt(generatedText string) string {
	var sb strings.Builder
	sb.WriteString("Convert the following test content into VALID JSON.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Output ONLY valid JSON array\n")
	sb.WriteString("- No markdown, no code blocks\n")
	sb.WriteString("- Each string must be single-line (escape newlines as \\n)\n")
	sb.WriteString("- Escape all special characters properly\n")
	sb.WriteString("- Level MUST be one of: \"easy\", \"medium\", \"hard\" (NOT elementary, advanced, etc)\n")
	sb.WriteString("- IMPORTANT: Option text MUST include \"A. \", \"B. \", \"C. \", \"D. \" prefix\n")
	sb.WriteString("- correctAnswer MUST be one of: \"A\", \"B\", \"C\", \"D\" (single letter only)\n")
	sb.WriteString("- Array of objects with: question, options, correctAnswer, explanation\n")
	sb.WriteString("- CRITICAL: Return ALL questions from the input. Do not skip any.\n\n")
	sb.WriteString("Target format:\n")
	sb.WriteString(`[
  {
    "question": "Question text here",
    "type": "multiple_choice",
    "level": "easy",
    "options": [
      { "text": "A. Option A", "isCorrect": true },
      { "text": "B. Option B", "isCorrect": false },
      { "text": "C. Option C", "isCorrect": false },
      { "text": "D. Option D", "isCorrect": false }
    ],
    "correctAnswer": "A",
    "explanation": "Explanation text here"
  }
]`)
	sb.WriteString("\n\nCONTENT TO CONVERT:\n<<<\n")
	sb.WriteString(generatedText)
	sb.WriteString("\n>>>\n\nOutput ONLY the JSON array, nothing else.")
	return sb.String()
}

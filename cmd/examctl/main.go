package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	quizai "github.com/NgxAD/quizz-ai-be"
)

func main() {
	app := &cli.App{
		Name:  "examctl",
		Usage: "extract exam questions from text or generate them with AI",
		Commands: []*cli.Command{
			{
				Name:  "extract",
				Usage: "parse questions out of a UTF-8 text file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "text file to parse"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file for question JSON (default: stdout)"},
					&cli.StringFlag{Name: "save-db", Usage: "sqlite path; when set, store the questions as a new exam"},
					&cli.StringFlag{Name: "title", Value: "Imported exam", Usage: "exam title when saving"},
				},
				Action: runExtract,
			},
			{
				Name:  "generate",
				Usage: "generate questions from a free-form prompt",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "prompt", Aliases: []string{"p"}, Required: true, Usage: "generation prompt, e.g. \"tạo 12 câu về động vật\""},
					&cli.StringFlag{Name: "language", Usage: "language hint (vi or en; detected from the prompt when empty)"},
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "yaml config path"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file for draft JSON (default: stdout)"},
					&cli.BoolFlag{Name: "save", Usage: "store the drafts as a pending-review quiz"},
					&cli.BoolFlag{Name: "transcript", Usage: "write an LLM transcript file"},
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "development logging"},
				},
				Action: runGenerate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runExtract(c *cli.Context) error {
	data, err := os.ReadFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	questions, err := quizai.ExtractQuestions(string(data))
	if err != nil {
		return err
	}

	if dbPath := c.String("save-db"); dbPath != "" {
		store, err := quizai.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Init(); err != nil {
			return err
		}
		quiz, err := store.CreateQuizFromExtracted(c.String("title"), "", "examctl", questions)
		if err != nil {
			return err
		}
		fmt.Printf("Stored %d questions as quiz %s\n", len(questions), quiz.ID)
		return nil
	}

	return writeResult(c.String("output"), questions)
}

func runGenerate(c *cli.Context) error {
	logger, err := quizai.NewLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := quizai.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	opts := append(cfg.GeneratorOptions(), quizai.WithLogger(logger))
	if c.Bool("transcript") {
		transcript, err := quizai.NewTranscript(cfg.TranscriptDir, uuid.NewString())
		if err != nil {
			return err
		}
		defer transcript.Close()
		opts = append(opts, quizai.WithTranscript(transcript))
	}

	generator := quizai.NewGenerator(cfg.APIKey, opts...)
	drafts, err := generator.GenerateQuestions(c.Context, quizai.GenerationRequest{
		CustomPrompt: c.String("prompt"),
		Language:     c.String("language"),
	})
	if err != nil {
		return err
	}

	if c.Bool("save") {
		store, err := quizai.OpenStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Init(); err != nil {
			return err
		}
		quiz, err := store.CreateQuizFromDrafts("examctl", drafts)
		if err != nil {
			return err
		}
		logger.Info("stored drafts",
			zap.Int("count", len(drafts)), zap.String("quiz_id", quiz.ID))
		fmt.Printf("Stored %d questions as quiz %s (pending review)\n", len(drafts), quiz.ID)
		return nil
	}

	return writeResult(c.String("output"), drafts)
}

func writeResult(path string, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if path != "" {
		return os.WriteFile(path, output, 0644)
	}
	fmt.Println(string(output))
	return nil
}

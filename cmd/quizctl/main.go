// quizctl runs the quiz generators from a terminal, using the same
// configuration as the API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"topic-quiz/internal/adapter/quizgen"
	"topic-quiz/internal/config"
	"topic-quiz/internal/domain"
	"topic-quiz/internal/llm"
	"topic-quiz/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	var apiKey string

	rootCommand := cobra.Command{
		Use:           "quizctl",
		Short:         "Generate quiz questions and recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&apiKey, "api-key", "", "model API key to use instead of the configured one")

	rootCommand.AddCommand(
		newGenerateCommand(&apiKey),
		newRecommendCommand(&apiKey),
	)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "quizctl: %v\n", err)
		os.Exit(1)
	}
}

func newGenerator(ctx context.Context, apiKey string) (*quizgen.Generator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	providers, err := llm.NewFactory(ctx, cfg.LLM, apiKey != "")
	if err != nil {
		return nil, err
	}
	return quizgen.NewGenerator(providers, cfg.LLM.Temperature), nil
}

func newGenerateCommand(apiKey *string) *cobra.Command {
	var (
		topic string
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a question set for a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" {
				return fmt.Errorf("--topic is required")
			}
			gen, err := newGenerator(cmd.Context(), *apiKey)
			if err != nil {
				return err
			}
			questions, err := gen.GenerateQuestions(cmd.Context(), topic, count, *apiKey)
			if err != nil {
				return err
			}
			return printJSON(questions)
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "quiz topic")
	cmd.Flags().IntVar(&count, "count", domain.QuestionsPerSession, "number of questions")
	return cmd
}

func newRecommendCommand(apiKey *string) *cobra.Command {
	var (
		topic string
		score int
		total int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate learning recommendations for a score",
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" {
				return fmt.Errorf("--topic is required")
			}
			if total <= 0 || score < 0 || score > total {
				return fmt.Errorf("--score must be between 0 and --total (%d)", total)
			}
			gen, err := newGenerator(cmd.Context(), *apiKey)
			if err != nil {
				return err
			}
			percentage := domain.Percentage(score, total)
			tier := domain.TierFor(percentage)
			fmt.Printf("%s: %d/%d (%d%%, %s)\n%s\n\n", topic, score, total, percentage, tier, tier.Message())
			return printJSON(gen.GenerateRecommendations(cmd.Context(), score, total, topic, *apiKey))
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "quiz topic")
	cmd.Flags().IntVar(&score, "score", 0, "number of correct answers")
	cmd.Flags().IntVar(&total, "total", domain.QuestionsPerSession, "number of questions")
	return cmd
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

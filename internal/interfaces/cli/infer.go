package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/CivicDraft/internal/application/inference"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

func newInferCmd(opts *Options) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "infer <text>",
		Short: "Classify a civic issue description",
		Long:  "Runs the full inference pipeline on the given text and prints the\nclassified intent, recommended document type, confidence, and the\ndecision path taken.",
		Args:  cobra.ExactArgs(1),
		Example: `  civicdraft infer "I want to know the status of my ration card application"
  civicdraft infer --language hi -o json "sadak kharab hai"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			svc := inference.NewService(cfg.Inference, nil, nil, nil, nil, nil, nil, nil, logging.NewNopLogger())
			result, err := svc.Run(cmd.Context(), inference.Request{
				Text:     args[0],
				Language: language,
			})
			if err != nil {
				return err
			}

			if opts.Output == "json" {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printInferText(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "en", "input language hint (en, hi, hinglish)")

	return cmd
}

func printInferText(cmd *cobra.Command, r inference.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Intent:        %s", r.Intent)
	if r.SubType != "" {
		fmt.Fprintf(out, " (%s)", r.SubType)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Document:      %s\n", r.DocumentType)
	fmt.Fprintf(out, "Confidence:    %.2f (%s)\n", r.Confidence, r.Level)
	if r.RequiresConfirmation {
		fmt.Fprintln(out, "Confirmation:  recommended before drafting")
	}
	if r.Urgency != "" {
		fmt.Fprintf(out, "Urgency:       %s\n", r.Urgency)
	}
	if len(r.KeyPhrases) > 0 {
		fmt.Fprintf(out, "Key phrases:   %s\n", strings.Join(r.KeyPhrases, ", "))
	}
	if r.Explanation != "" {
		fmt.Fprintf(out, "Explanation:   %s\n", r.Explanation)
	}
	if len(r.DecisionPath) > 0 {
		fmt.Fprintf(out, "Decision path: %s\n", strings.Join(r.DecisionPath, " -> "))
	}
	if len(r.Suggestions) > 0 {
		fmt.Fprintln(out, "Suggestions:")
		for _, s := range r.Suggestions {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
}

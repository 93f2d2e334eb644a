package cli

import (
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var score int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score for this device's player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"score": score}
			var result SubmitResult

			if err := client.Post("/api/scores/submit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Score value (required)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/dose/internal/app"
)

func (c *CLI) newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize <archive>",
		Short: "Rewrite a print-job archive with the minimal pass schedule",
		Long: "Optimize reads a print-job archive, merges and re-schedules each " +
			"layer's exposure passes without changing per-pixel dose, and writes " +
			"a new archive next to the input.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			workers, _ := cmd.Flags().GetInt("workers")
			jsonLogs, _ := cmd.Flags().GetBool("json")

			outputPath, err := c.app.Optimize(cmd.Context(), args[0], app.OptimizeOptions{
				OutputPath: output,
				Workers:    workers,
				JSON:       jsonLogs,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), outputPath)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output archive path (default: input with _optimized suffix)")
	cmd.Flags().IntP("workers", "w", 0, "Layer optimization parallelism (default: number of CPUs)")
	cmd.Flags().Bool("json", false, "Log in JSON format")
	return cmd
}

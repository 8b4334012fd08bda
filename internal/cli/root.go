// Package cli defines the rag command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Samarth-Subramani/RAG-Application/internal/service"
)

// App is what the commands need from the assembled pipeline.
type App interface {
	Populate(ctx context.Context, reset bool) (service.PopulateReport, error)
	Query(ctx context.Context, text string) (service.Answer, error)
	Close() error
}

// Builder assembles an App from the config at configPath.
type Builder func(ctx context.Context, configPath string) (App, error)

// NewRootCommand returns the rag command with populate and query attached.
func NewRootCommand(build Builder) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "rag",
		Short: "Answer questions from a folder of PDFs",
		Long: `rag indexes the PDF files in the configured data directory into a
vector store and answers questions with a hosted language model, grounded
on the most similar chunks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to YAML config file (default ./config.yaml, then ~/.config/rag/config.yaml)")

	root.AddCommand(
		newPopulateCommand(build, &configPath),
		newQueryCommand(build, &configPath),
	)
	return root
}

func withApp(cmd *cobra.Command, build Builder, configPath string, fn func(context.Context, App) error) (err error) {
	ctx := cmd.Context()
	a, err := build(ctx, configPath)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()
	return fn(ctx, a)
}

func newPopulateCommand(build Builder, configPath *string) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Index new PDF chunks into the vector store",
		Long: `Loads every PDF under the data directory, splits pages into chunks and
adds the chunks whose id is not stored yet. Re-running is safe: unchanged
chunks are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, build, *configPath, func(ctx context.Context, a App) error {
				out := cmd.OutOrStdout()
				if reset {
					fmt.Fprintln(out, "Clearing database")
				}
				report, err := a.Populate(ctx, reset)
				if err != nil {
					return fmt.Errorf("populate failed: %w", err)
				}
				fmt.Fprintf(out, "Number of existing documents in DB: %d\n", report.Existing)
				if report.Added > 0 {
					fmt.Fprintf(out, "Adding new documents: %d\n", report.Added)
				} else {
					fmt.Fprintln(out, "No new documents to add")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "clear the vector store before indexing")
	return cmd
}

func newQueryCommand(build Builder, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "query [text]",
		Short: "Answer a question from the indexed chunks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, build, *configPath, func(ctx context.Context, a App) error {
				answer, err := a.Query(ctx, args[0])
				if err != nil {
					return fmt.Errorf("query failed: %w", err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Response: %s\n\n\n\nSources: %s\n", answer.Text, FormatSources(answer.Sources))
				return nil
			})
		},
	}
}

// FormatSources renders chunk ids as "[a, b]".
func FormatSources(ids []string) string {
	return "[" + strings.Join(ids, ", ") + "]"
}

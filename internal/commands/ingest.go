package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/decider"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/ledgerline/ledgerline/internal/importer"
	"github.com/ledgerline/ledgerline/internal/middleware"
)

func newIngestCommand() *cobra.Command {
	var accountID string
	var institute string
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "ingest <statement-file>",
		Short: "Ingest a statement export into an account",
		Long: `Parses an institution's statement export and records every transaction
not already present on the account. Unrecognized counterparties are
categorized interactively on the terminal, or from a rule file when
--rules is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			logger := slog.Default()
			ctx := middleware.AddLoggerToCtx(cmd.Context(), logger)

			application, err := newApp(ctx, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			parser, err := importer.DefaultRegistry().Find(institute, filepath.Base(path))
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening statement file: %w", err)
			}
			defer file.Close()

			batch, err := parser.Parse(file)
			if err != nil {
				return fmt.Errorf("parsing statement: %w", err)
			}

			categoryDecider, err := buildDecider(rulesPath, cmd)
			if err != nil {
				return err
			}

			summary, err := application.services.Ingestion.ProcessBatch(ctx, accountID, batch, categoryDecider)
			if summary != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d, inserted %d, duplicates %d, failed %d\n",
					summary.Parsed, summary.Inserted, summary.Duplicates, summary.Failed)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account id to ingest into (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&institute, "institute", "", "institution key of the export (required)")
	_ = cmd.MarkFlagRequired("institute")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "JSON rule file for non-interactive categorization")

	return cmd
}

// buildDecider picks the categorization fallback: a rule table when a rules
// file is given, the interactive terminal prompt otherwise.
func buildDecider(rulesPath string, cmd *cobra.Command) (portssvc.CategoryDecider, error) {
	if rulesPath == "" {
		return decider.NewTerminalDecider(cmd.InOrStdin(), cmd.OutOrStdout()), nil
	}

	raw, err := os.ReadFile(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var rules []dto.CategoryRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	return decider.NewScriptedDecider(rules), nil
}

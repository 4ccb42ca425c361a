package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twitterverse/ingest"
	"github.com/katalvlaran/twitterverse/query"
)

func (a *app) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query [query-file...]",
		Short: "Answer query files, or one query from stdin",
		Long: `Answer each query file against the data file and print the result
in the query's PRESENT format. With no files, one query is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.database()
			if err != nil {
				return err
			}
			e := a.engine(db, prometheus.NewRegistry())

			if len(args) == 0 {
				spec, err := ingest.ReadQuery(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("stdin: %w", err)
				}
				return a.answer(cmd, e, spec)
			}
			for _, path := range args {
				spec, err := ingest.ReadQueryFile(path)
				if err != nil {
					return err
				}
				if err := a.answer(cmd, e, spec); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			return nil
		},
	}
}

// answer renders spec and writes it to the command's output.
func (a *app) answer(cmd *cobra.Command, e *query.Engine, spec query.Spec) error {
	out, err := e.Render(cmd.Context(), spec)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)

	return err
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twitterverse/present"
)

func (a *app) userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user <handle>",
		Short: "Print one user's profile in long form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.database()
			if err != nil {
				return err
			}
			out, err := present.LongForm(db, []string{args[0]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nightreign-bingo/internal/repository"
	"nightreign-bingo/internal/service"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the generated board file",
		Long: `Reads the board file and fails with exit status 1 at the first problem:

  - the file is missing or is not a list of 25 tasks
  - there is not exactly one task with "center": 1
  - a task name appears twice
  - no nightfarer's tasks are on the board, or tasks of two nightfarers are

The nightfarer rule is skipped with a warning when Nightfarers.json is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := repository.NewBoardFile(a.cfg.Output())
			checker := service.NewCheckService(file, repository.NewPoolFiles(a.cfg.DataDir), a.log)

			res, err := checker.Check(cmd.Context())
			for _, w := range res.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All tests passed!")
			return nil
		},
	}
}

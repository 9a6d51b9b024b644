package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nightreign-bingo/internal/repository"
	"nightreign-bingo/internal/service"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the generated board as a 5x5 grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := repository.NewBoardFile(a.cfg.Output()).Read()
			if err != nil {
				return err
			}
			grid, err := service.RenderBoard(board)
			if err != nil {
				return fmt.Errorf("render board: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), grid)
			return nil
		},
	}
}

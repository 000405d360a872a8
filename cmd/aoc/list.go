package main

import (
	"fmt"

	"github.com/spf13/cobra"

	aoc "github.com/aestallon/advent-of-code-2023"
	"github.com/aestallon/advent-of-code-2023/internal/config"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the solvable days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, day := range aoc.Days() {
				p, err := aoc.Lookup(day)
				if err != nil {
					return err
				}
				printPuzzle(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	configInitCmd = &cobra.Command{
		Use:   "init <path>",
		Short: "Write a config file holding the defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("wrote "+args[0]))
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configInitCmd)
}

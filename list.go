package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goKeyTouch/keymaps"
	"github.com/goKeyTouch/overlay"
)

func NewListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the saved key mappings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := root.cfg
			snap, err := keymaps.NewStore(cfg.MappingFile).Load()
			if err != nil {
				return err
			}

			// Show what a running service would use.
			table := keymaps.NewTable(keymaps.Bounds{Width: cfg.Screen.Width, Height: cfg.Screen.Height})
			table.Replace(snap)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mapping file: %s\n", cfg.MappingFile)
			fmt.Fprintf(out, "Hold behavior: %s\n", table.Policy())
			if table.Len() == 0 {
				fmt.Fprintln(out, "No mappings.")
				return nil
			}
			overlay.WriteTable(out, table.All())
			return nil
		},
	}
}

func NewClearCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved key mapping",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := keymaps.NewStore(root.cfg.MappingFile)
			snap, err := store.Load()
			if err != nil {
				return err
			}
			if err := store.Save(keymaps.Snapshot{Policy: snap.Policy}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d mapping(s) from %s\n", len(snap.Entries), store.Path())
			return nil
		},
	}
}

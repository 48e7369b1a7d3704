package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/goKeyTouch/input"
)

func NewDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the keyboards and mice that can be used",
		RunE: func(cmd *cobra.Command, _ []string) error {
			devices, err := input.FindDevices(nil)
			if err != nil {
				return err
			}
			defer func() {
				for _, d := range devices {
					d.Close()
				}
			}()

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeaderAlignment(tw.AlignLeft),
				tablewriter.WithRowAlignment(tw.AlignLeft),
			)
			table.Header("Path", "Name", "Keyboard", "Mouse")
			for _, d := range devices {
				table.Append([]string{d.Path, d.Name, strconv.FormatBool(d.Keyboard), strconv.FormatBool(d.Mouse)})
			}
			table.Render()
			return nil
		},
	}
}

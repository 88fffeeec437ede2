package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/session"
)

var logsType string

var logsCmd = &cobra.Command{
	Use:   "logs <device-id>",
	Short: "Show recent device logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		dt, err := catlink.ParseDeviceType(logsType)
		if err != nil {
			return err
		}

		runner, err := newRunner()
		if err != nil {
			return err
		}
		sel, err := selectedRegions()
		if err != nil {
			return err
		}

		results, err := session.Run(cmd.Context(), runner, sel,
			func(ctx context.Context, c *catlink.Client) ([]catlink.LogEntry, error) {
				return c.DeviceLogs(ctx, deviceID, dt)
			})
		if err != nil {
			return err
		}

		return report(results, func(prefix string, entries []catlink.LogEntry) {
			if len(entries) == 0 {
				fmt.Printf("%sNo logs found.\n", prefix)
				return
			}
			for _, entry := range entries {
				fmt.Printf("%s  [%s] %s\n", prefix, entry.Timestamp(), entry.Text())
			}
		})
	},
}

func init() {
	logsCmd.Flags().StringVarP(&logsType, "type", "t", string(catlink.DeviceScooper),
		"device type (SCOOPER, LITTER_BOX_599, FEEDER)")
	rootCmd.AddCommand(logsCmd)
}

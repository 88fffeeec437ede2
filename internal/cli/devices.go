package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/session"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List all devices on the account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		runner, err := newRunner()
		if err != nil {
			return err
		}
		sel, err := selectedRegions()
		if err != nil {
			return err
		}

		results, err := session.Run(cmd.Context(), runner, sel,
			func(ctx context.Context, c *catlink.Client) ([]catlink.Device, error) {
				return c.Devices(ctx)
			})
		if err != nil {
			return err
		}

		return report(results, func(prefix string, devices []catlink.Device) {
			if len(devices) == 0 {
				fmt.Printf("%sNo devices found.\n", prefix)
				return
			}
			for _, d := range devices {
				fmt.Printf("%s  [%s] %s  (id=%s, model=%s)\n",
					prefix,
					orDefault(string(d.Type), "unknown"),
					orDefault(d.Name, "unnamed"),
					orDefault(d.Key(), "?"),
					orDefault(d.Model, "?"))
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

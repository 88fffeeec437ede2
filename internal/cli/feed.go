package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
)

var feedPortions int

var feedCmd = &cobra.Command{
	Use:   "feed <device-id>",
	Short: "Dispense food from a feeder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		if feedPortions < 1 {
			return fmt.Errorf("portions must be at least 1, got %d", feedPortions)
		}
		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.FoodOut(ctx, deviceID, catlink.DeviceFeeder, feedPortions)
		}, fmt.Sprintf("Dispensed %d portion(s).", feedPortions))
	},
}

func init() {
	feedCmd.Flags().IntVarP(&feedPortions, "portions", "p", 5, "number of portions to dispense")
	rootCmd.AddCommand(feedCmd)
}

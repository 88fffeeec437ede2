package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
)

var (
	resetLitterType    string
	resetDeodorantType string
)

var changeBagCmd = &cobra.Command{
	Use:   "change-bag <device-id>",
	Short: "Trigger garbage bag replacement (litter box only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.ReplaceGarbageBag(ctx, deviceID, catlink.DeviceLitterBox599, true)
		}, "Garbage bag change triggered.")
	},
}

var resetLitterCmd = &cobra.Command{
	Use:   "reset-litter <device-id>",
	Short: "Reset the litter consumable counter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		dt, err := catlink.ParseDeviceType(resetLitterType)
		if err != nil {
			return err
		}
		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.ResetConsumable(ctx, deviceID, dt, catlink.ConsumableCatLitter)
		}, "Litter counter reset.")
	},
}

var resetDeodorantCmd = &cobra.Command{
	Use:   "reset-deodorant <device-id>",
	Short: "Reset the deodorant consumable counter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		dt, err := catlink.ParseDeviceType(resetDeodorantType)
		if err != nil {
			return err
		}
		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.ResetConsumable(ctx, deviceID, dt, catlink.ConsumableDeodorizer)
		}, "Deodorant counter reset.")
	},
}

func init() {
	resetLitterCmd.Flags().StringVarP(&resetLitterType, "type", "t", string(catlink.DeviceLitterBox599),
		"device type (SCOOPER, LITTER_BOX_599)")
	resetDeodorantCmd.Flags().StringVarP(&resetDeodorantType, "type", "t", string(catlink.DeviceLitterBox599),
		"device type (SCOOPER, LITTER_BOX_599)")

	rootCmd.AddCommand(changeBagCmd, resetLitterCmd, resetDeodorantCmd)
}

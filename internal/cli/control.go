package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/session"
)

var (
	modeType   string
	actionType string
	cleanType  string
	pauseType  string
)

var modeCmd = &cobra.Command{
	Use:   "mode <device-id> <mode>",
	Short: "Change the device working mode (auto, manual, time, empty)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID, mode := args[0], args[1]
		dt, err := catlink.ParseDeviceType(modeType)
		if err != nil {
			return err
		}
		code, err := catlink.ModeCode(dt, mode)
		if err != nil {
			return err
		}

		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.ChangeMode(ctx, deviceID, dt, code)
		}, fmt.Sprintf("Mode set to '%s'.", mode))
	},
}

var actionCmd = &cobra.Command{
	Use:   "action <device-id> <action>",
	Short: "Send an action to the device (clean, pause, start)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID, action := args[0], args[1]
		dt, err := catlink.ParseDeviceType(actionType)
		if err != nil {
			return err
		}
		code, err := catlink.ActionCode(dt, action)
		if err != nil {
			return err
		}

		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.SendAction(ctx, deviceID, dt, code)
		}, fmt.Sprintf("Action '%s' sent.", action))
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <device-id>",
	Short: "Start a cleaning cycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		dt, err := catlink.ParseDeviceType(cleanType)
		if err != nil {
			return err
		}
		code, err := catlink.CleanActionCode(dt)
		if err != nil {
			return err
		}

		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.SendAction(ctx, deviceID, dt, code)
		}, "Cleaning started.")
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause <device-id>",
	Short: "Pause the current operation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		dt, err := catlink.ParseDeviceType(pauseType)
		if err != nil {
			return err
		}
		code, err := catlink.PauseActionCode(dt)
		if err != nil {
			return err
		}

		return runControl(cmd, func(ctx context.Context, c *catlink.Client) error {
			return c.SendAction(ctx, deviceID, dt, code)
		}, "Device paused.")
	},
}

// runControl dispatches a fire-and-forget device command and prints the
// confirmation per successful region.
func runControl(cmd *cobra.Command, do func(ctx context.Context, c *catlink.Client) error, confirmation string) error {
	runner, err := newRunner()
	if err != nil {
		return err
	}
	sel, err := selectedRegions()
	if err != nil {
		return err
	}

	results, err := session.Run(cmd.Context(), runner, sel,
		func(ctx context.Context, c *catlink.Client) (struct{}, error) {
			return struct{}{}, do(ctx, c)
		})
	if err != nil {
		return err
	}

	return report(results, func(prefix string, _ struct{}) {
		fmt.Printf("%s%s\n", prefix, confirmation)
	})
}

func init() {
	modeCmd.Flags().StringVarP(&modeType, "type", "t", string(catlink.DeviceScooper),
		"device type (SCOOPER, LITTER_BOX_599)")
	actionCmd.Flags().StringVarP(&actionType, "type", "t", string(catlink.DeviceScooper),
		"device type (SCOOPER, LITTER_BOX_599)")
	cleanCmd.Flags().StringVarP(&cleanType, "type", "t", string(catlink.DeviceScooper),
		"device type (SCOOPER, LITTER_BOX_599)")
	pauseCmd.Flags().StringVarP(&pauseType, "type", "t", string(catlink.DeviceScooper),
		"device type (SCOOPER, LITTER_BOX_599)")

	rootCmd.AddCommand(modeCmd, actionCmd, cleanCmd, pauseCmd)
}

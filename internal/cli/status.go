package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/session"
)

var statusType string

var statusCmd = &cobra.Command{
	Use:   "status <device-id>",
	Short: "Show detailed status for a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deviceID := args[0]
		dt, err := catlink.ParseDeviceType(statusType)
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
			func(ctx context.Context, c *catlink.Client) (catlink.DeviceDetail, error) {
				return c.DeviceDetail(ctx, deviceID, dt)
			})
		if err != nil {
			return err
		}

		return report(results, func(prefix string, detail catlink.DeviceDetail) {
			printDetail(prefix, dt, detail)
		})
	},
}

func printDetail(prefix string, dt catlink.DeviceType, detail catlink.DeviceDetail) {
	fmt.Printf("%sState:             %s\n", prefix, catlink.WorkStatusName(detail.WorkStatus.String()))
	fmt.Printf("%sMode:              %s\n", prefix, catlink.ModeName(dt, detail.WorkModel.String()))
	fmt.Printf("%sOnline:            %v\n", prefix, detail.Online)

	if detail.CatLitterWeight != nil {
		fmt.Printf("%sLitter weight:     %g kg\n", prefix, *detail.CatLitterWeight)
	}
	if detail.LitterCountdown != nil {
		fmt.Printf("%sLitter remaining:  %d days\n", prefix, int(*detail.LitterCountdown))
	}

	fmt.Printf("%sTotal cleans:      %d\n", prefix, detail.TotalCleans())
	fmt.Printf("%sManual cleans:     %d\n", prefix, int(detail.ManualTimes))

	if detail.DeodorantCountdown != nil {
		fmt.Printf("%sDeodorant days:    %d\n", prefix, int(*detail.DeodorantCountdown))
	}
	if t := detail.Temperature.String(); t != "" && t != "-" {
		fmt.Printf("%sTemperature:       %s C\n", prefix, t)
	}
	if h := detail.Humidity.String(); h != "" && h != "-" {
		fmt.Printf("%sHumidity:          %s%%\n", prefix, h)
	}
	if msg := detail.ErrorMessage(); msg != "" {
		fmt.Printf("%sError:             %s\n", prefix, msg)
	}
}

func init() {
	statusCmd.Flags().StringVarP(&statusType, "type", "t", string(catlink.DeviceScooper),
		"device type (SCOOPER, LITTER_BOX_599, C08, FEEDER)")
	rootCmd.AddCommand(statusCmd)
}

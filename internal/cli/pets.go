package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/session"
)

var catsCmd = &cobra.Command{
	Use:   "cats",
	Short: "List all cats on the account",
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

		tz := systemTimezone()
		results, err := session.Run(cmd.Context(), runner, sel,
			func(ctx context.Context, c *catlink.Client) ([]catlink.Cat, error) {
				return c.Cats(ctx, tz)
			})
		if err != nil {
			return err
		}

		return report(results, func(prefix string, cats []catlink.Cat) {
			if len(cats) == 0 {
				fmt.Printf("%sNo cats found.\n", prefix)
				return
			}
			for _, cat := range cats {
				line := fmt.Sprintf("%s  %s (id=%s, weight=%skg",
					prefix, cat.DisplayName(), orDefault(cat.Key(), "?"), orDefault(cat.Weight.String(), "?"))
				if breed := cat.BreedName(); breed != "" {
					line += ", breed=" + breed
				}
				fmt.Println(line + ")")
			}
		})
	},
}

var catSummaryDate string

var catSummaryCmd = &cobra.Command{
	Use:   "cat-summary <pet-id>",
	Short: "Show a cat's health summary for a given date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		petID := args[0]
		date := catSummaryDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}

		runner, err := newRunner()
		if err != nil {
			return err
		}
		sel, err := selectedRegions()
		if err != nil {
			return err
		}

		tz := systemTimezone()
		results, err := session.Run(cmd.Context(), runner, sel,
			func(ctx context.Context, c *catlink.Client) (map[string]any, error) {
				return c.CatSummary(ctx, petID, date, tz)
			})
		if err != nil {
			return err
		}

		return report(results, func(prefix string, data map[string]any) {
			if len(data) == 0 {
				fmt.Printf("%sNo summary data returned.\n", prefix)
				return
			}
			keys := make([]string, 0, len(data))
			for k := range data {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%s  %s: %v\n", prefix, k, data[k])
			}
		})
	},
}

// systemTimezone detects the host's IANA timezone from the /etc/localtime
// symlink, falling back to UTC.
func systemTimezone() string {
	resolved, err := filepath.EvalSymlinks("/etc/localtime")
	if err == nil {
		if _, name, found := strings.Cut(resolved, "zoneinfo/"); found {
			return name
		}
	}
	if name := os.Getenv("TZ"); name != "" {
		return name
	}
	return "UTC"
}

func init() {
	catSummaryCmd.Flags().StringVar(&catSummaryDate, "date", "", "date in YYYY-MM-DD format (defaults to today)")
	rootCmd.AddCommand(catsCmd, catSummaryCmd)
}

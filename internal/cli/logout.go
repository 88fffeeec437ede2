package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/credentials"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear stored credentials",
	Long: `Remove stored credentials from the OS keyring. With --region auto every
region's record is removed; with a concrete region only that record is.
Logging out of a region you are not logged in to is not an error.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		sel, err := selectedRegions()
		if err != nil {
			return err
		}
		store, err := credentials.OpenKeyring()
		if err != nil {
			return err
		}

		if sel.IsAuto() {
			if err := store.DeleteAll(); err != nil {
				return err
			}
			fmt.Println("Credentials cleared.")
			return nil
		}
		if err := store.Delete(sel.Region()); err != nil {
			return err
		}
		fmt.Printf("Credentials cleared for %s.\n", sel.Region())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/credentials"
	"github.com/DengYiping/catlink-cli/internal/region"
)

var (
	loginIAC      string
	loginPhone    string
	loginPassword string
	loginNoVerify bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with your CatLink account",
	Long: `Authenticate against the CatLink cloud and store the session in the OS
keyring. With --region auto every region is attempted and a credential
record is stored for each region that accepts the account.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if loginPhone == "" {
			return errors.New("--phone is required")
		}
		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = string(raw)
		}
		if password == "" {
			return errors.New("password cannot be empty")
		}

		// Encrypt once up front: the encrypted form is what gets sent,
		// and it is also persisted as the re-authentication secret.
		encrypted, err := catlink.EncryptPassword(password)
		if err != nil {
			return err
		}

		sel, err := selectedRegions()
		if err != nil {
			return err
		}
		regions := region.All()
		if !sel.IsAuto() {
			regions = []region.Region{sel.Region()}
		}

		store, err := credentials.OpenKeyring()
		if err != nil {
			return err
		}

		verify := cfg.Verify && !loginNoVerify
		var stored int
		for _, reg := range regions {
			opts := append(clientOptions(), catlink.WithInsecureSkipVerify(!verify))
			client := catlink.New(reg.BaseURL(), opts...)

			token, err := client.Login(cmd.Context(), loginIAC, loginPhone, encrypted)
			if err != nil {
				if len(regions) == 1 {
					return err
				}
				fmt.Fprintf(os.Stderr, "[%s] Error: %v\n", reg, err)
				continue
			}

			rec := credentials.Record{
				Token:     token,
				Phone:     loginPhone,
				PhoneIAC:  loginIAC,
				Password:  encrypted,
				VerifySSL: verify,
			}
			if err := store.Put(reg, rec); err != nil {
				return err
			}
			fmt.Printf("[%s] Login successful (%s).\n", reg, reg.BaseURL())
			stored++
		}
		if stored == 0 {
			return errors.New("login failed on all regions")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginIAC, "iac", "86",
		"country calling code, digits only (e.g. 1 for US, 44 for UK, 86 for China)")
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "phone number (digits only)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted if omitted)")
	loginCmd.Flags().BoolVar(&loginNoVerify, "no-verify", false, "disable SSL certificate verification")
	rootCmd.AddCommand(loginCmd)
}

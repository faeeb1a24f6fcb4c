package config

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flant/vault-ad-client/internal/consts"
	"github.com/flant/vault-ad-client/internal/flagutil"
	"github.com/flant/vault-ad-client/internal/output"
	"github.com/flant/vault-ad-client/internal/vault"
	"github.com/flant/vault-ad-client/pkg/activedirectory"
)

func NewCMD() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the shared engine configuration",
	}
	configCmd.AddCommand(writeCMD(), readCMD())
	return configCmd
}

func writeCMD() *cobra.Command {
	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "Write the shared connection settings of the engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			opts := activedirectory.ConfigureOptions{}
			var err error
			if opts.BindDN, err = flagutil.StringIfSet(flags, consts.BindDNFlagName); err != nil {
				return err
			}
			if opts.BindPass, err = flagutil.StringIfSet(flags, consts.BindPassFlagName); err != nil {
				return err
			}
			if opts.URL, err = flagutil.StringIfSet(flags, consts.URLFlagName); err != nil {
				return err
			}
			if opts.UserDN, err = flagutil.StringIfSet(flags, consts.UserDNFlagName); err != nil {
				return err
			}
			if opts.UPNDomain, err = flagutil.StringIfSet(flags, consts.UPNDomainFlagName); err != nil {
				return err
			}
			if opts.TTL, err = flagutil.TTLSecondsIfSet(flags, consts.TTLFlagName); err != nil {
				return err
			}
			if opts.MaxTTL, err = flagutil.TTLSecondsIfSet(flags, consts.MaxTTLFlagName); err != nil {
				return err
			}

			session, err := vault.SessionFromFlags(flags)
			if err != nil {
				return err
			}
			resp, err := session.Client.Configure(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
	writeCmd.Flags().String(consts.BindDNFlagName, "", "distinguished name of the bind object")
	writeCmd.Flags().String(consts.BindPassFlagName, "", "password of the bind object")
	writeCmd.Flags().String(consts.URLFlagName, "", "LDAP URL of the directory server")
	writeCmd.Flags().String(consts.UserDNFlagName, "", "base DN for user search")
	writeCmd.Flags().String(consts.UPNDomainFlagName, "", "userPrincipalDomain for UPN construction")
	writeCmd.Flags().String(consts.TTLFlagName, "", "default password TTL, seconds or duration")
	writeCmd.Flags().String(consts.MaxTTLFlagName, "", "maximum password TTL, seconds or duration")
	return writeCmd
}

func readCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Read the engine configuration (credentials are redacted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.ReadConfig(cmd.Context())
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
}

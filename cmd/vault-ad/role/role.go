package role

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
	roleCmd := &cobra.Command{
		Use:   "role",
		Short: "Manage roles mapping Vault paths to AD service accounts",
	}
	roleCmd.AddCommand(writeCMD(), readCMD(), listCMD(), deleteCMD())
	return roleCmd
}

func writeCMD() *cobra.Command {
	writeCmd := &cobra.Command{
		Use:   "write NAME",
		Short: "Create or update a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			opts := activedirectory.RoleOptions{}
			var err error
			if opts.ServiceAccountName, err = flagutil.StringIfSet(flags, consts.ServiceAccountFlagName); err != nil {
				return err
			}
			if opts.TTL, err = flagutil.TTLSecondsIfSet(flags, consts.TTLFlagName); err != nil {
				return err
			}

			session, err := vault.SessionFromFlags(flags)
			if err != nil {
				return err
			}
			resp, err := session.Client.CreateOrUpdateRole(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
	writeCmd.Flags().String(consts.ServiceAccountFlagName, "",
		"pre-existing AD service account mapped to this role (required on create)")
	writeCmd.Flags().String(consts.TTLFlagName, "", "password TTL for this role, seconds or duration")
	return writeCmd
}

func readCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "read NAME",
		Short: "Read a role definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.ReadRole(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
}

func listCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List role names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.ListRoles(cmd.Context())
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
}

func deleteCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a role (succeeds even when absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.DeleteRole(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
}

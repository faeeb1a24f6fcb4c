package library

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
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage service-account libraries and their check-out lifecycle",
	}
	libraryCmd.AddCommand(writeCMD(), readCMD(), listCMD(), deleteCMD(),
		statusCMD(), checkOutCMD(), checkInCMD())
	return libraryCmd
}

func writeCMD() *cobra.Command {
	writeCmd := &cobra.Command{
		Use:   "write NAME",
		Short: "Create or update a library of interchangeable service accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			opts := activedirectory.LibraryOptions{}
			var err error
			if opts.ServiceAccountNames, err = flagutil.StringSliceIfSet(flags, consts.ServiceAccountFlagName); err != nil {
				return err
			}
			if opts.TTL, err = flagutil.TTLSecondsIfSet(flags, consts.TTLFlagName); err != nil {
				return err
			}
			if opts.MaxTTL, err = flagutil.TTLSecondsIfSet(flags, consts.MaxTTLFlagName); err != nil {
				return err
			}
			if opts.DisableCheckInEnforcement, err = flagutil.BoolIfSet(flags, consts.DisableEnforcementFlagName); err != nil {
				return err
			}

			session, err := vault.SessionFromFlags(flags)
			if err != nil {
				return err
			}
			resp, err := session.Client.CreateOrUpdateLibrary(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
	writeCmd.Flags().StringSlice(consts.ServiceAccountFlagName, nil,
		"pre-existing AD service accounts in this library (required on create)")
	writeCmd.Flags().String(consts.TTLFlagName, "", "default check-out TTL, seconds or duration")
	writeCmd.Flags().String(consts.MaxTTLFlagName, "", "maximum check-out duration, seconds or duration")
	writeCmd.Flags().Bool(consts.DisableEnforcementFlagName, false,
		"allow any identity to check accounts back in")
	return writeCmd
}

func readCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "read NAME",
		Short: "Read a library definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.ReadLibrary(cmd.Context(), args[0])
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
		Short: "List library names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.ListLibraries(cmd.Context())
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
		Short: "Delete a library (succeeds even when absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.DeleteLibrary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
}

func statusCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "status NAME",
		Short: "Show which service accounts are available or checked out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := vault.SessionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			resp, err := session.Client.GetLibraryStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
}

func checkOutCMD() *cobra.Command {
	checkOutCmd := &cobra.Command{
		Use:   "check-out NAME",
		Short: "Check one service account out of the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			opts := activedirectory.CheckOutOptions{}
			var err error
			if opts.TTL, err = flagutil.TTLSecondsIfSet(flags, consts.TTLFlagName); err != nil {
				return err
			}

			session, err := vault.SessionFromFlags(flags)
			if err != nil {
				return err
			}
			resp, err := session.Client.CheckOutServiceAccount(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
	checkOutCmd.Flags().String(consts.TTLFlagName, "", "lease TTL for this check-out, seconds or duration")
	return checkOutCmd
}

func checkInCMD() *cobra.Command {
	checkInCmd := &cobra.Command{
		Use:   "check-in NAME",
		Short: "Check service accounts back into the library",
		Long: `Check service accounts back into the library.
Without --service-account the engine checks in whatever the calling
identity currently holds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			opts := activedirectory.CheckInOptions{}
			var err error
			if opts.ServiceAccountNames, err = flagutil.StringSliceIfSet(flags, consts.ServiceAccountFlagName); err != nil {
				return err
			}

			session, err := vault.SessionFromFlags(flags)
			if err != nil {
				return err
			}
			resp, err := session.Client.CheckInServiceAccount(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return output.Print(os.Stdout, resp)
		},
	}
	checkInCmd.Flags().StringSlice(consts.ServiceAccountFlagName, nil, "accounts to check in")
	return checkInCmd
}

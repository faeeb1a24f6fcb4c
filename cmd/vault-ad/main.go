package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	configcmd "github.com/flant/vault-ad-client/cmd/vault-ad/config"
	librarycmd "github.com/flant/vault-ad-client/cmd/vault-ad/library"
	rolecmd "github.com/flant/vault-ad-client/cmd/vault-ad/role"
	"github.com/flant/vault-ad-client/internal/consts"
	"github.com/flant/vault-ad-client/pkg/activedirectory"
)

func main() {
	_ = viper.BindEnv("token", "VAULT_TOKEN")

	rootCmd := &cobra.Command{
		Use:   "vault-ad",
		Short: "Vault Active Directory secrets engine CLI",
		Long: `Manage the Vault Active Directory secrets engine:
engine configuration, roles, and service-account libraries
with their check-out/check-in lifecycle.
Vault address and credentials come from the usual VAULT_* environment.`,
	}
	rootCmd.PersistentFlags().String(consts.MountFlagName, activedirectory.DefaultMountPoint,
		"mount point of the engine")
	rootCmd.PersistentFlags().String(consts.LogLevelFlagName, "warn",
		"log level, one of: [ trace | debug | info | warn | error ]")

	rootCmd.AddCommand(
		configcmd.NewCMD(),
		rolecmd.NewCMD(),
		librarycmd.NewCMD(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

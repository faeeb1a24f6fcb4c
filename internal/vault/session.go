package vault

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/vault/api"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/flant/vault-ad-client/internal/consts"
	"github.com/flant/vault-ad-client/pkg/activedirectory"
)

// Session wraps an environment-configured Vault connection into an Active
// Directory engine client. Address and TLS settings come from the standard
// VAULT_* environment variables; the token may additionally be overridden
// through viper ("token").
type Session struct {
	Client *activedirectory.Client
}

func NewSession(mount string, logger hclog.Logger) (*Session, error) {
	cfg := api.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("reading vault environment: %w", err)
	}

	apiClient, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating vault client: %w", err)
	}
	if token := viper.GetString("token"); token != "" {
		apiClient.SetToken(token)
	}

	transport := activedirectory.NewVaultTransport(apiClient, logger)
	client := activedirectory.NewClient(transport,
		activedirectory.WithMountPoint(mount),
		activedirectory.WithLogger(logger),
	)
	return &Session{Client: client}, nil
}

// SessionFromFlags builds a Session from the root command's persistent
// flags (mount point and log level).
func SessionFromFlags(flags *pflag.FlagSet) (*Session, error) {
	mount, err := flags.GetString(consts.MountFlagName)
	if err != nil {
		return nil, err
	}
	level, err := flags.GetString(consts.LogLevelFlagName)
	if err != nil {
		return nil, err
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "vault-ad",
		Level: hclog.LevelFromString(level),
	})
	return NewSession(mount, logger)
}

package activedirectory

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// DefaultMountPoint is the path the engine is mounted on unless overridden
// with WithMountPoint.
const DefaultMountPoint = "ad"

// Client talks to one mount of the Active Directory secrets engine. The
// mount point is fixed at construction. The client is stateless and safe
// for concurrent use as long as its Transport is.
type Client struct {
	transport Transport
	mount     string
	logger    hclog.Logger
}

type Option func(*Client)

// WithMountPoint overrides the engine mount point.
func WithMountPoint(mount string) Option {
	return func(c *Client) {
		c.mount = mount
	}
}

// WithLogger sets the client logger. Defaults to a null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		mount:     DefaultMountPoint,
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("activedirectory")
	return c
}

// MountPoint returns the mount the client addresses.
func (c *Client) MountPoint() string {
	return c.mount
}

// Configure writes the shared engine settings to /config.
func (c *Client) Configure(ctx context.Context, opts ConfigureOptions) (*Response, error) {
	return c.transport.Post(ctx, c.path("config"), opts.requestBody())
}

// ReadConfig reads the engine settings; bind credentials are omitted by the
// server.
func (c *Client) ReadConfig(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, c.path("config"))
}

// CreateOrUpdateRole creates or replaces the role definition under the
// given name.
func (c *Client) CreateOrUpdateRole(ctx context.Context, name string, opts RoleOptions) (*Response, error) {
	return c.transport.Post(ctx, c.path("roles", name), opts.requestBody(name))
}

// ReadRole returns the role definition; a missing role is ErrNotFound.
func (c *Client) ReadRole(ctx context.Context, name string) (*Response, error) {
	return c.transport.Get(ctx, c.path("roles", name))
}

// ListRoles enumerates role names.
func (c *Client) ListRoles(ctx context.Context) (*Response, error) {
	return c.transport.List(ctx, c.path("roles"))
}

// DeleteRole removes a role. Deleting an absent role still succeeds.
func (c *Client) DeleteRole(ctx context.Context, name string) (*Response, error) {
	return c.transport.Delete(ctx, c.path("roles", name))
}

// ListLibraries enumerates library names.
func (c *Client) ListLibraries(ctx context.Context) (*Response, error) {
	return c.transport.List(ctx, c.path("library"))
}

// ReadLibrary returns the library definition; a missing library is
// ErrNotFound.
func (c *Client) ReadLibrary(ctx context.Context, name string) (*Response, error) {
	return c.transport.Get(ctx, c.path("library", name))
}

// CreateOrUpdateLibrary creates or replaces the set of service accounts
// lent out under the given library name.
func (c *Client) CreateOrUpdateLibrary(ctx context.Context, name string, opts LibraryOptions) (*Response, error) {
	return c.transport.Post(ctx, c.path("library", name), opts.requestBody())
}

// DeleteLibrary removes a library. Deleting an absent library still
// succeeds.
func (c *Client) DeleteLibrary(ctx context.Context, name string) (*Response, error) {
	return c.transport.Delete(ctx, c.path("library", name))
}

// GetLibraryStatus reports the per-account check-out state of a library.
// It never mutates anything.
func (c *Client) GetLibraryStatus(ctx context.Context, name string) (*Response, error) {
	return c.transport.Get(ctx, c.path("library", name, "status"))
}

// CheckOutServiceAccount borrows one available account from the library.
// When every account is already lent out Vault answers with a conflict; the
// client reports it and never waits or polls for availability.
func (c *Client) CheckOutServiceAccount(ctx context.Context, name string, opts CheckOutOptions) (*Response, error) {
	return c.transport.Post(ctx, c.path("library", name, "check-out"), opts.requestBody())
}

// CheckInServiceAccount returns borrowed accounts to the library. Unless
// the library disables enforcement, Vault requires the caller to be the
// identity that checked the account out (ErrForbidden otherwise).
func (c *Client) CheckInServiceAccount(ctx context.Context, name string, opts CheckInOptions) (*Response, error) {
	return c.transport.Post(ctx, c.path("library", name, "check-in"), opts.requestBody())
}

func (c *Client) path(parts ...string) string {
	p := c.mount
	for _, part := range parts {
		p = fmt.Sprintf("%s/%s", p, part)
	}
	return p
}

package activedirectory

import (
	"bytes"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Transport issues a single HTTP request against a Vault server and reports
// the answer as-is. Implementations must be safe for concurrent use.
type Transport interface {
	Get(ctx context.Context, path string) (*Response, error)
	Post(ctx context.Context, path string, body map[string]interface{}) (*Response, error)
	Delete(ctx context.Context, path string) (*Response, error)
	List(ctx context.Context, path string) (*Response, error)
}

// Response is a successful engine answer: the HTTP status and the raw JSON
// body. POST and DELETE acknowledgments usually carry an empty body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Data returns the "data" envelope of the response body.
func (r *Response) Data() gjson.Result {
	return gjson.GetBytes(r.Body, "data")
}

// Decode unmarshals the "data" envelope into out.
func (r *Response) Decode(out interface{}) error {
	data := r.Data()
	if !data.Exists() {
		return fmt.Errorf("response has no data envelope")
	}
	return json.Unmarshal([]byte(data.Raw), out)
}

// ListKeys returns the "data.keys" array of a LIST response.
func (r *Response) ListKeys() []string {
	raw := gjson.GetBytes(r.Body, "data.keys").Array()
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k.String())
	}
	return keys
}

// VaultTransport drives an api.Client under the /v1/ prefix. LIST uses the
// vault/api LIST verb, which the api client encodes as GET with ?list=true.
type VaultTransport struct {
	client *api.Client
	logger hclog.Logger
}

func NewVaultTransport(client *api.Client, logger hclog.Logger) *VaultTransport {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &VaultTransport{
		client: client,
		logger: logger.Named("vault-transport"),
	}
}

func (t *VaultTransport) Get(ctx context.Context, path string) (*Response, error) {
	return t.makeRequest(ctx, "GET", path, nil)
}

func (t *VaultTransport) Post(ctx context.Context, path string, body map[string]interface{}) (*Response, error) {
	return t.makeRequest(ctx, "POST", path, body)
}

func (t *VaultTransport) Delete(ctx context.Context, path string) (*Response, error) {
	return t.makeRequest(ctx, "DELETE", path, nil)
}

func (t *VaultTransport) List(ctx context.Context, path string) (*Response, error) {
	return t.makeRequest(ctx, "LIST", path, nil)
}

func (t *VaultTransport) makeRequest(ctx context.Context, method, requestPath string, body map[string]interface{}) (*Response, error) {
	req := t.client.NewRequest(method, "/v1/"+requestPath)
	if body != nil {
		if err := req.SetJSONBody(body); err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
	}

	t.logger.Debug("request", "method", method, "path", requestPath)

	resp, err := t.client.RawRequestWithContext(ctx, req) // nolint:staticcheck
	if err != nil {
		var respErr *api.ResponseError
		if goerrors.As(err, &respErr) {
			return nil, &APIError{StatusCode: respErr.StatusCode, Messages: respErr.Errors}
		}
		return nil, fmt.Errorf("%w: %s", ErrTransport, err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	return &Response{StatusCode: resp.StatusCode, Body: buf.Bytes()}, nil
}

package activedirectory

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/require"
)

// fakeADEngine is an in-memory rendition of the engine's HTTP surface,
// including the check-out/check-in state machine: an account is either
// available or held by the client token that checked it out, and unless the
// library disables enforcement only that token may return it.
type fakeADEngine struct {
	mount string

	mu        sync.Mutex
	config    map[string]interface{}
	roles     map[string]map[string]interface{}
	libraries map[string]*fakeLibrary

	lastMethod string
	lastPath   string
	lastBody   []byte
}

type fakeLibrary struct {
	serviceAccountNames       []string
	ttl                       int
	maxTTL                    int
	disableCheckInEnforcement bool

	// borrower token per account; empty string means available
	borrowers map[string]string
}

func newFakeADEngine(mount string) *fakeADEngine {
	return &fakeADEngine{
		mount:     mount,
		roles:     map[string]map[string]interface{}{},
		libraries: map[string]*fakeLibrary{},
	}
}

func (f *fakeADEngine) handler() http.Handler {
	return http.HandlerFunc(f.serveHTTP)
}

func (f *fakeADEngine) serveHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body := map[string]interface{}{}
	raw, _ := io.ReadAll(r.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	f.lastMethod = r.Method
	f.lastPath = r.URL.Path
	f.lastBody = raw

	prefix := "/v1/" + f.mount + "/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		respondErrors(w, 404, "no handler for route")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.Split(rest, "/")
	token := r.Header.Get("X-Vault-Token")
	listing := r.Method == "LIST" || r.URL.Query().Get("list") == "true"

	switch {
	case rest == "config" && r.Method == http.MethodPost:
		f.config = body
		w.WriteHeader(204)
	case rest == "config" && r.Method == http.MethodGet:
		if f.config == nil {
			respondErrors(w, 404)
			return
		}
		data := map[string]interface{}{}
		for k, v := range f.config {
			if k == "bindpass" {
				continue
			}
			data[k] = v
		}
		respondData(w, data)
	case parts[0] == "roles" && len(parts) == 1 && listing:
		respondKeys(w, sortedKeys(f.roles))
	case parts[0] == "roles" && len(parts) == 2:
		f.serveRole(w, r, parts[1], body)
	case parts[0] == "library" && len(parts) == 1 && listing:
		names := make([]string, 0, len(f.libraries))
		for name := range f.libraries {
			names = append(names, name)
		}
		sort.Strings(names)
		respondKeys(w, names)
	case parts[0] == "library" && len(parts) == 2:
		f.serveLibrary(w, r, parts[1], body)
	case parts[0] == "library" && len(parts) == 3:
		f.serveLibraryAction(w, parts[1], parts[2], token, body)
	default:
		respondErrors(w, 404, "no handler for route")
	}
}

func (f *fakeADEngine) serveRole(w http.ResponseWriter, r *http.Request, name string, body map[string]interface{}) {
	switch r.Method {
	case http.MethodPost:
		f.roles[name] = body
		w.WriteHeader(204)
	case http.MethodGet:
		role, ok := f.roles[name]
		if !ok {
			respondErrors(w, 404)
			return
		}
		respondData(w, role)
	case http.MethodDelete:
		delete(f.roles, name)
		w.WriteHeader(204)
	default:
		respondErrors(w, 405, "unsupported operation")
	}
}

func (f *fakeADEngine) serveLibrary(w http.ResponseWriter, r *http.Request, name string, body map[string]interface{}) {
	switch r.Method {
	case http.MethodPost:
		lib := &fakeLibrary{borrowers: map[string]string{}}
		if names, ok := body["service_account_names"].([]interface{}); ok {
			for _, n := range names {
				lib.serviceAccountNames = append(lib.serviceAccountNames, n.(string))
				lib.borrowers[n.(string)] = ""
			}
		}
		if ttl, ok := body["ttl"].(float64); ok {
			lib.ttl = int(ttl)
		}
		if maxTTL, ok := body["max_ttl"].(float64); ok {
			lib.maxTTL = int(maxTTL)
		}
		if disable, ok := body["disable_check_in_enforcement"].(bool); ok {
			lib.disableCheckInEnforcement = disable
		}
		f.libraries[name] = lib
		w.WriteHeader(204)
	case http.MethodGet:
		lib, ok := f.libraries[name]
		if !ok {
			respondErrors(w, 404)
			return
		}
		respondData(w, map[string]interface{}{
			"name":                         name,
			"service_account_names":        lib.serviceAccountNames,
			"ttl":                          lib.ttl,
			"max_ttl":                      lib.maxTTL,
			"disable_check_in_enforcement": lib.disableCheckInEnforcement,
		})
	case http.MethodDelete:
		delete(f.libraries, name)
		w.WriteHeader(204)
	default:
		respondErrors(w, 405, "unsupported operation")
	}
}

func (f *fakeADEngine) serveLibraryAction(w http.ResponseWriter, name, action, token string, body map[string]interface{}) {
	lib, ok := f.libraries[name]
	if !ok {
		respondErrors(w, 404)
		return
	}

	switch action {
	case "status":
		data := map[string]interface{}{}
		for _, account := range lib.serviceAccountNames {
			entry := map[string]interface{}{"available": lib.borrowers[account] == ""}
			if borrower := lib.borrowers[account]; borrower != "" {
				entry["borrower_client_token"] = borrower
			}
			data[account] = entry
		}
		respondData(w, data)
	case "check-out":
		for _, account := range lib.serviceAccountNames {
			if lib.borrowers[account] != "" {
				continue
			}
			lib.borrowers[account] = token
			ttl := lib.ttl
			if requested, ok := body["ttl"].(float64); ok {
				ttl = int(requested)
			}
			respondLease(w,
				fmt.Sprintf("%s/library/%s/check-out/%s", f.mount, name, uuid.NewString()),
				ttl,
				map[string]interface{}{
					"service_account_name": account,
					"password":             uuid.NewString(),
				})
			return
		}
		respondErrors(w, 409, "no service accounts available for check-out")
	case "check-in":
		targets := []string{}
		if names, ok := body["service_account_names"].([]interface{}); ok {
			for _, n := range names {
				targets = append(targets, n.(string))
			}
		} else {
			for _, account := range lib.serviceAccountNames {
				if lib.borrowers[account] == token {
					targets = append(targets, account)
				}
			}
		}
		for _, account := range targets {
			borrower, held := lib.borrowers[account]
			if !held || borrower == "" {
				respondErrors(w, 400, fmt.Sprintf("%q is not checked out", account))
				return
			}
			if !lib.disableCheckInEnforcement && borrower != token {
				respondErrors(w, 403, fmt.Sprintf("%q was checked out by another caller", account))
				return
			}
		}
		for _, account := range targets {
			lib.borrowers[account] = ""
		}
		respondData(w, map[string]interface{}{"check_ins": targets})
	default:
		respondErrors(w, 404, "no handler for route")
	}
}

func sortedKeys(m map[string]map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func respondData(w http.ResponseWriter, data map[string]interface{}) {
	writeJSON(w, 200, map[string]interface{}{
		"request_id": uuid.NewString(),
		"data":       data,
	})
}

func respondLease(w http.ResponseWriter, leaseID string, leaseDuration int, data map[string]interface{}) {
	writeJSON(w, 200, map[string]interface{}{
		"request_id":     uuid.NewString(),
		"lease_id":       leaseID,
		"lease_duration": leaseDuration,
		"data":           data,
	})
}

func respondKeys(w http.ResponseWriter, keys []string) {
	respondData(w, map[string]interface{}{"keys": keys})
}

func respondErrors(w http.ResponseWriter, status int, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	writeJSON(w, status, map[string]interface{}{"errors": messages})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestClient starts the fake engine and wires a Client to it through the
// production VaultTransport, authenticated as the given token.
func newTestClient(t *testing.T, engine *fakeADEngine, token string, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(engine.handler())
	t.Cleanup(srv.Close)

	cfg := api.DefaultConfig()
	cfg.Address = srv.URL
	apiClient, err := api.NewClient(cfg)
	require.NoError(t, err)
	apiClient.SetToken(token)

	return NewClient(NewVaultTransport(apiClient, nil), opts...)
}

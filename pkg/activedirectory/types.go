package activedirectory

// Typed views over the engine's read responses, for use with
// Response.Decode. The raw Response stays authoritative; nothing here is
// validated client-side.

// EngineConfig is the answer of ReadConfig. Bind credentials never appear
// in reads.
type EngineConfig struct {
	BindDN    string `json:"binddn"`
	URL       string `json:"url"`
	UserDN    string `json:"userdn"`
	UPNDomain string `json:"upndomain"`
	TTL       int    `json:"ttl"`
	MaxTTL    int    `json:"max_ttl"`
}

// Role is the answer of ReadRole.
type Role struct {
	ServiceAccountName string `json:"service_account_name"`
	TTL                int    `json:"ttl"`
}

// Library is the answer of ReadLibrary.
type Library struct {
	Name                      string   `json:"name"`
	ServiceAccountNames       []string `json:"service_account_names"`
	TTL                       int      `json:"ttl"`
	MaxTTL                    int      `json:"max_ttl"`
	DisableCheckInEnforcement bool     `json:"disable_check_in_enforcement"`
}

// AccountStatus is one entry of GetLibraryStatus: either available, or held
// by the identified borrower.
type AccountStatus struct {
	Available           bool   `json:"available"`
	BorrowerClientToken string `json:"borrower_client_token,omitempty"`
	BorrowerEntityID    string `json:"borrower_entity_id,omitempty"`
}

// LibraryStatus maps service account name to its current state.
type LibraryStatus map[string]AccountStatus

// CheckOut is the answer of CheckOutServiceAccount: the account lent to the
// caller and its current password.
type CheckOut struct {
	ServiceAccountName string `json:"service_account_name"`
	Password           string `json:"password"`
}

package activedirectory

// Optional request parameters are pointer fields: nil means the caller did
// not supply the parameter and the key is omitted from the body, while a
// pointer to a zero value ("", 0, false) is transmitted as that value.

func String(v string) *string { return &v }
func Int(v int) *int          { return &v }
func Bool(v bool) *bool       { return &v }

// ConfigureOptions are the engine connection settings written to /config.
// TTL values are in seconds.
type ConfigureOptions struct {
	BindDN    *string
	BindPass  *string
	URL       *string
	UserDN    *string
	UPNDomain *string
	TTL       *int
	MaxTTL    *int
}

func (o ConfigureOptions) requestBody() map[string]interface{} {
	body := map[string]interface{}{}
	setString(body, "binddn", o.BindDN)
	setString(body, "bindpass", o.BindPass)
	setString(body, "url", o.URL)
	setString(body, "userdn", o.UserDN)
	setString(body, "upndomain", o.UPNDomain)
	setInt(body, "ttl", o.TTL)
	setInt(body, "max_ttl", o.MaxTTL)
	return body
}

// RoleOptions describe a role. ServiceAccountName is required by the server
// on create and optional on update.
type RoleOptions struct {
	ServiceAccountName *string
	TTL                *int
}

func (o RoleOptions) requestBody(name string) map[string]interface{} {
	body := map[string]interface{}{
		"name": name,
	}
	setString(body, "service_account_name", o.ServiceAccountName)
	setInt(body, "ttl", o.TTL)
	return body
}

// LibraryOptions describe a service-account library. ServiceAccountNames is
// required by the server on create and optional on update; it is always
// transmitted, even when nil, matching the engine's update semantics.
type LibraryOptions struct {
	ServiceAccountNames       []string
	TTL                       *int
	MaxTTL                    *int
	DisableCheckInEnforcement *bool
}

func (o LibraryOptions) requestBody() map[string]interface{} {
	body := map[string]interface{}{
		"service_account_names": o.ServiceAccountNames,
	}
	setInt(body, "ttl", o.TTL)
	setInt(body, "max_ttl", o.MaxTTL)
	setBool(body, "disable_check_in_enforcement", o.DisableCheckInEnforcement)
	return body
}

// CheckOutOptions bound the lease of a single check-out.
type CheckOutOptions struct {
	TTL *int
}

func (o CheckOutOptions) requestBody() map[string]interface{} {
	body := map[string]interface{}{}
	setInt(body, "ttl", o.TTL)
	return body
}

// CheckInOptions name the accounts to return. When ServiceAccountNames is
// nil the engine checks in whatever the calling identity holds; that
// resolution happens server-side.
type CheckInOptions struct {
	ServiceAccountNames []string
}

func (o CheckInOptions) requestBody() map[string]interface{} {
	body := map[string]interface{}{}
	if o.ServiceAccountNames != nil {
		body["service_account_names"] = o.ServiceAccountNames
	}
	return body
}

func setString(m map[string]interface{}, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func setInt(m map[string]interface{}, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func setBool(m map[string]interface{}, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

package consts

const (
	MountFlagName              = "mount"
	LogLevelFlagName           = "log-level"
	TTLFlagName                = "ttl"
	MaxTTLFlagName             = "max-ttl"
	ServiceAccountFlagName     = "service-account"
	BindDNFlagName             = "binddn"
	BindPassFlagName           = "bindpass"
	URLFlagName                = "url"
	UserDNFlagName             = "userdn"
	UPNDomainFlagName          = "upndomain"
	DisableEnforcementFlagName = "disable-check-in-enforcement"
)

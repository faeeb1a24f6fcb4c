// Package activedirectory is a client for the Vault Active Directory
// secrets engine: engine configuration, roles, and service-account
// libraries with their check-out/check-in lifecycle.
//
// Every method maps to exactly one HTTP call against the engine mount
// (default "ad") and returns the raw engine response. The client keeps no
// state between calls, performs no retries and no caching; availability of
// a service account is decided by Vault at check-out time, never locally.
package activedirectory

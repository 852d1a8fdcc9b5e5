// Package config loads settings for the catalog admin server and for
// catalogctl.
//
// [GetStructuredConfig] merges three sources for the server, each one
// overriding the non-zero fields of the previous:
//  1. Environment variables (APP_*, SERVER_*, STORAGE_DB_*, CONFIG)
//  2. Command-line flags
//  3. The JSON file named by CONFIG or -c
//
// The merged result is validated before it is returned. [GetClientConfig]
// does the same for catalogctl with CATALOG_* variables and flags only.
package config

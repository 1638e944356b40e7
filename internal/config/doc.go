// Package config assembles the server and client configuration.
//
// Sources are layered in this order, each overriding the non-zero fields of
// the ones before it:
//  1. built-in defaults
//  2. environment variables (APP_*, STORAGE_*, SERVER_*, INVENTORY_*,
//     AUDIT_*, ADAPTER_*)
//  3. command line flags
//  4. the JSON file named by -c, -config or CONFIG
//
// [GetStructuredConfig] builds the server configuration and
// [GetClientConfig] the sysagectl one. The client layers its own cobra
// flags on top of the returned value.
package config

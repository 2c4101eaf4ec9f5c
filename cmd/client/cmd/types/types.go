// Package types holds the shared context keys of the command tree.
package types

type contextKey string

// ClientAppKey is the context key under which the initialized client
// application is passed to subcommands.
const ClientAppKey contextKey = "app"

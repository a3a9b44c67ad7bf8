// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the API key guarding write
// endpoints and a read-only switch for deployments serving a published
// dataset snapshot.
package server

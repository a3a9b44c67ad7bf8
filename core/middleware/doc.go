// Package middleware groups the HTTP middleware of the server.
//
//   - auth: API key guard, optionally restricted to write methods.
//   - rayid: assigns a request id, stored in Locals and echoed in X-Ray-ID.
package middleware

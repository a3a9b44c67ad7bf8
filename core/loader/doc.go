// Package loader mounts features on the HTTP router.
//
// Each feature (catalog, pokemon, integrity, ...) implements Feature. The
// Manager loads every enabled feature in registration order.
package loader

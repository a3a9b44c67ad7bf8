// Package config loads the application configuration.
//
// Values come from a .env file (loaded with godotenv, overriding the process
// environment) and environment variables, resolved through viper. Every key
// maps to SECTION_KEY, e.g. CACHE_TTL or DATASET_DIR. Defaults live next to
// the fields in `default` struct tags.
//
// The dataset directory additionally honours POKEPC_DATASET_DIR.
package config

package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access write endpoints. Empty disables the guard.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadOnly disables every endpoint that writes to the dataset.
	ReadOnly bool `mapstructure:"read_only" default:"false"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// RequiresKey reports whether protected routes need an API key.
func (c Config) RequiresKey() bool {
	return c.ApiKey != ""
}

// Package config provides YAML-based settings for the flapterm SSH
// server. Simulation constants are deliberately not configurable; only
// the serving surface is.
package config

// ServerSettings holds the SSH server configuration.
type ServerSettings struct {
	// Address is the host:port to listen on.
	Address string `yaml:"address"`

	// HostKeyPath is the path to the host key file. Empty means
	// auto-generate at ~/.flapterm/host_key.
	HostKeyPath string `yaml:"host_key_path"`

	// IdleTimeoutMinutes is how long to keep idle connections.
	IdleTimeoutMinutes int `yaml:"idle_timeout_minutes"`

	// TickRate is the simulation tick rate for served sessions.
	TickRate int `yaml:"tick_rate"`
}

// DefaultServerSettings returns the built-in server configuration.
func DefaultServerSettings() ServerSettings {
	return ServerSettings{
		Address:            ":23234",
		HostKeyPath:        "",
		IdleTimeoutMinutes: 30,
		TickRate:           60,
	}
}

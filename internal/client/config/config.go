package config

import "time"

// Remote authenticator modes.
const (
	RemoteModeMock = "mock"
	RemoteModeGRPC = "grpc"
)

// Config holds runtime settings for the interactive client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the authenticator gRPC endpoint.
//   - RemoteMode: "mock" for the in-process authenticator, "grpc" for the server.
//   - MockLatency: artificial delay of every mock authenticator call.
//   - StoragePath: SQLite file holding the persisted session (":memory:" for none).
//   - EncryptionKey: passphrase the secure storage namespace is keyed from.
//   - OnlineCheckInterval: how often the client checks server reachability in grpc mode.
type Config struct {
	ServerEndpointAddr  string
	RemoteMode          string
	MockLatency         time.Duration
	StoragePath         string
	EncryptionKey       string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RemoteMode = RemoteModeMock
	c.MockLatency = time.Second
	c.StoragePath = "session.db"
	c.EncryptionKey = "authshell-dev-key"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/authshell/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Arguments belonging to other flag sets (such as -c) are ignored.
// It panics on malformed values or an unknown remote mode.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.RemoteMode, "m", cfg.RemoteMode, "remote authenticator (mock|grpc)")
	mockLatency := fs.Int("l", int(cfg.MockLatency.Milliseconds()), "mock authenticator latency (in milliseconds)")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "session database path")
	fs.StringVar(&cfg.EncryptionKey, "k", cfg.EncryptionKey, "secure storage passphrase")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := flagx.ParseKnown(fs, os.Args[1:]); err != nil {
		panic(err)
	}

	if cfg.RemoteMode != RemoteModeMock && cfg.RemoteMode != RemoteModeGRPC {
		panic(fmt.Sprintf("unknown remote mode %q", cfg.RemoteMode))
	}

	cfg.MockLatency = time.Duration(*mockLatency) * time.Millisecond
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}

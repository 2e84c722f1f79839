package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authshell/internal/flagx"
	"github.com/dmitrijs2005/authshell/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Pointer fields tell an absent key apart from an empty one.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	RemoteMode          *string         `json:"remote_mode"`
	MockLatency         *timex.Duration `json:"mock_latency"`
	StoragePath         *string         `json:"storage_path"`
	EncryptionKey       *string         `json:"encryption_key"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without such a flag nothing happens.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.RemoteMode != nil {
		cfg.RemoteMode = *jc.RemoteMode
	}
	if jc.MockLatency != nil {
		cfg.MockLatency = jc.MockLatency.Duration
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.EncryptionKey != nil {
		cfg.EncryptionKey = *jc.EncryptionKey
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}

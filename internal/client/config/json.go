package config

import (
	"encoding/json"
	"os"

	"github.com/reflecta-app/reflecta/internal/flagx"
	"github.com/reflecta-app/reflecta/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	DatabasePath        string         `json:"database_path"`
	ProbeTimeout        timex.Duration `json:"probe_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	StalenessThreshold  timex.Duration `json:"staleness_threshold"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. Missing file flag means no JSON is loaded. Fields
// absent from the file keep their current values. Intended usage is:
// defaults -> parseJson -> parseFlags, later stages override earlier ones.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ProbeTimeout.Duration > 0 {
		cfg.ProbeTimeout = jc.ProbeTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.StalenessThreshold.Duration > 0 {
		cfg.StalenessThreshold = jc.StalenessThreshold.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

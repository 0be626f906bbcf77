package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Abeygunawardhanahs/spiceslink/internal/flagx"
	"github.com/Abeygunawardhanahs/spiceslink/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be given either as strings like "500ms"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	DatabaseDSN         string         `json:"database_dsn"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	ReconcileDelay      timex.Duration `json:"reconcile_delay"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	CloudinaryURL       string         `json:"cloudinary_url"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. With no such flag, nothing is loaded. Read or
// unmarshal errors panic; the config is unusable without them.
//
// Only fields present in the file override the current values.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.ReconcileDelay.Duration != 0 {
		cfg.ReconcileDelay = time.Duration(jc.ReconcileDelay.Duration)
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.CloudinaryURL != "" {
		cfg.CloudinaryURL = jc.CloudinaryURL
	}
}

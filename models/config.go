package models

// Config is the server configuration returned by /api/config.
type Config struct {
	Components            []string   `json:"components"`
	ConfigDir             string     `json:"config_dir"`
	Elevation             float64    `json:"elevation"`
	Latitude              float64    `json:"latitude"`
	LocationName          string     `json:"location_name"`
	Longitude             float64    `json:"longitude"`
	TimeZone              string     `json:"time_zone"`
	UnitSystem            UnitSystem `json:"unit_system"`
	Version               string     `json:"version"`
	WhitelistExternalDirs []string   `json:"whitelist_external_dirs"`
}

// UnitSystem describes the measurement units the server is configured with.
type UnitSystem struct {
	Length      string `json:"length"`
	Mass        string `json:"mass"`
	Temperature string `json:"temperature"`
	Volume      string `json:"volume"`
}

// ConfigCheck is the result of /api/config/core/check_config.
type ConfigCheck struct {
	Result   string `json:"result"`
	Errors   string `json:"errors,omitempty"`
	Warnings string `json:"warnings,omitempty"`
}

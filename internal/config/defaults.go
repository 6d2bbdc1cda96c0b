package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Days:      7,
			OutputDir: ".",
			PageSize:  PageSize,
		},
		Snapshot: SnapshotConfig{
			TempDir: "",
			Prefix:  "chromium_history_export_",
		},
		Logging: LoggingConfig{
			Color: true,
		},
	}
}

// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	out := &cfg.Telemetry.Output

	// Output path is stable per format so downstream readers can find it.
	if out.Path == "" {
		out.Path = DefaultFileNames[out.Format]
	}
}

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Missing secrets or connection settings must abort startup rather than fail
// lazily on the first request that needs them.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if driver := cfg.Storage.DB.Driver; driver != "pgx" && driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Expert.APIKey == "" {
		return ErrInvalidExpertConfigs
	}

	return nil
}

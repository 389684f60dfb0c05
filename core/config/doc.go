// Package config provides configuration management for the sync tool.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Sync: Pipeline paths (work dir, output file, baseline) and image URL settings
//   - Transfer: Supplier feed endpoint credentials and remote file paths
//   - Archive: S3/MinIO credentials for run artifact retention (optional)
//   - Log: Logging level and format
//   - Database: MySQL connection details for the run history ledger (optional)
//
// # Secrets
//
// Feed credentials have no baked-in defaults. TRANSFER_USER and
// TRANSFER_PASSWORD must be provided through the environment or .env;
// an unset credential fails fast at connect time instead of silently
// dialing with a placeholder.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Transfer.Host)
package config

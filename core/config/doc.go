// Package config provides configuration management for the audit tool.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Storage: S3/MinIO credentials and bucket settings for remote input files
//   - Log: Logging level and format
//   - RollForward: tolerance and total-row label defaults for reconciliation
//   - Jet: threshold defaults for the anomaly battery
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.RollForward.Tolerance)
package config

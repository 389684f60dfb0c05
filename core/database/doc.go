// Package database handles the optional run history database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// Connect establishes and pings the connection. The history database is an
// optional dependency: when it is disabled or unreachable a sync run proceeds
// without a ledger entry, so callers warn-and-continue instead of failing.
//
// # Usage
//
//	if cfg.Database.Enabled {
//	    db, err := database.Connect(cfg.Database)
//	    if err != nil {
//	        log.Warn("Optional database connection failed", zap.Error(err))
//	    }
//	}
package database

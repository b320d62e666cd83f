package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b storage backend ("file" or "sqlite")
//	-f data directory for the file backend
//	-d SQLite DSN (database file path) for the sqlite backend
//	-l log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backend string
	var dataDir string
	var databaseDSN string
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&backend, "b", "", `Storage backend ("file" or "sqlite")`)
	flag.StringVar(&dataDir, "f", "", "Data directory (file backend)")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path (sqlite backend)")
	flag.StringVar(&logFile, "l", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				DataDir: dataDir,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}

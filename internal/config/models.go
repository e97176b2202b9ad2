package config

// SortRunConfig represents the configuration for a batch sort run
type SortRunConfig struct {
	ConfigPath string
	ReportName string
	Extension  string
	Workers    int
}

// HistoryConfig represents the configuration for the run history repository
type HistoryConfig struct {
	Enabled    bool
	Type       string
	SQLitePath string
	MySQLDSN   string
	Limit      int
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// GetSortRun returns the sort run configuration
func (c *Config) GetSortRun() SortRunConfig {
	path := c.GetString("sort.config_path")
	if path == "" {
		path = DefaultSortConfigPath()
	}
	return SortRunConfig{
		ConfigPath: path,
		ReportName: c.GetString("sort.report_name"),
		Extension:  c.GetString("sort.extension"),
		Workers:    c.GetInt("sort.workers"),
	}
}

// GetHistory returns the run history configuration
func (c *Config) GetHistory() HistoryConfig {
	return HistoryConfig{
		Enabled:    c.GetBool("history.enabled"),
		Type:       c.GetString("history.type"),
		SQLitePath: c.GetString("history.sqlite_path"),
		MySQLDSN:   c.GetString("history.mysql_dsn"),
		Limit:      c.GetInt("history.limit"),
	}
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:  c.GetString("logging.level"),
		Format: c.GetString("logging.format"),
	}
}

package config

// StoreConfig represents the configuration for the record store
type StoreConfig struct {
	Type       string
	MySQLDSN   string
	SQLitePath string
	Table      string
}

// CorpusConfig represents the configuration for the corpus matcher
type CorpusConfig struct {
	Enabled      bool
	SearchLimit  int
	MinRelevance float64
}

// ServerConfig represents the configuration for the inbound filter
type ServerConfig struct {
	FilterType    string
	ListenAddress string
	BlockLevel    string
	BlockEnabled  bool
	LevelHeader   string
	ScoreHeader   string
	ReasonHeader  string
	RelayAddress  string
	RelayPort     int
	RelayEnabled  bool
	SubjectPrefix string
	ModifySubject bool
}

// GetStore returns the record store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:       c.GetString("store.type"),
		MySQLDSN:   c.GetString("store.mysql_dsn"),
		SQLitePath: c.GetString("store.sqlite_path"),
		Table:      c.GetString("store.table"),
	}
}

// GetCorpus returns the corpus matcher configuration
func (c *Config) GetCorpus() CorpusConfig {
	return CorpusConfig{
		Enabled:      c.GetBool("corpus.enabled"),
		SearchLimit:  c.GetInt("corpus.search_limit"),
		MinRelevance: c.GetFloat64("corpus.min_relevance"),
	}
}

// GetServer returns the inbound filter configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		FilterType:    c.GetString("server.filter_type"),
		ListenAddress: c.GetString("server.listen_address"),
		BlockLevel:    c.GetString("server.block_level"),
		BlockEnabled:  c.GetBool("server.block_enabled"),
		LevelHeader:   c.GetString("server.headers.level"),
		ScoreHeader:   c.GetString("server.headers.score"),
		ReasonHeader:  c.GetString("server.headers.reason"),
		RelayAddress:  c.GetString("server.relay_address"),
		RelayPort:     c.GetInt("server.relay_port"),
		RelayEnabled:  c.GetBool("server.relay_enabled"),
		SubjectPrefix: c.GetString("server.subject_prefix"),
		ModifySubject: c.GetBool("server.modify_subject"),
	}
}

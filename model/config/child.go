package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Enable                 bool   `json:"enable" mapstructure:"enable" yaml:"enable"`
	Addr                   string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password               string `json:"password" mapstructure:"password" yaml:"password"`
	DB                     uint   `json:"db" mapstructure:"db" yaml:"db"`
	KeyPrefix              string `json:"key_prefix" mapstructure:"key_prefix" yaml:"key_prefix"`
	ConversationHistoryTTL int64  `json:"conversation_history_ttl" mapstructure:"conversation_history_ttl" yaml:"conversation_history_ttl"`
}

type Llm struct {
	Url         string   `json:"url" mapstructure:"url" yaml:"url"`
	Model       string   `json:"model" mapstructure:"model" yaml:"model"`
	Auth        string   `json:"auth" mapstructure:"auth" yaml:"auth"`
	Timeout     int64    `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	Temperature *float32 `json:"temperature" mapstructure:"temperature" yaml:"temperature"`
}

type Mcp struct {
	Enable bool   `json:"enable" mapstructure:"enable" yaml:"enable"`
	Path   string `json:"path" mapstructure:"path" yaml:"path"`
}

type Ai struct {
	MaxPromptLength uint  `json:"max_prompt_length" mapstructure:"max_prompt_length" yaml:"max_prompt_length"`
	LlmFallback     bool  `json:"llm_fallback" mapstructure:"llm_fallback" yaml:"llm_fallback"`
	HistoryLimit    int64 `json:"history_limit" mapstructure:"history_limit" yaml:"history_limit"`
	ReloadDebounce  int64 `json:"reload_debounce" mapstructure:"reload_debounce" yaml:"reload_debounce"`
}

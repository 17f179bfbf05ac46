package initialize

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/config"
	"gitee.com/taoJie_1/fin-assistant/model/enum"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultConfigPath = "config.yaml"
	envPrefix         = "FIN"
)

// New 加载配置文件并创建初始化器.
// 默认配置文件不存在时使用内置默认值, 环境变量 FIN_* 优先于配置文件
func New(configPath string) (*Initializer, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	// .env 不存在是正常情况
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setViperDefaults(v)

	i := &Initializer{}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
			return nil, fmt.Errorf("读取配置失败[u9ij]: %s %w", configPath, err)
		}
	} else {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			global.Log.Infof("配置文件变化[djiads]: %s", e.Name)
			oldConfig := global.Config.DeepCopy()
			if err := v.Unmarshal(global.Config); err != nil {
				global.Log.Errorf("解析配置失败: %v", err)
				return
			}
			handleConfig(global.Config)
			i.HandleConfigChange(oldConfig, global.Config)
		})
	}

	if err := v.Unmarshal(global.Config); err != nil {
		return nil, fmt.Errorf("出错[dhfal]: %w", err)
	}
	handleConfig(global.Config)

	return i, nil
}

// setViperDefaults 注册所有键, 使 AutomaticEnv 在没有配置文件时也能生效
func setViperDefaults(v *viper.Viper) {
	for key, value := range map[string]interface{}{
		"debug":                          false,
		"project_name":                   "",
		"gin_addr":                       "",
		"gin_log_path":                   "",
		"run_log_path":                   "",
		"log_retention_days":             0,
		"tz":                             "",
		"database.type":                  "",
		"database.sqlite_path":           "",
		"database.mysql_host":            "",
		"database.mysql_port":            "",
		"database.mysql_dbname":          "",
		"database.mysql_username":        "",
		"database.mysql_password":        "",
		"redis.enable":                   false,
		"redis.addr":                     "",
		"redis.password":                 "",
		"redis.db":                       0,
		"redis.key_prefix":               "",
		"redis.conversation_history_ttl": 0,
		"llm.url":                        "",
		"llm.model":                      "",
		"llm.auth":                       "",
		"llm.timeout":                    0,
		"ai.max_prompt_length":           0,
		"ai.llm_fallback":                false,
		"ai.history_limit":               0,
		"ai.reload_debounce":             -1,
		"mcp.enable":                     false,
		"mcp.path":                       "",
	} {
		v.SetDefault(key, value)
	}
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	if c.ProjectName == "" {
		c.ProjectName = "fin-assistant"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":80"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "Asia/Shanghai"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}
	if c.Database.Type == "" || c.Database.Type == "sqlite" {
		c.Database.Type = string(enum.SQLITE)
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "fin:"
	}
	if c.Redis.ConversationHistoryTTL == 0 {
		c.Redis.ConversationHistoryTTL = 3600 // 默认1小时
	}
	if c.Llm.Timeout == 0 {
		c.Llm.Timeout = 30
	}
	if c.Ai.MaxPromptLength == 0 {
		c.Ai.MaxPromptLength = 1000
	}
	if c.Ai.HistoryLimit == 0 {
		c.Ai.HistoryLimit = 20
	}
	// 0 表示保存后立即重载
	if c.Ai.ReloadDebounce < 0 {
		c.Ai.ReloadDebounce = 5
	}
	if c.Mcp.Path == "" {
		c.Mcp.Path = "/mcp"
	}
}

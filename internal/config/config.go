// Package config 提供配置加载和管理功能
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"keyword_chatbot/internal/responder"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置结构
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Session   SessionConfig   `yaml:"session"`
	Chatbot   ChatbotConfig   `yaml:"chatbot"`
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Host string `yaml:"host"` // 服务器监听地址
	Port int    `yaml:"port"` // 服务器监听端口
}

// WebSocketConfig WebSocket配置
type WebSocketConfig struct {
	ReadBufferSize  int           `yaml:"read_buffer_size"`  // 读缓冲区大小
	WriteBufferSize int           `yaml:"write_buffer_size"` // 写缓冲区大小
	PingPeriod      time.Duration `yaml:"ping_period"`       // 心跳间隔
	PongWait        time.Duration `yaml:"pong_wait"`         // 等待Pong响应的超时时间
}

// SessionConfig 会话配置
type SessionConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout"`   // 会话空闲超时，超时后回收
	SweepInterval time.Duration `yaml:"sweep_interval"` // 空闲会话扫描间隔
}

// ChatbotConfig 聊天机器人配置
type ChatbotConfig struct {
	Name   string        `yaml:"name"`   // 机器人显示名称
	Table  string        `yaml:"table"`  // 使用的关键词表名称
	Tables []TableConfig `yaml:"tables"` // 自定义关键词表
}

// TableConfig 关键词表配置，规则顺序即匹配优先级
type TableConfig struct {
	Name    string           `yaml:"name"`
	Default string           `yaml:"default"`
	Rules   []responder.Rule `yaml:"rules"`
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load 从文件加载配置
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return Parse(data)
}

// Parse 解析YAML配置内容
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &config, nil
}

// applyDefaults 设置默认值
func applyDefaults(config *Config) {
	if config.Server.Host == "" {
		config.Server.Host = "0.0.0.0"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.WebSocket.ReadBufferSize == 0 {
		config.WebSocket.ReadBufferSize = 1024
	}
	if config.WebSocket.WriteBufferSize == 0 {
		config.WebSocket.WriteBufferSize = 1024
	}
	if config.WebSocket.PingPeriod == 0 {
		config.WebSocket.PingPeriod = 30 * time.Second
	}
	if config.WebSocket.PongWait == 0 {
		config.WebSocket.PongWait = 60 * time.Second
	}
	if config.Session.IdleTimeout == 0 {
		config.Session.IdleTimeout = 30 * time.Minute
	}
	if config.Session.SweepInterval == 0 {
		config.Session.SweepInterval = time.Minute
	}
	if config.Chatbot.Name == "" {
		config.Chatbot.Name = "Chatbot"
	}
	if config.Chatbot.Table == "" {
		config.Chatbot.Table = responder.TableGreeting
	}
	for i := range config.Chatbot.Tables {
		if config.Chatbot.Tables[i].Default == "" {
			config.Chatbot.Tables[i].Default = responder.DefaultResponse
		}
	}
}

// validateConfig 验证配置是否有效
func validateConfig(config *Config) error {
	if config.Server.Port < 0 || config.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, config.Server.Port)
	}
	if config.WebSocket.PingPeriod >= config.WebSocket.PongWait {
		return ErrInvalidPingPeriod
	}
	if config.Session.IdleTimeout < 0 || config.Session.SweepInterval < 0 {
		return ErrInvalidSession
	}

	seen := make(map[string]bool)
	for i, table := range config.Chatbot.Tables {
		if table.Name == "" {
			return fmt.Errorf("第%d个关键词表: %w", i+1, ErrEmptyTableName)
		}
		if seen[table.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateTable, table.Name)
		}
		seen[table.Name] = true

		for j, rule := range table.Rules {
			if rule.Pattern == "" {
				return fmt.Errorf("关键词表 %s 第%d条规则: %w", table.Name, j+1, ErrEmptyPattern)
			}
			if rule.Response == "" {
				return fmt.Errorf("关键词表 %s 第%d条规则: %w", table.Name, j+1, ErrEmptyResponse)
			}
		}
	}

	if _, err := config.KeywordTable(); err != nil {
		return err
	}
	return nil
}

// Tables 返回所有可用的关键词表，配置中的同名表覆盖内置表
func (c *Config) Tables() map[string]responder.KeywordTable {
	tables := responder.Builtin()
	for _, t := range c.Chatbot.Tables {
		tables[t.Name] = responder.NewKeywordTable(t.Rules, t.Default)
	}
	return tables
}

// KeywordTable 返回当前启用的关键词表
func (c *Config) KeywordTable() (responder.KeywordTable, error) {
	return c.LookupTable(c.Chatbot.Table)
}

// LookupTable 按名称查找关键词表
func (c *Config) LookupTable(name string) (responder.KeywordTable, error) {
	table, ok := c.Tables()[name]
	if !ok {
		return responder.KeywordTable{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return table, nil
}

// WarnUnreachable 记录被遮蔽的关键词规则
func (c *Config) WarnUnreachable() int {
	count := 0
	for name, table := range c.Tables() {
		for _, s := range table.Unreachable() {
			log.Printf("关键词表 %s 第%d条规则 %q 被第%d条规则 %q 遮蔽，永远不会命中",
				name, s.Index+1, s.Rule.Pattern, s.ByIndex+1, s.By.Pattern)
			count++
		}
	}
	return count
}

// Addr 服务器监听地址
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

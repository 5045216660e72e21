package config

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读取可选的 config.yaml，再用环境变量覆盖
func Init() {
	once.Do(func() {
		cfg := defaultConfig()

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic(fmt.Errorf("配置文件解析失败: %w", err))
			}
		}

		// 环境变量优先级高于配置文件
		if err := envconfig.Process("pomelox", cfg); err != nil {
			panic(fmt.Errorf("环境变量解析失败: %w", err))
		}

		instance = cfg
	})
}

// Get 获取全局配置，必须先 Init
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8085",
		Prefix: "",
		Mode:   ModeDebug,
		JWT: JWT{
			AccessExpire: 7 * 24 * 3600,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
		Hour: Hour{
			MaxWorkHours:         12,
			SweepEnable:          true,
			SweepIntervalMinutes: 30,
		},
		Notify: Notify{
			Channel: "volunteer-sign-events",
		},
	}
}

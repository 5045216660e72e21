package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host   string `envconfig:"HOST"`
	Port   string `envconfig:"PORT"`
	Prefix string `envconfig:"PREFIX"`
	Mode   Mode   `envconfig:"MODE"`
	Mysql  Mysql
	Redis  Redis
	JWT    JWT
	Log    Log    `mapstructure:"Log"`
	Sentry Sentry `mapstructure:"Sentry"`
	OTel   OTel   `mapstructure:"OTel"`
	Hour   Hour   `mapstructure:"Hour"`
	Notify Notify `mapstructure:"Notify"`
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string  `envconfig:"SENTRY_DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"SENTRY_ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SENTRY_SAMPLE_RATE" mapstructure:"sample_rate"`
	Tracing     SentryTracing
}

type SentryTracing struct {
	SQLSlowThresholdMs   int `envconfig:"SENTRY_SQL_SLOW_MS" mapstructure:"sql_slow_ms"`
	RedisSlowThresholdMs int `envconfig:"SENTRY_REDIS_SLOW_MS" mapstructure:"redis_slow_ms"`
}

type OTel struct {
	Enable      bool   `envconfig:"OTEL_ENABLE" mapstructure:"enable"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" mapstructure:"service_name"`
	AgentHost   string `envconfig:"OTEL_AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"OTEL_AGENT_PORT" mapstructure:"agent_port"`
}

// Hour 志愿者工时相关配置
type Hour struct {
	// MaxWorkHours 单次签到的建议工作时长上限（小时）。交互签退超出后仍按实际时间落库，
	// 但返回超时警告；自动签退扫描则按 签到时间+上限 封顶
	MaxWorkHours int `envconfig:"HOUR_MAX_WORK_HOURS" mapstructure:"max_work_hours"`
	// SweepEnable 是否启用超时自动签退扫描
	SweepEnable bool `envconfig:"HOUR_SWEEP_ENABLE" mapstructure:"sweep_enable"`
	// SweepIntervalMinutes 扫描间隔（分钟）
	SweepIntervalMinutes int `envconfig:"HOUR_SWEEP_INTERVAL" mapstructure:"sweep_interval"`
}

// Notify 签到/签退成功后的尽力通知配置，通知失败不影响主流程
type Notify struct {
	Channel    string `envconfig:"NOTIFY_CHANNEL" mapstructure:"channel"`         // redis 频道名
	WebhookURL string `envconfig:"NOTIFY_WEBHOOK_URL" mapstructure:"webhook_url"` // 可选的 webhook 地址
}

package config

import (
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v2"
)

// SysConfig system configuration
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig admin/public web service configuration
type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

// DBConfig database configuration
type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// LogConfig logger configuration
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// SmtpConfig outbound mail configuration for lead notifications.
// Notifications are disabled when Host is empty.
type SmtpConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
}

// MediaConfig hosted asset upload endpoint configuration
type MediaConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	ApiKey   string `yaml:"api_key" json:"api_key"`
	Folder   string `yaml:"folder" json:"folder"`
}

type AppConfig struct {
	System   SysConfig   `yaml:"system" json:"system"`
	Web      WebConfig   `yaml:"web" json:"web"`
	Database DBConfig    `yaml:"database" json:"database"`
	Logger   LogConfig   `yaml:"logger" json:"logger"`
	Smtp     SmtpConfig  `yaml:"smtp" json:"smtp"`
	Media    MediaConfig `yaml:"media" json:"media"`
}

func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(path.Join(c.System.Workdir, "logs"), 0755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "data"), 0755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "metrics"), 0755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "TripVeda",
		Location: "Asia/Kolkata",
		Workdir:  "/var/tripveda",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "9b6de5cc-0001-1203-xxtt-0f568ac9da37",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "tripveda_v1",
		User:     "postgres",
		Passwd:   "root",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/tripveda/tripveda.log",
	},
	Smtp: SmtpConfig{
		Port: 587,
	},
	Media: MediaConfig{
		Folder: "tripveda",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvInt64Value(name string, f func(v int64)) {
	var evalue = os.Getenv(name)
	if evalue == "" {
		return
	}
	p, err := strconv.ParseInt(evalue, 10, 64)
	if err == nil {
		f(p)
	}
}

// LoadConfig loads the yaml configuration file and applies environment overrides.
// A missing file falls back to DefaultAppConfig so the binary can start with
// nothing but environment variables.
func LoadConfig(cfile string) *AppConfig {
	if cfile == "" {
		cfile = "tripveda.yml"
	}
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if data, err := os.ReadFile(cfile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	}

	setEnvValue("TRIPVEDA_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("TRIPVEDA_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })
	setEnvValue("TRIPVEDA_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvInt64Value("TRIPVEDA_WEB_PORT", func(v int64) { cfg.Web.Port = int(v) })
	setEnvValue("TRIPVEDA_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("TRIPVEDA_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvInt64Value("TRIPVEDA_DB_PORT", func(v int64) { cfg.Database.Port = int(v) })
	setEnvValue("TRIPVEDA_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("TRIPVEDA_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("TRIPVEDA_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("TRIPVEDA_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvInt64Value("TRIPVEDA_SMTP_PORT", func(v int64) { cfg.Smtp.Port = int(v) })
	setEnvValue("TRIPVEDA_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("TRIPVEDA_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })
	setEnvValue("TRIPVEDA_SMTP_FROM", func(v string) { cfg.Smtp.From = v })
	setEnvValue("TRIPVEDA_MEDIA_ENDPOINT", func(v string) { cfg.Media.Endpoint = v })
	setEnvValue("TRIPVEDA_MEDIA_APIKEY", func(v string) { cfg.Media.ApiKey = v })

	return cfg
}

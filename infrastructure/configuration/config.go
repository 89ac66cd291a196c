package configuration

import (
	"fmt"
	"os"
	"strconv"

	"playlist-grid/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
	YouTube     YouTube     `json:"youtube"`
	Page        Page        `json:"page"`
}

type App struct {
	Port         int      `json:"port"`
	SecretKey    string   `json:"secretKey"`
	TLSEnabled   bool     `json:"tlsEnabled"`
	TLSCertFile  string   `json:"tlsCertFile"`
	TLSKeyFile   string   `json:"tlsKeyFile"`
	AllowOrigins []string `json:"allowOrigins"`
}

type Database struct {
	// Vendor selects the settings store: "postgres", "mssql" or "memory".
	Vendor string `json:"vendor"`
	Psql   Db     `json:"psql"`
	Mssql  Db     `json:"mssql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSLMode  string `json:"sslMode"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	Username string `json:"username"`
	DB       int    `json:"db"`
}

type Logger struct {
	Format string `json:"format"`
	Level  string `json:"level"`
}

// YouTube seeds the settings record when no settings store has one yet
type YouTube struct {
	APIKey         string `json:"apiKey"`
	PlaylistID     string `json:"playlistId"`
	MaxResults     int    `json:"maxResults"`
	Layout         string `json:"layout"`
	CustomCSS      string `json:"customCss"`
	Endpoint       string `json:"endpoint"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Page describes the public page served at "/"
type Page struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

var C Config

func init() {
	LoadEnvFromFile("config.env", ".env")
	LoadConfig()
	initApp(&C)
	initDatabase(&C)
	initRedis(&C)
	initPage(&C)
	logger.Configure(C.Logger.Format, C.Logger.Level)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// APP_PORT -> PORT -> config -> 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			C.App.TLSEnabled = false
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; admin routes will reject every token. Provide SECRET_KEY via environment.")
	}
}

func initDatabase(C *Config) {
	if v := os.Getenv("DB_VENDOR"); v != "" {
		C.Database.Vendor = v
	}
	if C.Database.Vendor == "" {
		C.Database.Vendor = "memory"
	}

	setIfEmpty(&C.Database.Psql.Name, os.Getenv("DB_NAME"))
	setIfEmpty(&C.Database.Psql.Host, os.Getenv("DB_HOST"))
	setIfEmpty(&C.Database.Psql.Port, os.Getenv("DB_PORT"))
	setIfEmpty(&C.Database.Psql.User, os.Getenv("DB_USER"))
	setIfEmpty(&C.Database.Psql.Password, os.Getenv("DB_PASSWORD"))
	setIfEmpty(&C.Database.Psql.Port, "5432")
	setIfEmpty(&C.Database.Psql.SSLMode, "disable")

	// Azure SQL / SQL Server
	setIfEmpty(&C.Database.Mssql.Name, os.Getenv("MSSQL_DB_NAME"))
	setIfEmpty(&C.Database.Mssql.Host, os.Getenv("MSSQL_HOST"))
	setIfEmpty(&C.Database.Mssql.Port, os.Getenv("MSSQL_PORT"))
	setIfEmpty(&C.Database.Mssql.User, os.Getenv("MSSQL_USER"))
	setIfEmpty(&C.Database.Mssql.Password, os.Getenv("MSSQL_PASSWORD"))
	setIfEmpty(&C.Database.Mssql.Host, "localhost")
	setIfEmpty(&C.Database.Mssql.Port, "1433")
}

func initRedis(C *Config) {
	setIfEmpty(&C.RedisClient.Host, os.Getenv("REDIS_HOST"))
	setIfEmpty(&C.RedisClient.Port, os.Getenv("REDIS_PORT"))
	setIfEmpty(&C.RedisClient.Username, os.Getenv("REDIS_USERNAME"))
	setIfEmpty(&C.RedisClient.Password, os.Getenv("REDIS_PASSWORD"))
	if C.RedisClient.Host != "" {
		setIfEmpty(&C.RedisClient.Port, "6379")
	}
}

func initPage(C *Config) {
	setIfEmpty(&C.Page.Title, "YouTube Playlist Grid")
	setIfEmpty(&C.Page.Content, "[youtube_playlist_grid]")
}

// RedisAddr returns host:port, or "" when Redis is not configured.
func (r RedisClient) RedisAddr() string {
	if r.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

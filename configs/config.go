package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App       `mapstructure:"app"`
	Postgres  `mapstructure:"postgres"`
	Facebook  `mapstructure:"facebook"`
	Questions `mapstructure:"questions"`
	Session   `mapstructure:"session"`
	Redis     `mapstructure:"redis"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Facebook struct
type Facebook struct {
	PageAccessToken string `mapstructure:"page_access_token"`
	VerifyToken     string `mapstructure:"verify_token"`
	GraphURL        string `mapstructure:"graph_url"`
	GraphURLProfile string `mapstructure:"graph_url_profile"`
}

// Questions struct
type Questions struct {
	URL             string `mapstructure:"url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

// Session struct
type Session struct {
	TTLMinutes int    `mapstructure:"ttl_minutes"`
	Store      string `mapstructure:"store"`
}

// Redis struct
type Redis struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}

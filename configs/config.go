package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"JerseyStoreAPI/configs/loader"
)

type DBConfig struct {
	User           string
	Password       string
	Name           string
	Host           string
	Port           string
	ConnectTimeout time.Duration
	Retries        int
}

type RedisConfig struct {
	Enabled      bool
	Host         string
	DB           int
	Password     string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	JerseyTTL    time.Duration
}

type KafkaConfig struct {
	Enabled          bool
	BootstrapServers string
	OrdersTopic      string
	FlushTimeout     int
}

type HttpConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	FilePath string
}

type Config struct {
	DB   DBConfig
	RD   RedisConfig
	KF   KafkaConfig
	HTTP HttpConfig
	Log  LogConfig
	Env  string
}

func MustLoad(loader loader.ConfigLoader) *Config {
	const op = "configs.MustLoad"

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	envs, err := loader.Load()
	if err != nil {
		log.Fatalf("%s: config load failed: %+v", op, err)
	}

	cfg := &Config{
		DB: DBConfig{
			User:           envs["POSTGRES_USER"],
			Password:       envs["POSTGRES_PASSWORD"],
			Name:           envs["POSTGRES_DB"],
			Host:           envs["POSTGRES_HOST"],
			Port:           getEnvOrDefault(envs["POSTGRES_PORT"], "5432"),
			ConnectTimeout: getEnvAsDuration(envs["POSTGRES_CONNECT_TIMEOUT"], 5*time.Second),
			Retries:        getEnvAsInt(envs["POSTGRES_RETRIES"], 3),
		},
		RD: RedisConfig{
			Enabled:      getEnvAsBool(envs["REDIS_ENABLED"], false),
			Host:         envs["REDIS_HOST"],
			DB:           getEnvAsInt(envs["REDIS_DB"], 0),
			Password:     envs["REDIS_PASSWORD"],
			DialTimeout:  getEnvAsDuration(envs["REDIS_DIAL_TIMEOUT"], 5*time.Second),
			ReadTimeout:  getEnvAsDuration(envs["REDIS_READ_TIMEOUT"], 5*time.Second),
			WriteTimeout: getEnvAsDuration(envs["REDIS_WRITE_TIMEOUT"], 5*time.Second),
			JerseyTTL:    getEnvAsDuration(envs["REDIS_JERSEY_TTL"], 10*time.Minute),
		},
		KF: KafkaConfig{
			Enabled:          getEnvAsBool(envs["KAFKA_ENABLED"], false),
			BootstrapServers: envs["KAFKA_BOOTSTRAP_SERVERS"],
			OrdersTopic:      getEnvOrDefault(envs["KAFKA_ORDERS_TOPIC"], "orders.placed"),
			FlushTimeout:     getEnvAsInt(envs["KAFKA_FLUSH_TIMEOUT"], 5000),
		},
		HTTP: HttpConfig{
			Port:         getEnvOrDefault(envs["HTTP_PORT"], "8080"),
			ReadTimeout:  getEnvAsDuration(envs["HTTP_READ_TIMEOUT"], 10*time.Second),
			WriteTimeout: getEnvAsDuration(envs["HTTP_WRITE_TIMEOUT"], 10*time.Second),
			IdleTimeout:  getEnvAsDuration(envs["HTTP_IDLE_TIMEOUT"], 60*time.Second),
		},
		Log: LogConfig{
			FilePath: getEnvOrDefault(envs["LOG_FILE"], "./logs/app.log"),
		},
		Env: env,
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("%s: error validation config: %+v", op, err)
	}

	return cfg
}

func validateConfig(cfg *Config) error {
	if cfg.DB.User == "" || cfg.DB.Password == "" || cfg.DB.Name == "" ||
		cfg.DB.Host == "" || cfg.DB.Port == "" || cfg.DB.Retries <= 0 || cfg.DB.ConnectTimeout <= 0*time.Second {
		return fmt.Errorf("incorrect database config fields")
	}

	if cfg.RD.Enabled {
		if cfg.RD.Host == "" || cfg.RD.DialTimeout <= 0*time.Second || cfg.RD.ReadTimeout <= 0*time.Second ||
			cfg.RD.WriteTimeout <= 0*time.Second || cfg.RD.JerseyTTL <= 0*time.Second {
			return fmt.Errorf("incorrect cache config fields")
		}
	}

	if cfg.KF.Enabled {
		if cfg.KF.BootstrapServers == "" || cfg.KF.OrdersTopic == "" || cfg.KF.FlushTimeout <= 0 {
			return fmt.Errorf("incorrect kafka config fields")
		}
	}

	if cfg.HTTP.Port == "" || cfg.HTTP.ReadTimeout <= 0*time.Second || cfg.HTTP.WriteTimeout <= 0*time.Second ||
		cfg.HTTP.IdleTimeout <= 0*time.Second {
		return fmt.Errorf("incorrect http config fields")
	}
	return nil
}

func getEnvOrDefault(strValue, defaultValue string) string {
	if strValue == "" {
		return defaultValue
	}
	return strValue
}

func getEnvAsDuration(strValue string, defaultValue time.Duration) time.Duration {
	const op = "configs.getEnvAsDuration"
	if strValue == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(strValue)
	if err != nil {
		log.Printf("%s: forbidden value for %s, using default: %v", op, strValue, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsInt(strValue string, defaultValue int) int {
	const op = "configs.getEnvAsInt"
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("%s: forbidden value for %s, using default: %v", op, strValue, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(strValue string, defaultValue bool) bool {
	const op = "configs.getEnvAsBool"
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strValue)
	if err != nil {
		log.Printf("%s: forbidden value for %s, using default: %v", op, strValue, defaultValue)
		return defaultValue
	}
	return value
}

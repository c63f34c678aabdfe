package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	AuthAPI   AuthAPI   `mapstructure:",squash"`
	SalesAPI  SalesAPI  `mapstructure:",squash"`
	SalesSync SalesSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// AuthAPI é o colaborador externo de autenticação (login/registro/me)
type AuthAPI struct {
	URL            string `mapstructure:"auth_api_url"`
	TimeoutSeconds int    `mapstructure:"auth_api_timeout_seconds"`
}

// SalesAPI é o colaborador externo de dados de vendas
type SalesAPI struct {
	URL            string `mapstructure:"sales_api_url"`
	PageSize       int    `mapstructure:"sales_api_page_size"`
	TimeoutSeconds int    `mapstructure:"sales_api_timeout_seconds"`
}

type SalesSync struct {
	CronSchedule string `mapstructure:"sales_sync_cron"`
	Enabled      bool   `mapstructure:"sales_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_API_URL", "http://localhost:4000/auth")
	viper.SetDefault("AUTH_API_TIMEOUT_SECONDS", 10)

	viper.SetDefault("SALES_API_URL", "http://localhost:4000")
	viper.SetDefault("SALES_API_PAGE_SIZE", 1000)
	viper.SetDefault("SALES_API_TIMEOUT_SECONDS", 30)

	// Defaults para a sincronização periódica de vendas
	viper.SetDefault("SALES_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SALES_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

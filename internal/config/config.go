package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Origens de dataset suportadas
const (
	SourceFile     = "file"
	SourceRemote   = "remote"
	SourcePostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Remote        Remote        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"environment"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Source string   `mapstructure:"dataset_source"`
	Dir    string   `mapstructure:"dataset_dir"`
	Names  []string `mapstructure:"dataset_names"`
}

type Remote struct {
	URL     string        `mapstructure:"remote_dashboard_url"`
	Timeout time.Duration `mapstructure:"remote_dashboard_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATASET_SOURCE", SourceFile)
	viper.SetDefault("DATASET_DIR", "./data")
	viper.SetDefault("DATASET_NAMES", "AreaChart,BarChart,PieChart")

	viper.SetDefault("REMOTE_DASHBOARD_URL", "http://localhost:3000")
	viper.SetDefault("REMOTE_DASHBOARD_TIMEOUT", "30s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_RELOAD_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DATASET_RELOAD_ENABLED", true)
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
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
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

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceFile:
		if c.Dataset.Dir == "" {
			return fmt.Errorf("DATASET_DIR é obrigatório para a origem %q", SourceFile)
		}
	case SourceRemote:
		if c.Remote.URL == "" {
			return fmt.Errorf("REMOTE_DASHBOARD_URL é obrigatório para a origem %q", SourceRemote)
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	if len(c.Dataset.Names) == 0 {
		return fmt.Errorf("DATASET_NAMES deve conter ao menos um dataset")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}

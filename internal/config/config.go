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

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Upload        Upload        `mapstructure:",squash"`
	UploadCleanup UploadCleanup `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	SSLMode      string `mapstructure:"database_sslmode"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
	AutoSync     bool   `mapstructure:"database_auto_sync"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Upload struct {
	Dir       string `mapstructure:"upload_dir"`
	MaxSizeMB int64  `mapstructure:"upload_max_size_mb"`
}

// MaxBytes retorna o limite do corpo multipart em bytes
func (u Upload) MaxBytes() int64 {
	return u.MaxSizeMB << 20
}

type UploadCleanup struct {
	CronSchedule string        `mapstructure:"upload_cleanup_cron"`
	MaxAge       time.Duration `mapstructure:"upload_cleanup_max_age"`
	Enabled      bool          `mapstructure:"upload_cleanup_enabled"`
}

type Dashboard struct {
	DateColumn  string `mapstructure:"dashboard_date_column"`
	MaxPageSize int    `mapstructure:"dashboard_max_page_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_AUTO_SYNC", true) // Cria as tabelas na inicialização

	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 32)

	// Limpeza de uploads que ficaram para trás após falhas de importação
	viper.SetDefault("UPLOAD_CLEANUP_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("UPLOAD_CLEANUP_MAX_AGE", "24h")
	viper.SetDefault("UPLOAD_CLEANUP_ENABLED", false)

	viper.SetDefault("DASHBOARD_DATE_COLUMN", "SaleDate")
	viper.SetDefault("DASHBOARD_MAX_PAGE_SIZE", 500)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text") // json em produção
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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

func (c *Config) validate() error {
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("UPLOAD_MAX_SIZE_MB deve ser positivo, recebido %d", c.Upload.MaxSizeMB)
	}
	if c.Dashboard.MaxPageSize <= 0 {
		return fmt.Errorf("DASHBOARD_MAX_PAGE_SIZE deve ser positivo, recebido %d", c.Dashboard.MaxPageSize)
	}
	if c.UploadCleanup.Enabled && c.UploadCleanup.MaxAge <= 0 {
		return fmt.Errorf("UPLOAD_CLEANUP_MAX_AGE deve ser positivo quando a limpeza está habilitada")
	}
	return nil
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

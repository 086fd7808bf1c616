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
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Meta    Meta    `mapstructure:",squash"`
	Sheets  Sheets  `mapstructure:",squash"`
	AdsSync AdsSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"meta_url"`
	Version        string        `mapstructure:"meta_version"`
	RequestTimeout time.Duration `mapstructure:"-"`
	PageLimit      int           `mapstructure:"meta_page_limit"`
}

type Sheets struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	TabName         string `mapstructure:"sheet_tab"`
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

type AdsSync struct {
	ConfigFile         string `mapstructure:"config_file"`
	CutoffDate         string `mapstructure:"ads_sync_cutoff_date"`
	CronSchedule       string `mapstructure:"ads_sync_cron"`
	Enabled            bool   `mapstructure:"ads_sync_enabled"`
	MaxAttempts        int    `mapstructure:"ads_sync_max_attempts"`
	BackoffBaseSeconds int    `mapstructure:"ads_sync_backoff_base_seconds"`
	BackoffMaxSeconds  int    `mapstructure:"ads_sync_backoff_max_seconds"`
	RequestTimeoutSecs int    `mapstructure:"ads_sync_request_timeout_seconds"`

	Cutoff time.Time `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v17.0")
	viper.SetDefault("META_PAGE_LIMIT", 5000)

	viper.SetDefault("SPREADSHEET_ID", "1Pl24edGAhoovXPtHTTugsb3QM4YbcBsMjg6lBk9BXOs")
	viper.SetDefault("SHEET_TAB", "Sheet1")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "service-account.json")

	// Arquivo JSON com accessToken e adAccountId da conta de anúncios
	viper.SetDefault("CONFIG_FILE", "passkeys.json")

	// Defaults para a sincronização diária de anúncios
	viper.SetDefault("ADS_SYNC_CUTOFF_DATE", "2024-09-01")    // Anúncios criados antes dessa data são ignorados
	viper.SetDefault("ADS_SYNC_CRON", "0 6 * * *")            // Todos os dias às 6h da manhã
	viper.SetDefault("ADS_SYNC_ENABLED", false)               // Por padrão a sync roda via endpoint /sync
	viper.SetDefault("ADS_SYNC_MAX_ATTEMPTS", 3)              // Total de tentativas por chamada
	viper.SetDefault("ADS_SYNC_BACKOFF_BASE_SECONDS", 4)      // Backoff exponencial: 4s, 8s...
	viper.SetDefault("ADS_SYNC_BACKOFF_MAX_SECONDS", 10)      // ...limitado a 10s entre tentativas
	viper.SetDefault("ADS_SYNC_REQUEST_TIMEOUT_SECONDS", 10)  // Timeout das chamadas à API do Meta

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Meta.RequestTimeout = time.Duration(config.AdsSync.RequestTimeoutSecs) * time.Second

	cutoff, err := time.Parse(time.DateOnly, config.AdsSync.CutoffDate)
	if err != nil {
		return nil, fmt.Errorf("ADS_SYNC_CUTOFF_DATE inválida (%q): %w", config.AdsSync.CutoffDate, err)
	}
	config.AdsSync.Cutoff = cutoff

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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}

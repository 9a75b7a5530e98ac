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

const (
	DatasetSourceGenerator = "generator"
	DatasetSourcePostgres  = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Thresholds    Thresholds    `mapstructure:",squash"`
	Cache         Cache         `mapstructure:",squash"`
	DatasetReseed DatasetReseed `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Dataset define de onde vem o dataset e os parâmetros do gerador sintético
type Dataset struct {
	Source        string    `mapstructure:"dataset_source"`
	Seed          uint64    `mapstructure:"dataset_seed"`
	HistoryDays   int       `mapstructure:"dataset_history_days"`
	Stores        int       `mapstructure:"dataset_stores"`
	RepsPerStore  int       `mapstructure:"dataset_reps_per_store"`
	Products      int       `mapstructure:"dataset_products"`
	DailyLeads    int       `mapstructure:"dataset_daily_leads"`
	EndDate       string    `mapstructure:"dataset_end_date"` // YYYY-MM-DD, vazio usa ontem
	EndDateParsed time.Time `mapstructure:"-"`
}

type Thresholds struct {
	MERGreen             float64 `mapstructure:"threshold_mer_green"`
	MERYellow            float64 `mapstructure:"threshold_mer_yellow"`
	UnderperformingRatio float64 `mapstructure:"threshold_underperforming_ratio"`
	NeedsTrainingRate    float64 `mapstructure:"threshold_needs_training_rate"`
	RepRevenueTarget     float64 `mapstructure:"threshold_rep_revenue_target"`
	ComparisonEpsilon    float64 `mapstructure:"threshold_comparison_epsilon"`
}

type Cache struct {
	Size int `mapstructure:"cache_size"`
}

type DatasetReseed struct {
	CronSchedule string `mapstructure:"dataset_reseed_cron"`
	Enabled      bool   `mapstructure:"dataset_reseed_enabled"`
	WarmUpDays   int    `mapstructure:"dataset_reseed_warm_up_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceGenerator)
	viper.SetDefault("DATASET_SEED", 42)
	viper.SetDefault("DATASET_HISTORY_DAYS", 180)
	viper.SetDefault("DATASET_STORES", 8)
	viper.SetDefault("DATASET_REPS_PER_STORE", 4)
	viper.SetDefault("DATASET_PRODUCTS", 12)
	viper.SetDefault("DATASET_DAILY_LEADS", 6) // leads por loja por dia, em média
	viper.SetDefault("DATASET_END_DATE", "")

	// Limites de classificação
	viper.SetDefault("THRESHOLD_MER_GREEN", 5.0)
	viper.SetDefault("THRESHOLD_MER_YELLOW", 3.0)
	viper.SetDefault("THRESHOLD_UNDERPERFORMING_RATIO", 0.8)
	viper.SetDefault("THRESHOLD_NEEDS_TRAINING_RATE", 10.0)
	viper.SetDefault("THRESHOLD_REP_REVENUE_TARGET", 50000.0)
	viper.SetDefault("THRESHOLD_COMPARISON_EPSILON", 1e-9)

	viper.SetDefault("CACHE_SIZE", 256)

	viper.SetDefault("DATASET_RESEED_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("DATASET_RESEED_ENABLED", false)
	viper.SetDefault("DATASET_RESEED_WARM_UP_DAYS", 30)

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

	// O .env é opcional, as variáveis já foram carregadas pelo godotenv
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

// Validate confere os valores que o motor de análise não aceita
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceGenerator, DatasetSourcePostgres:
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %s", c.Dataset.Source)
	}

	if c.Dataset.EndDate != "" {
		endDate, err := time.Parse(time.DateOnly, c.Dataset.EndDate)
		if err != nil {
			return fmt.Errorf("DATASET_END_DATE inválido: %w", err)
		}
		c.Dataset.EndDateParsed = endDate
	}

	if c.Dataset.HistoryDays <= 0 || c.Dataset.Stores <= 0 || c.Dataset.Products <= 0 {
		return fmt.Errorf("parâmetros do dataset devem ser positivos")
	}

	if c.Thresholds.MERYellow > c.Thresholds.MERGreen {
		return fmt.Errorf("THRESHOLD_MER_YELLOW (%.2f) maior que THRESHOLD_MER_GREEN (%.2f)",
			c.Thresholds.MERYellow, c.Thresholds.MERGreen)
	}

	if c.Cache.Size <= 0 {
		return fmt.Errorf("CACHE_SIZE deve ser positivo")
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

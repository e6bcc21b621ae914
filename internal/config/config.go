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

// Políticas de falha na avaliação de campanhas
const (
	FailurePolicyAbort   = "abort"
	FailurePolicyIsolate = "isolate"
)

// Drivers de armazenamento suportados
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	DecisionEngine     DecisionEngine     `mapstructure:",squash"`
	CampaignEvaluation CampaignEvaluation `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
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

type DecisionEngine struct {
	StrictMode            bool          `mapstructure:"decision_engine_strict_mode"`
	CampaignFailurePolicy string        `mapstructure:"decision_engine_campaign_failure_policy"`
	RuleCacheTTL          time.Duration `mapstructure:"decision_engine_rule_cache_ttl"`
}

type CampaignEvaluation struct {
	CronSchedule string `mapstructure:"campaign_evaluation_cron"`
	Enabled      bool   `mapstructure:"campaign_evaluation_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/performance?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DECISION_ENGINE_STRICT_MODE", false)
	viper.SetDefault("DECISION_ENGINE_CAMPAIGN_FAILURE_POLICY", FailurePolicyIsolate)
	viper.SetDefault("DECISION_ENGINE_RULE_CACHE_TTL", "5m")

	// Avaliação periódica de campanhas ativas
	viper.SetDefault("CAMPAIGN_EVALUATION_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("CAMPAIGN_EVALUATION_ENABLED", false)

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

// Validate verifica valores enumerados da configuração
func (c *Config) Validate() error {
	switch c.DecisionEngine.CampaignFailurePolicy {
	case FailurePolicyAbort, FailurePolicyIsolate:
	default:
		return fmt.Errorf("política de falha inválida: %q (valores aceitos: %s, %s)",
			c.DecisionEngine.CampaignFailurePolicy, FailurePolicyAbort, FailurePolicyIsolate)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("driver de banco de dados inválido: %q", c.Database.Driver)
	}

	if c.DecisionEngine.RuleCacheTTL < 0 {
		return fmt.Errorf("ttl do cache de regras não pode ser negativo: %s", c.DecisionEngine.RuleCacheTTL)
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

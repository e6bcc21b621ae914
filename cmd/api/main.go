package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-decision-api/infrastructure/database/postgres"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository/memory"
	"github.com/vfg2006/performance-decision-api/internal/api"
	"github.com/vfg2006/performance-decision-api/internal/api/handler"
	"github.com/vfg2006/performance-decision-api/internal/config"
	"github.com/vfg2006/performance-decision-api/internal/scheduler"
	"github.com/vfg2006/performance-decision-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/internal/usecases/monitoring"
	"github.com/vfg2006/performance-decision-api/pkg/log"
)

// repositories agrupa os repositórios usados pelos casos de uso
type repositories struct {
	rules           repository.RuleRepository
	metrics         repository.MetricSnapshotRepository
	recommendations repository.RecommendationRepository
	publications    repository.PublicationRepository
	campaigns       repository.CampaignRepository
	database        handler.Pinger
	close           func()
}

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := newRepositories(ctx, cfg)
	defer repos.close()

	ruleRepo := repository.NewCachedRuleRepository(repos.rules, cfg.DecisionEngine.RuleCacheTTL)

	decisionEngine := deciding.NewService(
		ruleRepo,
		repos.metrics,
		repos.recommendations,
		repos.publications,
		cfg.DecisionEngine,
	)

	performanceService := monitoring.NewService(repos.publications, repos.metrics, decisionEngine)

	catalog := cataloging.NewService(repos.campaigns, repos.publications, repos.metrics, repos.recommendations)

	campaignEvaluationService := scheduler.NewCampaignEvaluationService(repos.campaigns, decisionEngine, cfg)
	if err := campaignEvaluationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de avaliação de campanhas")
	} else {
		logrus.Info("Agendador de avaliação de campanhas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		DecisionEngine:            decisionEngine,
		PerformanceService:        performanceService,
		Catalog:                   catalog,
		CampaignEvaluationService: campaignEvaluationService,
		Database:                  repos.database,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// changeToSourceDir permite encontrar o .env ao executar via go run
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// newRepositories cria os repositórios de acordo com o driver configurado
func newRepositories(ctx context.Context, cfg *config.Config) repositories {
	if cfg.Database.Driver == config.DriverMemory {
		logrus.Warn("Usando armazenamento em memória, os dados serão perdidos ao reiniciar")

		store := memory.NewStore()
		if err := store.SeedRules(deciding.DefaultRules()); err != nil {
			logrus.WithError(err).Fatal("Erro ao carregar regras padrão")
		}

		return repositories{
			rules:           store,
			metrics:         store,
			recommendations: store,
			publications:    store,
			campaigns:       store,
			close:           func() {},
		}
	}

	conn := pgconn(ctx, cfg.Database)

	return repositories{
		rules:           repository.NewRuleRepository(conn),
		metrics:         repository.NewMetricSnapshotRepository(conn),
		recommendations: repository.NewRecommendationRepository(conn),
		publications:    repository.NewPublicationRepository(conn),
		campaigns:       repository.NewCampaignRepository(conn),
		database:        conn,
		close: func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		},
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

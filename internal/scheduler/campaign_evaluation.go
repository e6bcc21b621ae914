package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/internal/config"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/metrics"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
)

// CampaignEvaluationConfig representa a configuração do agendador de avaliação de campanhas
type CampaignEvaluationConfig struct {
	CronSchedule string
	Enabled      bool
}

// CampaignEvaluationSummary resume uma execução da avaliação de campanhas
type CampaignEvaluationSummary struct {
	Campaigns              int `json:"campaigns"`
	FailedCampaigns        int `json:"failed_campaigns"`
	PublicationsEvaluated  int `json:"publications_evaluated"`
	PublicationsFailed     int `json:"publications_failed"`
	RecommendationsCreated int `json:"recommendations_created"`
}

// CampaignEvaluationService gerencia o agendamento e execução da avaliação periódica das campanhas ativas
type CampaignEvaluationService struct {
	scheduler      *gocron.Scheduler
	config         CampaignEvaluationConfig
	campaignRepo   repository.CampaignRepository
	decisionEngine deciding.DecisionEngine
	runRunning     bool
	runMutex       sync.Mutex
	lastStartedAt  time.Time
	lastFinishedAt time.Time
	lastSummary    *CampaignEvaluationSummary
}

// NewCampaignEvaluationService cria uma nova instância do serviço de avaliação de campanhas
func NewCampaignEvaluationService(
	campaignRepo repository.CampaignRepository,
	decisionEngine deciding.DecisionEngine,
	appConfig *config.Config,
) *CampaignEvaluationService {
	evaluationConfig := CampaignEvaluationConfig{
		CronSchedule: appConfig.CampaignEvaluation.CronSchedule,
		Enabled:      appConfig.CampaignEvaluation.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": evaluationConfig.CronSchedule,
		"enabled":       evaluationConfig.Enabled,
	}).Info("Configuração do agendador de avaliação de campanhas carregada")

	return &CampaignEvaluationService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         evaluationConfig,
		campaignRepo:   campaignRepo,
		decisionEngine: decisionEngine,
	}
}

// Start inicia o agendador
func (s *CampaignEvaluationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Avaliação agendada de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de avaliação de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.evaluateAllCampaigns(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar avaliação de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de avaliação de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// evaluateAllCampaigns avalia sequencialmente todas as campanhas ativas.
// Execuções sobrepostas são ignoradas.
func (s *CampaignEvaluationService) evaluateAllCampaigns(ctx context.Context) *CampaignEvaluationSummary {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		metrics.SchedulerRunsTotal.WithLabelValues("skipped").Inc()
		logrus.Info("Avaliação de campanhas já em andamento, ignorando")
		return nil
	}
	s.runRunning = true
	startTime := time.Now()
	s.lastStartedAt = startTime
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	logrus.Info("Iniciando avaliação de todas as campanhas ativas")

	campaigns, err := s.campaignRepo.ListCampaigns(ctx, domain.CampaignFilter{
		Statuses: []domain.CampaignStatus{domain.CampaignStatusActive},
	})
	if err != nil {
		metrics.SchedulerRunsTotal.WithLabelValues("failed").Inc()
		logrus.WithError(err).Error("Erro ao buscar campanhas ativas para avaliação")
		return nil
	}

	summary := &CampaignEvaluationSummary{Campaigns: len(campaigns)}

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			logrus.Warn("Avaliação de campanhas interrompida pelo cancelamento do contexto")
			break
		}

		result, err := s.decisionEngine.EvaluateCampaign(ctx, campaign.ID)
		if err != nil {
			summary.FailedCampaigns++
			logrus.WithFields(logrus.Fields{
				"campaign_id":   campaign.ID,
				"campaign_name": campaign.Name,
				"error":         err.Error(),
			}).Error("Erro ao avaliar campanha")
			continue
		}

		summary.PublicationsEvaluated += result.EvaluatedCount
		summary.PublicationsFailed += result.FailedCount
		for _, evaluation := range result.Results {
			summary.RecommendationsCreated += evaluation.RecommendationsCreated
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id":   campaign.ID,
			"campaign_name": campaign.Name,
			"evaluated":     result.EvaluatedCount,
			"failed":        result.FailedCount,
		}).Info("Campanha avaliada pelo agendador")
	}

	status := "success"
	if summary.FailedCampaigns > 0 {
		status = "failed"
	}
	metrics.SchedulerRunsTotal.WithLabelValues(status).Inc()

	logrus.WithFields(logrus.Fields{
		"duration":                time.Since(startTime).String(),
		"campaigns":               summary.Campaigns,
		"failed_campaigns":        summary.FailedCampaigns,
		"publications_evaluated":  summary.PublicationsEvaluated,
		"recommendations_created": summary.RecommendationsCreated,
	}).Info("Avaliação de campanhas concluída")

	s.runMutex.Lock()
	s.lastFinishedAt = time.Now()
	s.lastSummary = summary
	s.runMutex.Unlock()

	return summary
}

// TriggerManualSync inicia manualmente uma avaliação de todas as campanhas ativas
func (s *CampaignEvaluationService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Avaliação de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando avaliação manual de campanhas")
	go s.evaluateAllCampaigns(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CampaignEvaluationService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":          s.config.Enabled,
		"cron":             s.config.CronSchedule,
		"running":          s.runRunning,
		"last_started_at":  s.lastStartedAt,
		"last_finished_at": s.lastFinishedAt,
		"last_summary":     s.lastSummary,
	}
}

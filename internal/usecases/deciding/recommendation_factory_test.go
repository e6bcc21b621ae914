package deciding

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCalculateSeverity(t *testing.T) {
	tests := []struct {
		name     string
		priority int
		value    float64
		want     domain.Severity
	}{
		// threshold 100: a divergência percentual é a diferença absoluta
		{name: "crítica 24.9%", priority: 1, value: 75.1, want: domain.SeverityMedium},
		{name: "crítica 25.1%", priority: 1, value: 74.9, want: domain.SeverityHigh},
		{name: "crítica 49.9%", priority: 1, value: 50.1, want: domain.SeverityHigh},
		{name: "crítica exatamente 50%", priority: 1, value: 50, want: domain.SeverityHigh},
		{name: "crítica 50.1%", priority: 1, value: 49.9, want: domain.SeverityCritical},
		{name: "crítica acima do threshold", priority: 1, value: 180, want: domain.SeverityCritical},
		{name: "não crítica 24.9%", priority: 2, value: 75.1, want: domain.SeverityLow},
		{name: "não crítica 25.1%", priority: 2, value: 74.9, want: domain.SeverityMedium},
		{name: "não crítica 49.9%", priority: 3, value: 50.1, want: domain.SeverityMedium},
		{name: "não crítica 50.1%", priority: 3, value: 49.9, want: domain.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &domain.Rule{Threshold: 100, Priority: tt.priority}
			assert.Equal(t, tt.want, CalculateSeverity(rule, tt.value))
		})
	}
}

func TestCalculateSeverity_Monotonic(t *testing.T) {
	rule := &domain.Rule{Threshold: 10, Priority: 1}

	previous := CalculateSeverity(rule, 10)
	for value := 9.9; value > 0; value -= 0.1 {
		current := CalculateSeverity(rule, value)
		assert.LessOrEqual(t, current.Rank(), previous.Rank(), "valor %.2f", value)
		previous = current
	}
}

func TestCalculateSeverity_ZeroThreshold(t *testing.T) {
	rule := &domain.Rule{Threshold: 0, Priority: 1}
	assert.Equal(t, domain.SeverityCritical, CalculateSeverity(rule, 3))
	assert.Equal(t, domain.SeverityMedium, CalculateSeverity(rule, 0))

	rule.Priority = 2
	assert.Equal(t, domain.SeverityHigh, CalculateSeverity(rule, math.Inf(1)))
}

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name string
		rule *domain.Rule
		val  float64
		want string
	}{
		{
			name: "percentual",
			rule: &domain.Rule{Name: "VTR Bajo", Metric: domain.MetricVTR, Threshold: 10},
			val:  5,
			want: "VTR Bajo: VTR (View Through Rate) actual es 5.00%, threshold es 10%",
		},
		{
			name: "multiplicador com threshold fracionário",
			rule: &domain.Rule{Name: "ROAS Bajo", Metric: domain.MetricROAS, Threshold: 2.5},
			val:  1.234,
			want: "ROAS Bajo: ROAS (Return on Ad Spend) actual es 1.23x, threshold es 2.5x",
		},
		{
			name: "moeda",
			rule: &domain.Rule{Name: "CPM Alto", Metric: domain.MetricCPM, Threshold: 20},
			val:  31.456,
			want: "CPM Alto: CPM (Cost Per Mille) actual es 31.46$, threshold es 20$",
		},
		{
			name: "sem unidade",
			rule: &domain.Rule{Name: "Poucas impressões", Metric: domain.MetricImpressions, Threshold: 1000},
			val:  250,
			want: "Poucas impressões: Impressions actual es 250.00, threshold es 1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMessage(tt.rule, tt.val))
		})
	}
}

func TestRecommendationFactory_CreateRecommendation(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	snapshot := &domain.MetricSnapshot{PublicationID: "pub-1", VTR: floatPtr(5)}
	vtrRule := &domain.Rule{
		ID:        "rule-vtr",
		Name:      "VTR Bajo",
		Metric:    domain.MetricVTR,
		Operator:  domain.OperatorLessThan,
		Threshold: 10,
		Action:    domain.ActionChangeCreative,
		Priority:  1,
	}

	tests := []struct {
		name     string
		strict   bool
		rule     *domain.Rule
		setup    func(repo *mocks.MockRecommendationRepository)
		validate func(t *testing.T, rec *domain.Recommendation, err error)
	}{
		{
			name: "cria recomendação quando não existe uma não resolvida",
			rule: vtrRule,
			setup: func(repo *mocks.MockRecommendationRepository) {
				repo.EXPECT().GetUnresolved(ctx, "pub-1", "rule-vtr").Return(nil, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
			},
			validate: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				require.NotNil(t, rec)
				assert.NotEmpty(t, rec.ID)
				assert.Equal(t, "pub-1", rec.PublicationID)
				assert.Equal(t, "rule-vtr", rec.RuleID)
				assert.Equal(t, domain.SeverityHigh, rec.Severity)
				assert.Equal(t, "VTR Bajo: VTR (View Through Rate) actual es 5.00%, threshold es 10%", rec.Message)
				assert.Equal(t, "Change the creative for one that better captures attention", rec.ActionRequired)
				assert.False(t, rec.IsResolved)
				assert.Nil(t, rec.ResolvedAt)
				assert.Equal(t, createdAt, rec.CreatedAt)
			},
		},
		{
			name: "não duplica recomendação não resolvida",
			rule: vtrRule,
			setup: func(repo *mocks.MockRecommendationRepository) {
				repo.EXPECT().GetUnresolved(ctx, "pub-1", "rule-vtr").Return(&domain.Recommendation{ID: "existing"}, nil)
			},
			validate: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				assert.Nil(t, rec)
			},
		},
		{
			name: "conflito no insert é tratado como duplicata",
			rule: vtrRule,
			setup: func(repo *mocks.MockRecommendationRepository) {
				repo.EXPECT().GetUnresolved(ctx, "pub-1", "rule-vtr").Return(nil, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(false, nil)
			},
			validate: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				assert.Nil(t, rec)
			},
		},
		{
			name: "ação desconhecida usa descrição genérica",
			rule: &domain.Rule{ID: "rule-x", Name: "X", Metric: domain.MetricVTR, Threshold: 10, Action: "launch_rocket", Priority: 2},
			setup: func(repo *mocks.MockRecommendationRepository) {
				repo.EXPECT().GetUnresolved(ctx, "pub-1", "rule-x").Return(nil, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
			},
			validate: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				require.NotNil(t, rec)
				assert.Equal(t, domain.DefaultActionDescription, rec.ActionRequired)
				assert.Equal(t, domain.SeverityMedium, rec.Severity)
			},
		},
		{
			name:   "ação desconhecida em modo estrito retorna erro",
			strict: true,
			rule:   &domain.Rule{ID: "rule-x", Name: "X", Metric: domain.MetricVTR, Threshold: 10, Action: "launch_rocket", Priority: 2},
			setup:  func(repo *mocks.MockRecommendationRepository) {},
			validate: func(t *testing.T, rec *domain.Recommendation, err error) {
				assert.ErrorIs(t, err, ErrUnknownAction)
				assert.Nil(t, rec)
			},
		},
		{
			name:  "métrica ausente não cria recomendação",
			rule:  &domain.Rule{ID: "rule-ctr", Metric: domain.MetricCTR, Threshold: 1, Action: domain.ActionOptimizeTargeting, Priority: 2},
			setup: func(repo *mocks.MockRecommendationRepository) {},
			validate: func(t *testing.T, rec *domain.Recommendation, err error) {
				require.NoError(t, err)
				assert.Nil(t, rec)
			},
		},
		{
			name: "erro do repositório é propagado",
			rule: vtrRule,
			setup: func(repo *mocks.MockRecommendationRepository) {
				repo.EXPECT().GetUnresolved(ctx, "pub-1", "rule-vtr").Return(nil, errDatabase)
			},
			validate: func(t *testing.T, rec *domain.Recommendation, err error) {
				assert.ErrorIs(t, err, errDatabase)
				assert.Nil(t, rec)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockRecommendationRepository(ctrl)
			tt.setup(repo)

			factory := NewRecommendationFactory(repo, tt.strict)
			factory.now = func() time.Time { return createdAt }

			rec, err := factory.CreateRecommendation(ctx, "pub-1", tt.rule, snapshot)
			tt.validate(t, rec, err)
		})
	}
}

var errDatabase = errors.New("connection refused")

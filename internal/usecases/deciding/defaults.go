package deciding

import "github.com/vfg2006/performance-decision-api/internal/domain"

// DefaultRules retorna as regras de decisão padrão. São inseridas pelo script de
// migração e pelo armazenamento em memória. Os IDs ficam a cargo de quem insere.
func DefaultRules() []*domain.Rule {
	return []*domain.Rule{
		{
			Name:        "Low VTR - Change Creative",
			Description: "When VTR is below 10% the creative must be replaced",
			Metric:      domain.MetricVTR,
			Operator:    domain.OperatorLessThan,
			Threshold:   10,
			Action:      domain.ActionChangeCreative,
			Priority:    1,
			IsActive:    true,
		},
		{
			Name:        "Low CTR - Optimize Targeting",
			Description: "When CTR is below 1% the targeting must be optimized",
			Metric:      domain.MetricCTR,
			Operator:    domain.OperatorLessThan,
			Threshold:   1,
			Action:      domain.ActionOptimizeTargeting,
			Priority:    2,
			IsActive:    true,
		},
		{
			Name:        "High CPA - Reduce Budget",
			Description: "When CPA is above the target reduce the budget or pause",
			Metric:      domain.MetricCPA,
			Operator:    domain.OperatorGreaterThan,
			Threshold:   50,
			Action:      domain.ActionReduceBudget,
			Priority:    1,
			IsActive:    true,
		},
		{
			Name:        "Low ROAS - Review Strategy",
			Description: "When ROAS is below 2 review the whole strategy",
			Metric:      domain.MetricROAS,
			Operator:    domain.OperatorLessThan,
			Threshold:   2,
			Action:      domain.ActionReviewStrategy,
			Priority:    1,
			IsActive:    true,
		},
		{
			Name:        "Low Engagement - Change Format",
			Description: "When engagement rate is below 2% change the format",
			Metric:      domain.MetricEngagementRate,
			Operator:    domain.OperatorLessThan,
			Threshold:   2,
			Action:      domain.ActionChangeFormat,
			Priority:    2,
			IsActive:    true,
		},
		{
			Name:        "High CPM - Adjust Bid",
			Description: "When CPM is above $20 adjust the bidding strategy",
			Metric:      domain.MetricCPM,
			Operator:    domain.OperatorGreaterThan,
			Threshold:   20,
			Action:      domain.ActionAdjustBid,
			Priority:    3,
			IsActive:    true,
		},
		{
			Name:        "Excellent VTR - Scale",
			Description: "When VTR is above 25% scale the budget",
			Metric:      domain.MetricVTR,
			Operator:    domain.OperatorGreaterThan,
			Threshold:   25,
			Action:      domain.ActionScaleBudget,
			Priority:    1,
			IsActive:    true,
		},
		{
			Name:        "High ROAS - Duplicate Campaign",
			Description: "When ROAS is above 5 duplicate the successful campaign",
			Metric:      domain.MetricROAS,
			Operator:    domain.OperatorGreaterThan,
			Threshold:   5,
			Action:      domain.ActionDuplicateCampaign,
			Priority:    1,
			IsActive:    true,
		},
	}
}

package domain

import "time"

// MetricSnapshot representa uma medição de performance de uma publicação em uma data.
// Métricas derivadas nulas são consideradas ausentes.
type MetricSnapshot struct {
	ID             string    `json:"id"`
	PublicationID  string    `json:"publication_id"`
	MetricDate     time.Time `json:"metric_date"`
	Impressions    int64     `json:"impressions"`
	Views          int64     `json:"views"`
	Clicks         int64     `json:"clicks"`
	Conversions    int64     `json:"conversions"`
	Spend          float64   `json:"spend"`
	Revenue        *float64  `json:"revenue,omitempty"`
	VTR            *float64  `json:"vtr"`
	CTR            *float64  `json:"ctr"`
	CPM            *float64  `json:"cpm"`
	CPC            *float64  `json:"cpc"`
	CPA            *float64  `json:"cpa"`
	ROAS           *float64  `json:"roas"`
	EngagementRate *float64  `json:"engagement_rate"`
	CreatedAt      time.Time `json:"created_at"`
}

// Value retorna o valor da métrica informada e se ele está presente no snapshot
func (s *MetricSnapshot) Value(metric Metric) (float64, bool) {
	if s == nil {
		return 0, false
	}

	switch metric {
	case MetricVTR:
		return deref(s.VTR)
	case MetricCTR:
		return deref(s.CTR)
	case MetricCPM:
		return deref(s.CPM)
	case MetricCPC:
		return deref(s.CPC)
	case MetricCPA:
		return deref(s.CPA)
	case MetricROAS:
		return deref(s.ROAS)
	case MetricEngagementRate:
		return deref(s.EngagementRate)
	case MetricImpressions:
		return float64(s.Impressions), true
	case MetricViews:
		return float64(s.Views), true
	case MetricClicks:
		return float64(s.Clicks), true
	case MetricConversions:
		return float64(s.Conversions), true
	case MetricSpend:
		return s.Spend, true
	default:
		return 0, false
	}
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// RecordMetricsRequest são os valores brutos informados para uma publicação
type RecordMetricsRequest struct {
	MetricDate  *time.Time `json:"metric_date,omitempty"`
	Impressions int64      `json:"impressions"`
	Views       int64      `json:"views"`
	Clicks      int64      `json:"clicks"`
	Conversions int64      `json:"conversions"`
	Spend       float64    `json:"spend"`
	Revenue     *float64   `json:"revenue,omitempty"`
}

// CalculateDerivedMetrics preenche as métricas derivadas a partir dos valores brutos.
// Uma razão cujo denominador é zero fica nula.
func (s *MetricSnapshot) CalculateDerivedMetrics() {
	impressions := float64(s.Impressions)
	views := float64(s.Views)
	clicks := float64(s.Clicks)
	conversions := float64(s.Conversions)

	s.VTR = ratio(views*100, impressions)
	s.CTR = ratio(clicks*100, impressions)
	s.CPM = ratio(s.Spend*1000, impressions)
	s.CPC = ratio(s.Spend, clicks)
	s.CPA = ratio(s.Spend, conversions)
	s.EngagementRate = ratio((clicks+views)*100, impressions)

	s.ROAS = nil
	if s.Revenue != nil {
		s.ROAS = ratio(*s.Revenue, s.Spend)
	}
}

func ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	v := numerator / denominator
	return &v
}

// PerformanceUpdate é o retorno do registro de métricas com a avaliação automática
type PerformanceUpdate struct {
	Metrics    *MetricSnapshot   `json:"metrics"`
	Evaluation *EvaluationResult `json:"evaluation"`
}

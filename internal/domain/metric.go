package domain

// Metric identifica uma métrica de performance acompanhada por publicação
type Metric string

const (
	MetricVTR            Metric = "vtr"
	MetricCTR            Metric = "ctr"
	MetricCPM            Metric = "cpm"
	MetricCPC            Metric = "cpc"
	MetricCPA            Metric = "cpa"
	MetricROAS           Metric = "roas"
	MetricEngagementRate Metric = "engagement_rate"
	MetricImpressions    Metric = "impressions"
	MetricViews          Metric = "views"
	MetricClicks         Metric = "clicks"
	MetricConversions    Metric = "conversions"
	MetricSpend          Metric = "spend"
)

var metricDisplayNames = map[Metric]string{
	MetricVTR:            "VTR (View Through Rate)",
	MetricCTR:            "CTR (Click Through Rate)",
	MetricCPM:            "CPM (Cost Per Mille)",
	MetricCPC:            "CPC (Cost Per Click)",
	MetricCPA:            "CPA (Cost Per Acquisition)",
	MetricROAS:           "ROAS (Return on Ad Spend)",
	MetricEngagementRate: "Engagement Rate",
	MetricImpressions:    "Impressions",
	MetricViews:          "Views",
	MetricClicks:         "Clicks",
	MetricConversions:    "Conversions",
	MetricSpend:          "Spend",
}

var metricUnits = map[Metric]string{
	MetricVTR:            "%",
	MetricCTR:            "%",
	MetricEngagementRate: "%",
	MetricCPM:            "$",
	MetricCPC:            "$",
	MetricCPA:            "$",
	MetricROAS:           "x",
}

// IsKnown indica se a métrica faz parte do conjunto suportado
func (m Metric) IsKnown() bool {
	_, ok := metricDisplayNames[m]
	return ok
}

// DisplayName retorna o nome legível da métrica, ou o próprio código quando desconhecida
func (m Metric) DisplayName() string {
	if name, ok := metricDisplayNames[m]; ok {
		return name
	}
	return string(m)
}

// Unit retorna a unidade usada nas mensagens (%, $, x ou vazio)
func (m Metric) Unit() string {
	return metricUnits[m]
}

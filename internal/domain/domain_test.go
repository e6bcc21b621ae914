package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricDisplayNameAndUnit(t *testing.T) {
	assert.Equal(t, "CTR (Click Through Rate)", MetricCTR.DisplayName())
	assert.Equal(t, "%", MetricCTR.Unit())
	assert.Equal(t, "$", MetricCPA.Unit())
	assert.Equal(t, "x", MetricROAS.Unit())
	assert.Equal(t, "", MetricImpressions.Unit())

	unknown := Metric("bounce_rate")
	assert.False(t, unknown.IsKnown())
	assert.Equal(t, "bounce_rate", unknown.DisplayName())
	assert.Equal(t, "", unknown.Unit())
}

func TestSeverityRank(t *testing.T) {
	assert.Less(t, SeverityCritical.Rank(), SeverityHigh.Rank())
	assert.Less(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Less(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Greater(t, Severity("unknown").Rank(), SeverityLow.Rank())
}

func TestActionDescription(t *testing.T) {
	description, known := ActionChangeCreative.Description()
	assert.True(t, known)
	assert.NotEmpty(t, description)

	description, known = Action("call_the_client").Description()
	assert.False(t, known)
	assert.Equal(t, DefaultActionDescription, description)
}

func TestCalculateDerivedMetrics(t *testing.T) {
	t.Run("calcula todas as razões", func(t *testing.T) {
		revenue := 300.0
		snapshot := &MetricSnapshot{
			Impressions: 1000,
			Views:       400,
			Clicks:      20,
			Conversions: 4,
			Spend:       100,
			Revenue:     &revenue,
		}

		snapshot.CalculateDerivedMetrics()

		require.NotNil(t, snapshot.VTR)
		assert.InDelta(t, 40.0, *snapshot.VTR, 1e-9)
		assert.InDelta(t, 2.0, *snapshot.CTR, 1e-9)
		assert.InDelta(t, 100.0, *snapshot.CPM, 1e-9)
		assert.InDelta(t, 5.0, *snapshot.CPC, 1e-9)
		assert.InDelta(t, 25.0, *snapshot.CPA, 1e-9)
		assert.InDelta(t, 3.0, *snapshot.ROAS, 1e-9)
		assert.InDelta(t, 42.0, *snapshot.EngagementRate, 1e-9)
	})

	t.Run("denominador zero deixa a métrica ausente", func(t *testing.T) {
		snapshot := &MetricSnapshot{Spend: 10}

		snapshot.CalculateDerivedMetrics()

		assert.Nil(t, snapshot.CTR)
		assert.Nil(t, snapshot.CPC)
		assert.Nil(t, snapshot.CPA)
		assert.Nil(t, snapshot.ROAS)

		_, present := snapshot.Value(MetricCTR)
		assert.False(t, present)

		spend, present := snapshot.Value(MetricSpend)
		assert.True(t, present)
		assert.Equal(t, 10.0, spend)
	})

	t.Run("snapshot nulo não tem valores", func(t *testing.T) {
		var snapshot *MetricSnapshot
		_, present := snapshot.Value(MetricCTR)
		assert.False(t, present)
	})
}

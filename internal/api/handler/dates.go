package handler

import (
	"time"

	"github.com/vfg2006/performance-decision-api/pkg/utils"
)

// parseMetricDate aceita YYYY-MM-DD e, como alternativa, RFC3339
func parseMetricDate(raw string) (*time.Time, error) {
	date, err := utils.ParseDate(raw)
	if err == nil {
		return date, nil
	}

	parsed, rfcErr := time.Parse(time.RFC3339, raw)
	if rfcErr != nil {
		return nil, err
	}
	return &parsed, nil
}

// dateRangeBody recebe start_date e end_date nos mesmos formatos de metric_date
type dateRangeBody struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (b dateRangeBody) parse() (start, end *time.Time, err error) {
	if b.StartDate != "" {
		if start, err = parseMetricDate(b.StartDate); err != nil {
			return nil, nil, err
		}
	}
	if b.EndDate != "" {
		if end, err = parseMetricDate(b.EndDate); err != nil {
			return nil, nil, err
		}
	}
	return start, end, nil
}

package monitoring

import "errors"

var (
	ErrMetricsRequired = errors.New("metrics are required")
	ErrNegativeMetric  = errors.New("metric values cannot be negative")
)

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(context.Context) error {
	return f.err
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		expectedCode int
	}{
		{name: "sem banco configurado", db: nil, expectedCode: http.StatusOK},
		{name: "banco disponível", db: fakePinger{}, expectedCode: http.StatusOK},
		{name: "banco indisponível", db: fakePinger{err: errors.New("down")}, expectedCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

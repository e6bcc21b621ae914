package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID gera IDs curtos usados em publicações e regras
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GenerateUUID gera IDs para registros de alto volume (snapshots e recomendações)
func GenerateUUID() string {
	return uuid.NewString()
}

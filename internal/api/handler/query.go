package handler

import (
	"net/url"
	"strings"
)

// queryValues junta os valores repetidos e separados por vírgula de um parâmetro
func queryValues(query url.Values, key string) []string {
	values := make([]string, 0)
	for _, raw := range query[key] {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}
	return values
}

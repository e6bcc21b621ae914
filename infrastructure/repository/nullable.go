package repository

import "database/sql"

// nullString grava strings vazias como NULL, como nas colunas opcionais do cadastro
func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

package repository

import "database/sql"

// nullString maps an empty Go string to SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

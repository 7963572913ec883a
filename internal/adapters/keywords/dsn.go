package keywords

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// withParseTime returns dsn with parseTime enabled
func withParseTime(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

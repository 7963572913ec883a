package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikey/avana-extractor/internal/core"
)

// ExtractionConfig represents the input and keyword settings
type ExtractionConfig struct {
	Keywords        []string
	Profile         string
	ExcludedDomains []string
	MaxInputSize    int
	Charset         string
}

// ClassifierConfig represents the keyword matching policy
type ClassifierConfig struct {
	MatchMode   core.MatchMode
	MatchDomain bool
	GroupBy     core.Grouping
}

// OutputConfig represents how results are rendered
type OutputConfig struct {
	Format        string
	ShortlistSize int
}

// StoreConfig represents the keyword profile store
type StoreConfig struct {
	Type       string
	SQLitePath string
	MySQLDSN   string
}

// ServerConfig represents the SMTP intake listener
type ServerConfig struct {
	ListenAddress   string
	Domain          string
	MaxMessageBytes int64
	MaxRecipients   int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	AuthUsername    string
	AuthPassword    string
}

// GetExtraction returns the extraction configuration
func (c *Config) GetExtraction() ExtractionConfig {
	return ExtractionConfig{
		Keywords:        splitList(c.GetStringSlice("extraction.keywords")),
		Profile:         c.GetString("extraction.profile"),
		ExcludedDomains: splitList(c.GetStringSlice("extraction.excluded_domains")),
		MaxInputSize:    c.GetInt("extraction.max_input_size"),
		Charset:         c.GetString("extraction.charset"),
	}
}

// GetClassifier returns the classifier configuration
func (c *Config) GetClassifier() ClassifierConfig {
	return ClassifierConfig{
		MatchMode:   core.MatchMode(c.GetString("classifier.match_mode")),
		MatchDomain: c.GetBool("classifier.match_domain"),
		GroupBy:     core.Grouping(c.GetString("classifier.group_by")),
	}
}

// GetOutput returns the output configuration
func (c *Config) GetOutput() OutputConfig {
	return OutputConfig{
		Format:        c.GetString("output.format"),
		ShortlistSize: c.GetInt("output.shortlist_size"),
	}
}

// GetStore returns the keyword profile store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:       c.GetString("store.type"),
		SQLitePath: c.GetString("store.sqlite_path"),
		MySQLDSN:   c.GetString("store.mysql_dsn"),
	}
}

// GetServer returns the SMTP intake configuration
func (c *Config) GetServer() (ServerConfig, error) {
	readTimeout, err := c.GetDuration("server.read_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server read timeout: %w", err)
	}
	writeTimeout, err := c.GetDuration("server.write_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server write timeout: %w", err)
	}

	return ServerConfig{
		ListenAddress:   c.GetString("server.listen_address"),
		Domain:          c.GetString("server.domain"),
		MaxMessageBytes: c.GetInt64("server.max_message_bytes"),
		MaxRecipients:   c.GetInt("server.max_recipients"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		AuthUsername:    c.GetString("server.auth.username"),
		AuthPassword:    c.GetString("server.auth.password"),
	}, nil
}

// splitList splits comma-separated entries, as set through AVANA_* variables,
// and drops empty ones
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mikey/avana-extractor/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *core.Result {
	emails := core.ExtractEmails("ceo@acme.com, bob@acme.com, amy@acme.com, lead@beta.io")
	return core.ProcessEmailList(emails, []string{"ceo", "lead"})
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleResult(), 5))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	stats := decoded["stats"].(map[string]interface{})
	assert.Equal(t, float64(4), stats["totalEmailsFound"])
	assert.Equal(t, float64(2), stats["totalDomains"])
	assert.Equal(t, float64(2), stats["totalSelected"])

	domains := decoded["domains"].([]interface{})
	first := domains[0].(map[string]interface{})
	assert.Equal(t, "acme.com", first["domain"])
	assert.Equal(t, []interface{}{"ceo@acme.com"}, first["selectedEmails"])
	assert.Equal(t, float64(1), first["matchCount"])
}

func TestRenderJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, core.ProcessEmailList(nil, nil), 5))
	assert.Contains(t, buf.String(), `"domains": []`)
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatCSV, sampleResult(), 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Domain,Email,Status",
		"acme.com,ceo@acme.com,Match",
		"acme.com,amy@acme.com,General",
		"beta.io,lead@beta.io,Match",
	}, lines)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "TEXT", sampleResult(), 5))

	out := buf.String()
	assert.Contains(t, out, "Total unique emails: 4")
	assert.Contains(t, out, "Unique domains: 2")
	assert.Contains(t, out, "Selected for export: 2")
	assert.Contains(t, out, "acme.com")
	assert.Contains(t, out, "lead@beta.io")
}

func TestRenderTextNoEmails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, nil, 5))
	assert.Contains(t, buf.String(), "No valid emails found")
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, "xml", sampleResult(), 5))
}

package utils

import (
	"bytes"
	"io"
	"testing"

	"github.com/mikey/avana-extractor/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDecode(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	out, err := tp.Decode([]byte("plain@example.com"), "")
	require.NoError(t, err)
	assert.Equal(t, "plain@example.com", out)

	// "Müller <m@x.de>" in ISO-8859-1
	latin1 := []byte{'M', 0xfc, 'l', 'l', 'e', 'r', ' ', '<', 'm', '@', 'x', '.', 'd', 'e', '>'}
	out, err = tp.Decode(latin1, "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "Müller <m@x.de>", out)

	out, err = tp.Decode([]byte{0x93, 'h', 'i', 0x94}, "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "“hi”", out)

	_, err = tp.Decode([]byte("x"), "klingon-8")
	assert.Error(t, err)
}

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(nil)

	assert.Equal(t, "hello", tp.TruncateText("hello", 0))
	assert.Equal(t, "hello", tp.TruncateText("hello", 10))
	assert.Equal(t, "hello ", tp.TruncateText("hello world", 8))
	// never splits a multi-byte rune
	assert.Equal(t, "a", tp.TruncateText("aü", 2))
}

func TestTruncateTextDropsPartialAddress(t *testing.T) {
	tp := NewTextProcessor(nil)

	text := "contact jane@acme.com today"
	cut := tp.TruncateText(text, len("contact jane@acme.co"))
	assert.Equal(t, "contact ", cut)

	assert.Equal(t, "<a@b.io>,", tp.TruncateText("<a@b.io>, c@d.io", 9))
	assert.Equal(t, "", tp.TruncateText("jane@acme.com", 5))
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(nil)

	assert.Equal(t, "ok", tp.SanitizeUTF8("ok"))
	assert.Equal(t, "a\uFFFDb@c.io", tp.SanitizeUTF8("a\xffb@c.io"))
	assert.Equal(t, "a\uFFFD\uFFFDb", tp.SanitizeUTF8("a\xff\xfeb"))
	assert.Equal(t, "a", tp.ProcessText("a\xffbcd", 3))
}

func TestSanitizeUTF8KeepsTokensApart(t *testing.T) {
	tp := NewTextProcessor(nil)

	raw := "ceo\xff@x.com"
	assert.Equal(t, core.ExtractEmails(raw), core.ExtractEmails(tp.SanitizeUTF8(raw)))
	assert.Empty(t, core.ExtractEmails(tp.SanitizeUTF8(raw)))
}

func TestCharsetReader(t *testing.T) {
	tp := NewTextProcessor(nil)

	r, err := tp.CharsetReader("windows-1252", bytes.NewReader([]byte{'J', 0xe9, 'r', 0xf4, 'm', 'e'}))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Jérôme", string(out))

	_, err = tp.CharsetReader("x-unknown", bytes.NewReader(nil))
	assert.Error(t, err)
}

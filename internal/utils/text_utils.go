package utils

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
)

// TextProcessor prepares raw pasted or mailed text for extraction
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextProcessor{
		logger: logger,
	}
}

// Decode converts data from the named charset to UTF-8.
// An empty charset or utf-8 returns the data unchanged.
func (tp *TextProcessor) Decode(data []byte, charset string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" || name == "us-ascii" {
		return string(data), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unsupported charset %q: %w", charset, err)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s text: %w", charset, err)
	}

	tp.logger.Debug("Text decoded",
		zap.String("charset", name),
		zap.Int("original_size", len(data)),
		zap.Int("decoded_size", len(decoded)))

	return string(decoded), nil
}

// CharsetReader wraps input so it yields UTF-8. It matches the signature
// expected by mime.WordDecoder.CharsetReader.
func (tp *TextProcessor) CharsetReader(charset string, input io.Reader) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" || name == "us-ascii" {
		return input, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

// TruncateText truncates text to at most maxSize bytes on a UTF-8 boundary.
// A cut inside a run of address characters backs off to the start of the run,
// so no partial address is left at the end. maxSize <= 0 disables truncation.
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	cut := maxSize
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	if isAddressByte(text[cut]) {
		for cut > 0 && isAddressByte(text[cut-1]) {
			cut--
		}
	}
	truncated := text[:cut]

	tp.logger.Warn("Input truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated
}

// SanitizeUTF8 replaces every invalid UTF-8 byte with U+FFFD.
// The replacement keeps the text on either side apart.
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		// range yields utf8.RuneError once per invalid byte
		b.WriteRune(r)
	}
	sanitized := b.String()

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// ProcessText sanitizes and truncates text in one operation
func (tp *TextProcessor) ProcessText(text string, maxSize int) string {
	return tp.TruncateText(tp.SanitizeUTF8(text), maxSize)
}

// isAddressByte reports whether c can appear in an extracted address
func isAddressByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '_', c == '%', c == '+', c == '-', c == '@':
		return true
	}
	return false
}

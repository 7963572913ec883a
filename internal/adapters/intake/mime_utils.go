package intake

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/textproto"
	"strings"

	"github.com/mikey/avana-extractor/internal/utils"
)

// maxMultipartDepth bounds nested multipart parsing
const maxMultipartDepth = 8

// addressHeaders are the headers whose values are scanned for addresses
var addressHeaders = []string{"From", "Sender", "Reply-To", "To", "Cc"}

// readableTypes are the part media types whose content is scanned
var readableTypes = map[string]bool{
	"text/plain": true,
	"text/html":  true,
	"text/csv":   true,
}

// messageText returns the address headers and readable body parts of msg as one text
func messageText(msg *mail.Message, tp *utils.TextProcessor) (string, error) {
	var b strings.Builder

	dec := &mime.WordDecoder{CharsetReader: tp.CharsetReader}
	for _, key := range addressHeaders {
		for _, value := range msg.Header[key] {
			if decoded, err := dec.DecodeHeader(value); err == nil {
				value = decoded
			}
			b.WriteString(value)
			b.WriteString("\n")
		}
	}

	if err := collectText(&b, textproto.MIMEHeader(msg.Header), msg.Body, tp, 0); err != nil {
		return "", err
	}

	return b.String(), nil
}

// collectText appends the readable content of one entity, walking nested multiparts
func collectText(b *strings.Builder, header textproto.MIMEHeader, body io.Reader, tp *utils.TextProcessor, depth int) error {
	contentType := header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if contentType == "" || err != nil {
		mediaType, params = "text/plain", map[string]string{}
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" || depth >= maxMultipartDepth {
			return appendPart(b, header, body, "", tp)
		}

		mr := multipart.NewReader(body, boundary)
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read multipart body: %w", err)
			}
			if err := collectText(b, part.Header, part, tp, depth+1); err != nil {
				return err
			}
		}
	}

	if !readableTypes[mediaType] {
		return nil
	}
	return appendPart(b, header, body, params["charset"], tp)
}

// appendPart decodes the transfer encoding and charset of a single part
func appendPart(b *strings.Builder, header textproto.MIMEHeader, body io.Reader, charset string, tp *utils.TextProcessor) error {
	data, err := io.ReadAll(transferDecoder(header.Get("Content-Transfer-Encoding"), body))
	if err != nil {
		return fmt.Errorf("failed to read message part: %w", err)
	}

	text, err := tp.Decode(data, charset)
	if err != nil {
		// Unknown charsets still usually carry ASCII addresses
		text = string(data)
	}

	b.WriteString(tp.SanitizeUTF8(text))
	b.WriteString("\n")
	return nil
}

func transferDecoder(encoding string, body io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		return quotedprintable.NewReader(body)
	default:
		return body
	}
}

package intake

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/mail"
	"sync"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/profiles"
	"github.com/mikey/avana-extractor/internal/utils"
	"go.uber.org/zap"
)

var errAuthFailed = &smtp.SMTPError{
	Code:         535,
	EnhancedCode: smtp.EnhancedCode{5, 7, 8},
	Message:      "Authentication credentials invalid",
}

// SMTPIntake accepts forwarded mail threads over SMTP and extracts their addresses
type SMTPIntake struct {
	service       *core.ExtractionService
	textProcessor *utils.TextProcessor
	resolver      *profiles.Resolver
	logger        *zap.Logger
	cfg           config.ServerConfig
	profile       string
	maxInputSize  int

	mu       sync.Mutex
	server   *smtp.Server
	listener net.Listener

	// OnResult is called with every processed message result
	OnResult func(*core.Result)
}

// NewSMTPIntake creates a new SMTP intake
func NewSMTPIntake(
	service *core.ExtractionService,
	textProcessor *utils.TextProcessor,
	resolver *profiles.Resolver,
	logger *zap.Logger,
	cfg config.ServerConfig,
	profile string,
	maxInputSize int,
) *SMTPIntake {
	return &SMTPIntake{
		service:       service,
		textProcessor: textProcessor,
		resolver:      resolver,
		logger:        logger,
		cfg:           cfg,
		profile:       profile,
		maxInputSize:  maxInputSize,
	}
}

// Start starts the SMTP listener
func (f *SMTPIntake) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	server := smtp.NewServer(&smtpBackend{intake: f})
	server.Addr = f.cfg.ListenAddress
	server.Domain = f.cfg.Domain
	server.ReadTimeout = f.cfg.ReadTimeout
	server.WriteTimeout = f.cfg.WriteTimeout
	server.MaxMessageBytes = f.cfg.MaxMessageBytes
	server.MaxRecipients = f.cfg.MaxRecipients
	server.AllowInsecureAuth = f.cfg.AuthUsername != ""

	ln, err := net.Listen("tcp", f.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", f.cfg.ListenAddress, err)
	}
	f.server = server
	f.listener = ln

	f.logger.Info("SMTP intake started",
		zap.String("address", ln.Addr().String()),
		zap.Bool("auth", f.cfg.AuthUsername != ""))

	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, smtp.ErrServerClosed) {
			f.logger.Error("SMTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop stops the SMTP listener
func (f *SMTPIntake) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.server == nil {
		return nil
	}
	err := f.server.Close()
	f.server = nil
	f.listener = nil
	return err
}

// Addr returns the bound listener address, or "" when stopped
func (f *SMTPIntake) Addr() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listener == nil {
		return ""
	}
	return f.listener.Addr().String()
}

// Process parses a raw RFC 5322 message and extracts the addresses in its headers and text parts.
// A nil keywords slice resolves the configured profile.
func (f *SMTPIntake) Process(ctx context.Context, raw []byte, keywords []string) (*core.Result, error) {
	result, err := f.process(ctx, raw, keywords)
	if err != nil {
		return nil, err
	}

	if f.OnResult != nil {
		f.OnResult(result)
	}
	return result, nil
}

func (f *SMTPIntake) process(ctx context.Context, raw []byte, keywords []string) (*core.Result, error) {
	if keywords == nil {
		resolved, err := f.resolver.Resolve(ctx, nil, f.profile)
		if err != nil {
			return nil, err
		}
		keywords = resolved
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse email message: %w", err)
	}

	text, err := messageText(msg, f.textProcessor)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text content: %w", err)
	}
	text = f.textProcessor.TruncateText(text, f.maxInputSize)

	return f.service.Analyze(text, keywords), nil
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	intake *SMTPIntake
}

// NewSession creates a new SMTP session
func (b *smtpBackend) NewSession(c *smtp.Conn) (smtp.Session, error) {
	remote := "unknown"
	if c != nil && c.Conn() != nil {
		remote = c.Conn().RemoteAddr().String()
	}
	return &smtpSession{
		intake:     b.intake,
		remote:     remote,
		recipients: make([]string, 0),
	}, nil
}

// smtpSession implements the go-smtp Session and AuthSession interfaces
type smtpSession struct {
	intake        *SMTPIntake
	remote        string
	authenticated bool
	sender        string
	recipients    []string
}

func (s *smtpSession) authRequired() bool {
	return s.intake.cfg.AuthUsername != "" && !s.authenticated
}

// AuthMechanisms lists PLAIN when credentials are configured
func (s *smtpSession) AuthMechanisms() []string {
	if s.intake.cfg.AuthUsername == "" {
		return nil
	}
	return []string{sasl.Plain}
}

// Auth handles PLAIN authentication
func (s *smtpSession) Auth(mech string) (sasl.Server, error) {
	if mech != sasl.Plain || s.intake.cfg.AuthUsername == "" {
		return nil, smtp.ErrAuthUnsupported
	}
	return sasl.NewPlainServer(func(identity, username, password string) error {
		if username != s.intake.cfg.AuthUsername || password != s.intake.cfg.AuthPassword {
			s.intake.logger.Warn("SMTP authentication failed",
				zap.String("username", username),
				zap.String("remote", s.remote))
			return errAuthFailed
		}
		s.authenticated = true
		return nil
	}), nil
}

// Reset resets the session state
func (s *smtpSession) Reset() {
	s.sender = ""
	s.recipients = make([]string, 0)
}

// Mail sets the sender address
func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	if s.authRequired() {
		return smtp.ErrAuthRequired
	}
	s.sender = from
	return nil
}

// Rcpt adds a recipient
func (s *smtpSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	if s.authRequired() {
		return smtp.ErrAuthRequired
	}
	s.recipients = append(s.recipients, to)
	return nil
}

// Data runs the extraction over the received message
func (s *smtpSession) Data(r io.Reader) error {
	if s.authRequired() {
		return smtp.ErrAuthRequired
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		s.intake.logger.Error("Failed to read message data", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := s.intake.Process(ctx, raw, nil)
	if err != nil {
		s.intake.logger.Error("Failed to process message",
			zap.Error(err),
			zap.String("sender", s.sender),
			zap.String("remote", s.remote))
		return &smtp.SMTPError{
			Code:         554,
			EnhancedCode: smtp.EnhancedCode{5, 6, 0},
			Message:      "Message could not be processed",
		}
	}

	for _, d := range result.Domains {
		s.intake.logger.Info("Domain processed",
			zap.String("domain", d.Domain),
			zap.Int("emails", len(d.Emails)),
			zap.Int("match_count", d.MatchCount),
			zap.Strings("selected", d.SelectedEmails))
	}
	s.intake.logger.Info("Processed message",
		zap.String("sender", s.sender),
		zap.Strings("recipients", s.recipients),
		zap.Int("total_emails", result.Stats.TotalEmailsFound),
		zap.Int("total_domains", result.Stats.TotalDomains),
		zap.Int("total_selected", result.Stats.TotalSelected))

	return nil
}

// Logout handles SMTP logout
func (s *smtpSession) Logout() error {
	return nil
}

package filter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-smtp"
	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/engine"
	"go.uber.org/zap"
)

// levelRank orders risk levels for the block threshold comparison.
var levelRank = map[core.RiskLevel]int{
	core.LevelSafe:     0,
	core.LevelLow:      1,
	core.LevelMedium:   2,
	core.LevelHigh:     3,
	core.LevelCritical: 4,
}

// SmtpFilter implements a Postfix-style SMTP content filter. Inbound
// messages are scored, tagged with risk headers and relayed upstream.
type SmtpFilter struct {
	service       *engine.CheckService
	logger        *zap.Logger
	listenAddr    string
	server        *smtp.Server
	blockEnabled  bool
	blockLevel    core.RiskLevel
	levelHeader   string
	scoreHeader   string
	reasonHeader  string
	relayAddr     string
	relayPort     int
	relayEnabled  bool
	subjectPrefix string
	modifySubject bool
}

// NewSmtpFilter creates a new SMTP content filter
func NewSmtpFilter(
	service *engine.CheckService,
	logger *zap.Logger,
	listenAddr string,
	blockEnabled bool,
	blockLevel string,
	levelHeader string,
	scoreHeader string,
	reasonHeader string,
	relayAddr string,
	relayPort int,
	relayEnabled bool,
	subjectPrefix string,
	modifySubject bool,
) *SmtpFilter {
	// If subject prefix is not set but modify subject is enabled, use default prefix
	if subjectPrefix == "" && modifySubject {
		subjectPrefix = "[**SCAM**] "
	}

	return &SmtpFilter{
		service:       service,
		logger:        logger,
		listenAddr:    listenAddr,
		blockEnabled:  blockEnabled,
		blockLevel:    core.RiskLevel(blockLevel),
		levelHeader:   levelHeader,
		scoreHeader:   scoreHeader,
		reasonHeader:  reasonHeader,
		relayAddr:     relayAddr,
		relayPort:     relayPort,
		relayEnabled:  relayEnabled,
		subjectPrefix: subjectPrefix,
		modifySubject: modifySubject,
	}
}

// Start starts the SMTP filter service
func (f *SmtpFilter) Start() error {
	f.server = smtp.NewServer(&smtpBackend{filter: f})

	f.server.Addr = f.listenAddr
	f.server.Domain = "localhost"
	f.server.ReadTimeout = 30 * time.Second
	f.server.WriteTimeout = 30 * time.Second
	f.server.MaxMessageBytes = 30 * 1024 * 1024 // 30MB
	f.server.MaxRecipients = 50
	f.server.AllowInsecureAuth = true

	f.logger.Info("SMTP filter starting", zap.String("address", f.listenAddr))

	go func() {
		if err := f.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				f.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP filter service
func (f *SmtpFilter) Stop() error {
	if f.server != nil {
		return f.server.Close()
	}
	return nil
}

// ProcessEmail scores an email and returns the verdict
// This is mainly used for testing or direct API calls
func (f *SmtpFilter) ProcessEmail(ctx context.Context, email *core.InboundEmail) (*core.RiskVerdict, error) {
	return f.service.CheckEmail(ctx, email.From, email.Subject, email.Body), nil
}

// shouldBlock reports whether a verdict meets the configured block
// threshold.
func (f *SmtpFilter) shouldBlock(verdict *core.RiskVerdict) bool {
	if !f.blockEnabled {
		return false
	}
	return levelRank[verdict.Level] >= levelRank[f.blockLevel]
}

// sendUpstream relays the tagged email to the upstream MTA on the
// configured port using go-smtp.
func (f *SmtpFilter) sendUpstream(sender string, recipients []string, emailData []byte) error {
	upstreamAddr := fmt.Sprintf("%s:%d", f.relayAddr, f.relayPort)

	// Get hostname for EHLO
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	conn, err := net.DialTimeout("tcp", upstreamAddr, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to upstream MTA: %w", err)
	}

	if err := conn.SetDeadline(time.Now().Add(30 * time.Second)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	if err := c.Hello(hostname); err != nil {
		return fmt.Errorf("EHLO failed: %w", err)
	}

	if err := c.Mail(sender, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}

	recipientOK := false
	for _, recipient := range recipients {
		if err := c.Rcpt(recipient, nil); err != nil {
			f.logger.Warn("RCPT TO failed for recipient",
				zap.String("recipient", recipient),
				zap.Error(err))
			// Continue with other recipients even if one fails
		} else {
			recipientOK = true
		}
	}

	if !recipientOK {
		return fmt.Errorf("all recipients were rejected")
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA command failed: %w", err)
	}

	_, err = wc.Write(emailData)
	if err != nil {
		wc.Close()
		return fmt.Errorf("failed to send email data: %w", err)
	}

	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := c.Quit(); err != nil {
		f.logger.Warn("QUIT command failed", zap.Error(err))
		// Not returning an error here as the email has already been sent
	}

	return nil
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	filter *SmtpFilter
}

// NewSession creates a new SMTP session
func (b *smtpBackend) NewSession(c *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{
		filter:     b.filter,
		recipients: make([]string, 0),
	}, nil
}

// smtpSession implements the go-smtp Session interface
type smtpSession struct {
	filter     *SmtpFilter
	sender     string
	recipients []string
}

// Reset resets the session state
func (s *smtpSession) Reset() {
	s.sender = ""
	s.recipients = make([]string, 0)
}

// AuthPlain handles PLAIN authentication (not needed for our filter)
func (s *smtpSession) AuthPlain(_ []byte) error {
	return smtp.ErrAuthUnsupported
}

// Mail sets the sender address
func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

// Rcpt adds a recipient
func (s *smtpSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.recipients = append(s.recipients, to)
	return nil
}

// Data handles the email data
func (s *smtpSession) Data(r io.Reader) error {
	rawData, err := io.ReadAll(r)
	if err != nil {
		s.filter.logger.Error("Failed to read message data", zap.Error(err))
		return err
	}

	// Keep a copy of the raw data for later reconstruction
	rawDataCopy := make([]byte, len(rawData))
	copy(rawDataCopy, rawData)

	msg, err := mail.ReadMessage(bytes.NewReader(rawData))
	if err != nil {
		s.filter.logger.Error("Failed to parse email message", zap.Error(err))
		return err
	}

	textContent, err := extractTextFromMessage(msg)
	if err != nil {
		s.filter.logger.Error("Failed to extract text content", zap.Error(err))
		return err
	}

	email := &core.InboundEmail{
		Headers: make(map[string][]string),
		Body:    textContent,
		From:    s.sender,
		To:      s.recipients,
	}

	for key, values := range msg.Header {
		email.Headers[key] = values

		if strings.EqualFold(key, "Subject") && len(values) > 0 {
			email.Subject = values[0]
		}
	}

	senderDomain := "unknown"
	if parts := strings.Split(email.From, "@"); len(parts) == 2 {
		senderDomain = parts[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	verdict := s.filter.service.CheckEmail(ctx, email.From, email.Subject, email.Body)

	blocked := s.filter.shouldBlock(verdict)
	if blocked {
		s.filter.logger.Info("Rejecting email",
			zap.String("from", email.From),
			zap.String("sender_domain", senderDomain),
			zap.Int("score", verdict.Score),
			zap.String("level", string(verdict.Level)),
			zap.String("reason", verdict.Message))
		return fmt.Errorf("550 Rejected as scam (level: %s, score: %d)", verdict.Level, verdict.Score)
	}

	// Prepend the risk headers to the tagged message
	var modifiedEmail bytes.Buffer

	fmt.Fprintf(&modifiedEmail, "%s: %s\r\n", s.filter.levelHeader, verdict.Level)
	fmt.Fprintf(&modifiedEmail, "%s: %d\r\n", s.filter.scoreHeader, verdict.Score)
	fmt.Fprintf(&modifiedEmail, "%s: %s\r\n", s.filter.reasonHeader, verdict.Message)

	flagged := levelRank[verdict.Level] >= levelRank[core.LevelHigh]
	if flagged && s.filter.modifySubject && s.filter.subjectPrefix != "" {
		originalSubject := msg.Header.Get("Subject")

		decodedSubject, err := decodeEncodedHeader(originalSubject)
		if err != nil {
			decodedSubject = originalSubject
		}

		if !strings.HasPrefix(decodedSubject, s.filter.subjectPrefix) {
			newSubject := s.filter.subjectPrefix + decodedSubject

			fmt.Fprintf(&modifiedEmail, "Subject: %s\r\n", newSubject)

			// Skip the original subject when writing other headers
			for key, values := range msg.Header {
				if !strings.EqualFold(key, "Subject") {
					for _, value := range values {
						fmt.Fprintf(&modifiedEmail, "%s: %s\r\n", key, value)
					}
				}
			}
		} else {
			for key, values := range msg.Header {
				for _, value := range values {
					fmt.Fprintf(&modifiedEmail, "%s: %s\r\n", key, value)
				}
			}
		}
	} else {
		for key, values := range msg.Header {
			for _, value := range values {
				fmt.Fprintf(&modifiedEmail, "%s: %s\r\n", key, value)
			}
		}
	}

	// End of headers
	fmt.Fprintf(&modifiedEmail, "\r\n")

	// Find where the original body starts in the raw data
	bodyStartIndex := bytes.Index(rawDataCopy, []byte("\r\n\r\n"))
	if bodyStartIndex == -1 {
		bodyStartIndex = bytes.Index(rawDataCopy, []byte("\n\n"))
		if bodyStartIndex == -1 {
			// Fallback: the separator is missing, use the parsed body
			bodyBytes, err := io.ReadAll(msg.Body)
			if err != nil {
				s.filter.logger.Error("Failed to read message body", zap.Error(err))
				return err
			}
			modifiedEmail.Write(bodyBytes)
		} else {
			// Write the original body (preserving all MIME parts and attachments)
			modifiedEmail.Write(rawDataCopy[bodyStartIndex+2:])
		}
	} else {
		// Write the original body (preserving all MIME parts and attachments)
		modifiedEmail.Write(rawDataCopy[bodyStartIndex+4:])
	}

	if s.filter.relayEnabled {
		if err := s.filter.sendUpstream(s.sender, s.recipients, modifiedEmail.Bytes()); err != nil {
			s.filter.logger.Error("Failed to relay email upstream",
				zap.Error(err),
				zap.String("sender", email.From))
			return err
		}
	} else {
		s.filter.logger.Warn("Upstream relay disabled, this is likely a misconfiguration")
	}

	s.filter.logger.Info("Processed email",
		zap.String("from", email.From),
		zap.String("sender_domain", senderDomain),
		zap.String("level", string(verdict.Level)),
		zap.Int("score", verdict.Score))

	return nil
}

// Logout handles SMTP logout (not needed for our filter)
func (s *smtpSession) Logout() error {
	return nil
}

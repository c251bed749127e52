package outreach

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/business"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/phone"
)

// Service runs bulk outreach campaigns over selected businesses. Sends
// are throttled to stay inside provider rate limits, and each success is
// stamped on the business so it is never contacted twice.
type Service struct {
	client     *ent.Client
	email      EmailSender
	sms        SMSProvider
	log        logger.Logger
	emailDelay time.Duration
	smsDelay   time.Duration
	sleep      func(ctx context.Context, d time.Duration)
}

// NewService creates an outreach service.
func NewService(client *ent.Client, email EmailSender, sms SMSProvider, emailDelay, smsDelay time.Duration, log logger.Logger) *Service {
	return &Service{
		client:     client,
		email:      email,
		sms:        sms,
		log:        log,
		emailDelay: emailDelay,
		smsDelay:   smsDelay,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// SendEmails emails every eligible business among the given IDs:
// businesses with at least one address that have not been emailed yet.
// Ineligible IDs are silently dropped, matching the selection the target
// list shows.
func (s *Service) SendEmails(ctx context.Context, ids []int) (*models.OutreachResult, error) {
	targets, err := s.client.Business.Query().
		Where(
			business.IDIn(ids...),
			business.EmailsNotNil(),
			business.EmailSent(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load email targets: %w", err)
	}

	result := &models.OutreachResult{Errors: []string{}}
	if len(targets) == 0 {
		result.Errors = append(result.Errors, "No eligible businesses found (they may have already been emailed or lack email addresses)")
		return result, nil
	}

	for i, b := range targets {
		addr := firstNonEmpty(b.Emails)
		if addr == "" {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: No email address", b.Name))
			continue
		}

		if err := s.email.SendEmail(ctx, addr, b.Name); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %s", b.Name, addr, err))
			s.log.Error("email send failed", "business", b.Name, "error", err)
		} else {
			s.markEmailSent(ctx, b)
			result.Sent++
			s.log.Info("email sent", "progress", fmt.Sprintf("%d/%d", result.Sent, len(targets)), "business", b.Name, "to", addr)
		}

		if i < len(targets)-1 {
			s.sleep(ctx, s.emailDelay)
		}
	}

	return result, nil
}

// SendSMS texts every eligible business among the given IDs: businesses
// with a phone number that have not been messaged yet.
func (s *Service) SendSMS(ctx context.Context, ids []int) (*models.OutreachResult, error) {
	targets, err := s.client.Business.Query().
		Where(
			business.IDIn(ids...),
			business.PhoneNEQ(""),
			business.SmsSent(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load SMS targets: %w", err)
	}

	result := &models.OutreachResult{Errors: []string{}}
	if len(targets) == 0 {
		result.Errors = append(result.Errors, "No eligible businesses found (they may have already been messaged or lack phone numbers)")
		return result, nil
	}

	for i, b := range targets {
		to := phone.NormalizeForSMS(b.Phone)
		if to == "" {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: No phone number", b.Name))
			continue
		}
		// Suspect numbers are still attempted; the gateway reports the
		// per-recipient outcome either way.
		if !phone.IsValid(to, "") {
			s.log.Warn("sending to a number that fails validation", "business", b.Name, "to", to)
		}

		if err := s.sms.SendSMS(ctx, to, SMSText(b.Name)); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %s", b.Name, to, err))
			s.log.Error("SMS send failed", "business", b.Name, "error", err)
		} else {
			s.markSMSSent(ctx, b)
			result.Sent++
			s.log.Info("SMS sent", "progress", fmt.Sprintf("%d/%d", result.Sent, len(targets)), "business", b.Name, "to", to)
		}

		if i < len(targets)-1 {
			s.sleep(ctx, s.smsDelay)
		}
	}

	return result, nil
}

// SMSBalance proxies the gateway's account balance.
func (s *Service) SMSBalance(ctx context.Context) (json.RawMessage, error) {
	return s.sms.Balance(ctx)
}

// SMSMessages proxies the gateway's message history.
func (s *Service) SMSMessages(ctx context.Context, limit, page int, status string) (json.RawMessage, error) {
	return s.sms.Messages(ctx, limit, page, status)
}

// markEmailSent stamps the contacted flag. A failed stamp is logged but
// does not undo a delivered email.
func (s *Service) markEmailSent(ctx context.Context, b *ent.Business) {
	err := s.client.Business.UpdateOneID(b.ID).
		SetEmailSent(true).
		SetEmailSentAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		s.log.Error("failed to stamp email_sent", "business", b.Name, "error", err)
	}
}

func (s *Service) markSMSSent(ctx context.Context, b *ent.Business) {
	err := s.client.Business.UpdateOneID(b.ID).
		SetSmsSent(true).
		SetSmsSentAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		s.log.Error("failed to stamp sms_sent", "business", b.Name, "error", err)
	}
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

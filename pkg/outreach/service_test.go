package outreach

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/ipropixel/leadfinder/pkg/logger"
)

type mockEmailSender struct {
	sent    []string
	failFor map[string]error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, toEmail, toName string) error {
	if err, ok := m.failFor[toEmail]; ok {
		return err
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

type mockSMSProvider struct {
	sent     []string
	messages []string
	failFor  map[string]error
}

func (m *mockSMSProvider) SendSMS(ctx context.Context, to, message string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, to)
	m.messages = append(m.messages, message)
	return nil
}

func (m *mockSMSProvider) Balance(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{"balance":42.5}`), nil
}

func (m *mockSMSProvider) Messages(ctx context.Context, limit, page int, status string) (json.RawMessage, error) {
	return json.RawMessage(`{"data":[]}`), nil
}

func setupService(t *testing.T, email *mockEmailSender, sms *mockSMSProvider) *Service {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:outreach?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { _ = client.Close() })

	s := NewService(client, email, sms, 0, 0, logger.Default())
	s.sleep = func(context.Context, time.Duration) {}
	return s
}

func seedBusiness(t *testing.T, s *Service, build func(*ent.BusinessCreate)) *ent.Business {
	t.Helper()
	c := s.client.Business.Create()
	build(c)
	b, err := c.Save(context.Background())
	require.NoError(t, err)
	return b
}

func TestSendEmails(t *testing.T) {
	email := &mockEmailSender{}
	s := setupService(t, email, &mockSMSProvider{})
	ctx := context.Background()

	a := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Alpha").SetEmails([]string{"alpha@biz.al"})
	})
	b := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Beta").SetEmails([]string{"", "beta@biz.al"})
	})

	result, err := s.SendEmails(ctx, []int{a.ID, b.ID})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	// First non-empty address wins.
	assert.Equal(t, []string{"alpha@biz.al", "beta@biz.al"}, email.sent)

	stamped, err := s.client.Business.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, stamped.EmailSent)
	assert.NotNil(t, stamped.EmailSentAt)
}

func TestSendEmailsSkipsAlreadySent(t *testing.T) {
	email := &mockEmailSender{}
	s := setupService(t, email, &mockSMSProvider{})

	sent := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Done").SetEmails([]string{"done@biz.al"}).SetEmailSent(true)
	})

	result, err := s.SendEmails(context.Background(), []int{sent.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "No eligible businesses")
}

func TestSendEmailsPartialFailure(t *testing.T) {
	email := &mockEmailSender{failFor: map[string]error{"bad@biz.al": errors.New("bounced")}}
	s := setupService(t, email, &mockSMSProvider{})
	ctx := context.Background()

	good := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Good").SetEmails([]string{"good@biz.al"})
	})
	bad := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Bad").SetEmails([]string{"bad@biz.al"})
	})

	result, err := s.SendEmails(ctx, []int{good.ID, bad.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Bad")
	assert.Contains(t, result.Errors[0], "bounced")

	// The failed business stays eligible for a retry.
	stillEligible, err := s.client.Business.Get(ctx, bad.ID)
	require.NoError(t, err)
	assert.False(t, stillEligible.EmailSent)
}

func TestSendSMSNormalizesPhones(t *testing.T) {
	sms := &mockSMSProvider{}
	s := setupService(t, &mockEmailSender{}, sms)
	ctx := context.Background()

	b := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Alpha Cafe").SetPhone("355 68 (227) 7167")
	})

	result, err := s.SendSMS(ctx, []int{b.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+355682277167", sms.sent[0])
	assert.Contains(t, sms.messages[0], "Pershendetje Alpha Cafe")

	stamped, err := s.client.Business.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, stamped.SmsSent)
	assert.NotNil(t, stamped.SmsSentAt)
}

func TestSendSMSAttemptsInvalidNumbers(t *testing.T) {
	sms := &mockSMSProvider{}
	s := setupService(t, &mockEmailSender{}, sms)
	ctx := context.Background()

	// A number that fails validation is warned about but still handed to
	// the gateway, which owns the per-recipient verdict.
	b := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Odd Number").SetPhone("+3551")
	})

	result, err := s.SendSMS(ctx, []int{b.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+3551", sms.sent[0])
}

func TestSendSMSSkipsIneligible(t *testing.T) {
	sms := &mockSMSProvider{}
	s := setupService(t, &mockEmailSender{}, sms)
	ctx := context.Background()

	noPhone := seedBusiness(t, s, func(c *ent.BusinessCreate) { c.SetName("Silent") })
	already := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Messaged").SetPhone("+3551").SetSmsSent(true)
	})

	result, err := s.SendSMS(ctx, []int{noPhone.ID, already.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Empty(t, sms.sent)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "No eligible businesses")
}

func TestSendSMSFailureKeepsEligibility(t *testing.T) {
	sms := &mockSMSProvider{failFor: map[string]error{"+3551": errors.New("gateway error")}}
	s := setupService(t, &mockEmailSender{}, sms)
	ctx := context.Background()

	b := seedBusiness(t, s, func(c *ent.BusinessCreate) {
		c.SetName("Flaky").SetPhone("+3551")
	})

	result, err := s.SendSMS(ctx, []int{b.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)

	fresh, err := s.client.Business.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, fresh.SmsSent)
}

func TestSMSBalanceAndMessagesProxies(t *testing.T) {
	s := setupService(t, &mockEmailSender{}, &mockSMSProvider{})
	ctx := context.Background()

	balance, err := s.SMSBalance(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":42.5}`, string(balance))

	messages, err := s.SMSMessages(ctx, 25, 1, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(messages))
}

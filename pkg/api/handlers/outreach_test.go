package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/outreach"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

type stubEmailSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *stubEmailSender) SendEmail(ctx context.Context, toEmail, toName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, toEmail)
	return nil
}

type stubSMSProvider struct {
	mu      sync.Mutex
	sent    []string
	balance json.RawMessage
}

func (s *stubSMSProvider) SendSMS(ctx context.Context, to, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return nil
}

func (s *stubSMSProvider) Balance(ctx context.Context) (json.RawMessage, error) {
	return s.balance, nil
}

func (s *stubSMSProvider) Messages(ctx context.Context, limit, page int, status string) (json.RawMessage, error) {
	return json.RawMessage(`{"data":[]}`), nil
}

func setupOutreachTest(t *testing.T) (*ent.Client, *stubEmailSender, *stubSMSProvider, *OutreachHandler, func()) {
	client := enttest.Open(t, "sqlite3", "file:outreachhandler?mode=memory&cache=shared&_fk=1")

	email := &stubEmailSender{}
	sms := &stubSMSProvider{balance: json.RawMessage(`{"balance":42.5}`)}
	service := outreach.NewService(client, email, sms, 0, 0, logger.Default())
	handler := NewOutreachHandler(service, nil)
	cleanup := func() { client.Close() }
	return client, email, sms, handler, cleanup
}

func seedOutreachBusiness(t *testing.T, client *ent.Client, name, phone string, emails []string) *ent.Business {
	t.Helper()
	b, err := client.Business.Create().
		SetName(name).
		SetPhone(phone).
		SetEmails(emails).
		SetSearchQuery("dentist tirana").
		SetScrapedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return b
}

func TestOutreachHandler_SendEmails(t *testing.T) {
	client, email, _, handler, cleanup := setupOutreachTest(t)
	defer cleanup()

	b := seedOutreachBusiness(t, client, "Denta Plus", "+355691111111", []string{"info@dentaplus.al"})

	e := echo.New()
	body, _ := json.Marshal(models.OutreachRequest{BusinessIDs: []int{b.ID}})
	req := httptest.NewRequest(http.MethodPost, "/outreach/email", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SendEmails(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.OutreachResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, []string{"info@dentaplus.al"}, email.sent)
}

func TestOutreachHandler_SendEmails_EmptyIDs(t *testing.T) {
	_, _, _, handler, cleanup := setupOutreachTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/outreach/email", strings.NewReader(`{"business_ids":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SendEmails(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOutreachHandler_SendSMS(t *testing.T) {
	client, _, sms, handler, cleanup := setupOutreachTest(t)
	defer cleanup()

	b := seedOutreachBusiness(t, client, "Denta Plus", "+355 69 111 1111", nil)

	e := echo.New()
	body, _ := json.Marshal(models.OutreachRequest{BusinessIDs: []int{b.ID}})
	req := httptest.NewRequest(http.MethodPost, "/outreach/sms", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SendSMS(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.OutreachResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, []string{"+355691111111"}, sms.sent)
}

func TestOutreachHandler_SMSBalance(t *testing.T) {
	_, _, _, handler, cleanup := setupOutreachTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/outreach/sms/balance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetSMSBalance(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":42.5}`, rec.Body.String())
}

func TestOutreachHandler_SMSMessages(t *testing.T) {
	_, _, _, handler, cleanup := setupOutreachTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/outreach/sms/messages?limit=10&page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListSMSMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"payinfo/internal/api/handlers"
	"payinfo/internal/audit"
	"payinfo/internal/config"
	"payinfo/internal/housekeeping"
	"payinfo/internal/models"
	"payinfo/internal/repository"
	"payinfo/internal/services"
	"payinfo/internal/services/auth"
	"payinfo/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

func setupRouter(t *testing.T) (*httptest.Server, *mocks.MockPaymentInfoService, *mocks.MockAuditor) {
	t.Helper()

	info := new(mocks.MockInfoService)
	info.On("GetInfo", mock.Anything).Return(models.Info{ServiceName: services.ServiceName})
	svc := new(mocks.MockPaymentInfoService)
	hk := new(mocks.MockHousekeepingService)
	auditor := new(mocks.MockAuditor)

	h := handlers.NewHandlers(info, svc, hk, auditor)
	am := auth.NewMiddleware(auth.NewTokenService(testSecret))

	server := httptest.NewServer(SetupRouter(h, am))
	t.Cleanup(server.Close)
	return server, svc, auditor
}

func issueToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := auth.NewTokenService(testSecret).IssueToken(subject, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRouter_PublicLookup(t *testing.T) {
	server, svc, _ := setupRouter(t)
	document := []byte(`{"referenceId":"order-42"}`)
	svc.On("GetPaymentInfo", mock.Anything, "order-42").
		Return(&models.StoredPaymentInfo{ReferenceID: "order-42", Document: document}, nil)
	svc.On("GetPaymentInfo", mock.Anything, "missing").Return(nil, services.ErrNotFound)

	resp, err := http.Get(server.URL + "/payments/order-42")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, document, body)

	resp, err = http.Get(server.URL + "/payments/missing")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, body)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	server, _, _ := setupRouter(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/info")
	require.NoError(t, err)
	var info models.Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	resp.Body.Close()
	assert.Equal(t, services.ServiceName, info.ServiceName)
}

func TestRouter_WriteRequiresToken(t *testing.T) {
	server, svc, auditor := setupRouter(t)
	payload := []byte(`{"referenceId":"order-42"}`)

	t.Run("No Token", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/payments", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		svc.AssertNotCalled(t, "CreatePaymentInfo", mock.Anything, mock.Anything)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		forged, err := auth.NewTokenService("other-secret").IssueToken("mallory", time.Hour)
		require.NoError(t, err)

		req, _ := http.NewRequest("POST", server.URL+"/api/payments", bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+forged)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid Token", func(t *testing.T) {
		svc.On("CreatePaymentInfo", mock.Anything, models.PaymentInfo{ReferenceID: "order-42"}).
			Return(&models.StoredPaymentInfo{ReferenceID: "order-42", Document: payload}, nil)
		auditor.On("Log", mock.Anything, "payment_info.store", "merchant-1", "payment_info:order-42", mock.Anything).Return()

		req, _ := http.NewRequest("POST", server.URL+"/api/payments", bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "merchant-1"))
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		auditor.AssertExpectations(t)
	})
}

func TestRouter_UnroutableLookupIsEmpty404(t *testing.T) {
	server, svc, _ := setupRouter(t)

	for _, path := range []string{"/payments/a%2Fb", "/payments/a/b", "/payments/"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Empty(t, body, path)
	}
	svc.AssertNotCalled(t, "GetPaymentInfo", mock.Anything, mock.Anything)

	// Other unknown paths keep the default response.
	resp, err := http.Get(server.URL + "/nowhere")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404 page not found\n", string(body))
}

// setupStack wires the router to a real SQLite repository the way serve does.
func setupStack(t *testing.T) (*httptest.Server, *repository.Repository) {
	t.Helper()

	cfg := &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "router.db")}}
	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.EnsureSchemaBootstrapped())

	h := handlers.NewHandlers(
		services.NewInfoService("test", time.Now(), repo),
		services.NewPaymentInfoService(repo, 0),
		housekeeping.NewService(repo, time.Hour),
		audit.NewLoggerAuditor(false),
	)
	am := auth.NewMiddleware(auth.NewTokenService(testSecret))

	server := httptest.NewServer(SetupRouter(h, am))
	t.Cleanup(server.Close)
	return server, repo
}

func TestRouter_StoreThenLookup(t *testing.T) {
	server, repo := setupStack(t)
	token := issueToken(t, "merchant-1")

	post := func(payload []byte) (*http.Response, []byte) {
		req, _ := http.NewRequest("POST", server.URL+"/api/payments", bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp, body
	}

	payload := []byte(`{
		"referenceId": "order-42",
		"description": "Two espressos",
		"receiver": {
			"accountAddress": "0x1234567890abcdef1234567890abcdef12345678",
			"businessData": {"name": "Coffee Shop", "address": {"city": "Lisbon"}}
		},
		"action": {"amount": "7.20", "currency": "cUSD", "action": "charge", "timestamp": 1700000000},
		"requiredPayerData": {"email": true}
	}`)

	resp, created := post(payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(created))

	stored, err := repo.GetPaymentInfo(context.Background(), "order-42")
	require.NoError(t, err)
	assert.Equal(t, string(stored.Document), string(created))

	lookup, err := http.Get(server.URL + "/payments/order-42")
	require.NoError(t, err)
	body, _ := io.ReadAll(lookup.Body)
	lookup.Body.Close()
	assert.Equal(t, http.StatusOK, lookup.StatusCode)
	assert.Equal(t, "application/json", lookup.Header.Get("Content-Type"))
	assert.Equal(t, string(stored.Document), string(body), "Lookup must return the stored bytes")
	assert.JSONEq(t, string(payload), string(body))

	// A second POST for the same id conflicts and leaves the record alone.
	resp, _ = post(bytes.Replace(payload, []byte("Two espressos"), []byte("Changed"), 1))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	lookup, err = http.Get(server.URL + "/payments/order-42")
	require.NoError(t, err)
	again, _ := io.ReadAll(lookup.Body)
	lookup.Body.Close()
	assert.Equal(t, body, again)

	missing, err := http.Get(server.URL + "/payments/order-43")
	require.NoError(t, err)
	empty, _ := io.ReadAll(missing.Body)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.Empty(t, empty)
}

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"docintel-be/internal/bootstrap"
	"docintel-be/internal/config"
	"docintel-be/internal/entity"
	"docintel-be/internal/server"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			BaseURL:            "http://localhost:3000",
			ClientURL:          "http://localhost:5173",
			Environment:        "test",
			LogFilePath:        "test.log",
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Database: config.DatabaseConfig{Driver: "memory"},
		Session:  config.SessionConfig{TTL: time.Hour, StateSecret: "test-secret"},
		Pipeline: config.PipelineConfig{
			ProcessingDelay:     5 * time.Millisecond,
			AssistantReplyDelay: 5 * time.Millisecond,
		},
		Microsoft: config.MicrosoftConfig{EmailDomain: "@company.com"},
	}
}

func newTestApp(t *testing.T) (*fiber.App, *bootstrap.Container) {
	t.Helper()
	container := bootstrap.NewContainer(nil, testConfig())
	require.NoError(t, container.ConsumerService.Consume(context.Background()))
	srv := server.New(testConfig(), container)
	return srv.GetApp(), container
}

func seedAccount(t *testing.T, container *bootstrap.Container, email, password string, role entity.UserRole) *entity.User {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	user := &entity.User{
		Username:       email,
		Email:          email,
		PasswordHash:   &hashStr,
		Role:           role,
		FirstName:      "Test",
		LastName:       "User",
		StorageLimitMB: entity.DefaultStorageLimitMB,
		IsApproved:     true,
	}
	uow := container.UowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var parsed map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &parsed), "body: %s", data)
	}
	return resp, parsed
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, 200, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	app, container := newTestApp(t)
	seedAccount(t, container, "jane@company.com", "secret123", entity.UserRoleUser)

	// Missing token
	resp, body := doJSON(t, app, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "No token provided", body["message"])

	// Garbage token
	resp, body = doJSON(t, app, "GET", "/api/auth/me", "garbage", nil)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])

	// Bad credentials
	resp, body = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "jane@company.com",
		"password": "wrong",
	})
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])

	// Happy path
	token := login(t, app, "jane@company.com", "secret123")
	resp, body = doJSON(t, app, "GET", "/api/auth/me", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	me := body["data"].(map[string]interface{})
	assert.Equal(t, "jane@company.com", me["email"])
	// The password hash must never appear in any payload.
	_, leaked := me["passwordHash"]
	assert.False(t, leaked)
	_, leaked = me["password"]
	assert.False(t, leaked)

	// Logout kills the session
	resp, _ = doJSON(t, app, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestDocumentEndpoints(t *testing.T) {
	app, container := newTestApp(t)
	seedAccount(t, container, "jane@company.com", "secret123", entity.UserRoleUser)
	token := login(t, app, "jane@company.com", "secret123")

	// Create
	resp, body := doJSON(t, app, "POST", "/api/documents", token, map[string]interface{}{
		"filename":     "report.pdf",
		"originalName": "Q3 Report.pdf",
		"fileType":     "application/pdf",
		"fileSize":     2048,
	})
	require.Equal(t, 200, resp.StatusCode)
	created := body["data"].(map[string]interface{})
	docId := int(created["id"].(float64))
	assert.Equal(t, false, created["isProcessing"])

	// List
	resp, body = doJSON(t, app, "GET", "/api/documents", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)

	// Update
	resp, body = doJSON(t, app, "PUT", fmt.Sprintf("/api/documents/%d", docId), token, map[string]interface{}{
		"isShared": true,
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["isShared"])

	// Shared listing now carries it
	resp, body = doJSON(t, app, "GET", "/api/documents/shared", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)

	// Bad id parse
	resp, body = doJSON(t, app, "PUT", "/api/documents/abc", token, map[string]interface{}{})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Invalid document ID", body["message"])

	// Unknown id
	resp, _ = doJSON(t, app, "DELETE", "/api/documents/9999", token, nil)
	assert.Equal(t, 404, resp.StatusCode)

	// Delete
	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/documents/%d", docId), token, nil)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUploadAndSearch(t *testing.T) {
	app, container := newTestApp(t)
	seedAccount(t, container, "jane@company.com", "secret123", entity.UserRoleUser)
	token := login(t, app, "jane@company.com", "secret123")

	resp, body := doJSON(t, app, "POST", "/api/upload", token, map[string]interface{}{})
	require.Equal(t, 200, resp.StatusCode)
	doc := body["data"].(map[string]interface{})
	assert.Equal(t, "uploaded_file.pdf", doc["filename"])
	assert.Equal(t, true, doc["isProcessing"])

	// The simulated pipeline flips the flags shortly after.
	assert.Eventually(t, func() bool {
		resp, body := doJSON(t, app, "GET", "/api/documents", token, nil)
		if resp.StatusCode != 200 {
			return false
		}
		docs := body["data"].([]interface{})
		if len(docs) != 1 {
			return false
		}
		d := docs[0].(map[string]interface{})
		return d["isIndexed"] == true && d["isProcessing"] == false
	}, 2*time.Second, 20*time.Millisecond)

	resp, body = doJSON(t, app, "GET", "/api/search?q=uploaded", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)
}

func TestChatEndpoints(t *testing.T) {
	app, container := newTestApp(t)
	seedAccount(t, container, "jane@company.com", "secret123", entity.UserRoleUser)
	token := login(t, app, "jane@company.com", "secret123")

	resp, body := doJSON(t, app, "POST", "/api/messages", token, map[string]interface{}{
		"content": "what changed in the latest contract?",
		"role":    "user",
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "user", body["data"].(map[string]interface{})["role"])

	// Invalid role rejected up front
	resp, body = doJSON(t, app, "POST", "/api/messages", token, map[string]interface{}{
		"content": "x",
		"role":    "system",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Invalid message data", body["message"])

	// Delayed assistant reply lands
	assert.Eventually(t, func() bool {
		resp, body := doJSON(t, app, "GET", "/api/messages", token, nil)
		if resp.StatusCode != 200 {
			return false
		}
		msgs := body["data"].([]interface{})
		if len(msgs) != 2 {
			return false
		}
		return msgs[0].(map[string]interface{})["role"] == "assistant"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestStatsEndpoints(t *testing.T) {
	app, container := newTestApp(t)
	seedAccount(t, container, "jane@company.com", "secret123", entity.UserRoleUser)
	token := login(t, app, "jane@company.com", "secret123")

	resp, body := doJSON(t, app, "GET", "/api/dashboard/stats", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	stats := body["data"].(map[string]interface{})
	assert.Contains(t, stats, "totalDocuments")
	assert.Contains(t, stats, "queriesToday")

	resp, _ = doJSON(t, app, "GET", "/api/analytics?range=month", token, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/analytics?range=decade", token, nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	app, container := newTestApp(t)
	seedAccount(t, container, "user@company.com", "secret123", entity.UserRoleUser)
	seedAccount(t, container, "admin@company.com", "secret123", entity.UserRoleAdmin)

	userToken := login(t, app, "user@company.com", "secret123")
	adminToken := login(t, app, "admin@company.com", "secret123")

	resp, body := doJSON(t, app, "GET", "/api/microsoft/admin/approval-requests", userToken, nil)
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, "Access denied: Admins only", body["message"])

	resp, _ = doJSON(t, app, "GET", "/api/microsoft/admin/approval-requests", adminToken, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/microsoft/admin/approval-requests/999/decision", adminToken, map[string]interface{}{
		"decision": "approved",
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestMicrosoftPublicEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	// Config status is public and reports unconfigured credentials.
	resp, body := doJSON(t, app, "GET", "/api/microsoft/config/status", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["microsoftGraphEnabled"])

	// LLM server ping upserts by endpoint without auth.
	resp, _ = doJSON(t, app, "POST", "/api/microsoft/llm-server/ping", "", map[string]interface{}{
		"serverEndpoint": "http://gpu-1:8000",
		"version":        "1.2.0",
	})
	require.Equal(t, 200, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", "/api/microsoft/llm-server/ping", "", map[string]interface{}{
		"serverEndpoint": "http://gpu-1:8000",
		"version":        "1.2.1",
	})
	require.Equal(t, 200, resp.StatusCode)

	resp, body = doJSON(t, app, "GET", "/api/microsoft/llm-server/status", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	servers := body["data"].([]interface{})
	require.Len(t, servers, 1)
	assert.Equal(t, "1.2.1", servers[0].(map[string]interface{})["version"])
}

func TestSettingsAcknowledge(t *testing.T) {
	app, container := newTestApp(t)
	seedAccount(t, container, "jane@company.com", "secret123", entity.UserRoleUser)
	token := login(t, app, "jane@company.com", "secret123")

	for _, path := range []string{"/api/settings/agent", "/api/settings/user", "/api/settings/security"} {
		resp, body := doJSON(t, app, "POST", path, token, map[string]interface{}{"theme": "dark"})
		require.Equal(t, 200, resp.StatusCode, path)
		assert.Equal(t, true, body["success"])
	}
}

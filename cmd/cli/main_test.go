package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestMovementBody(t *testing.T) {
	body := movementBody("SV-000001", "25.50", "salary", "")
	assert.Equal(t, "SV-000001", body["account_number"])
	assert.Equal(t, "25.50", body["amount"])
	assert.Equal(t, "salary", body["description"])
	assert.NotContains(t, body, "date")

	body = movementBody("SV-000001", "25.50", "salary", "2024-06-01")
	assert.Equal(t, "2024-06-01T00:00:00Z", body["date"])
}

func TestDoGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/SV-000001/balance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"account_number":"SV-000001","balance":"42.50"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		doGet("/api/v1/accounts/SV-000001/balance", nil)
	})

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "42.50", parsed["balance"])
}

func TestDoPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alice Jones", body["customer_name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number":"SV-000001"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		doPost("/api/v1/accounts", map[string]any{"customer_name": "Alice Jones", "type": "savings"})
	})

	assert.Contains(t, out, "SV-000001")
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(map[string]any{"number": "SV-000001"})
	})

	assert.Equal(t, "{\n  \"number\": \"SV-000001\"\n}\n", out)
}

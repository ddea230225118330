package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerTarget(t *testing.T) {
	tests := []struct {
		name           string
		host           string
		forwardedProto string
		wantHost       string
		wantScheme     string
	}{
		{name: "request host and protocol", host: "board.example:8080", wantHost: "board.example:8080", wantScheme: "http"},
		{name: "missing host uses APP_HOST", host: "", wantHost: "localhost:8080", wantScheme: "http"},
		{name: "first forwarded proto wins", host: "board.example", forwardedProto: "https, http", wantHost: "board.example", wantScheme: "https"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, schemes := swaggerTarget(tt.host, tt.forwardedProto, "http", "localhost:8080")

			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, []string{tt.wantScheme}, schemes)
		})
	}
}

func TestSwaggerUI_DocJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/swagger/*", SwaggerUI("localhost:8080"))

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	req.Host = "board.example"
	req.Header.Set("X-Forwarded-Proto", "https")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"host": "board.example"`)
	assert.Contains(t, string(body), `"https"`)
	assert.Contains(t, string(body), `"/posts/{id}/replies"`)
}

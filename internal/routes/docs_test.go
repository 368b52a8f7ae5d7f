package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/config"
)

func TestRegisterDocsRoutesServesDocsPageAndSpec(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{AppEnv: "development", EnableDocs: true}

	if err := registerDocsRoutes(app, cfg); err != nil {
		t.Fatalf("registerDocsRoutes: %v", err)
	}

	pageReq := httptest.NewRequest(http.MethodGet, "/docs", nil)
	pageResp, err := app.Test(pageReq)
	if err != nil {
		t.Fatalf("app.Test docs page: %v", err)
	}
	defer pageResp.Body.Close()

	if pageResp.StatusCode != http.StatusOK {
		t.Fatalf("expected docs page status 200, got %d", pageResp.StatusCode)
	}
	if got := pageResp.Header.Get("Content-Security-Policy"); !strings.Contains(got, "default-src 'none'") {
		t.Fatalf("expected restrictive CSP, got %q", got)
	}

	specReq := httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil)
	specResp, err := app.Test(specReq)
	if err != nil {
		t.Fatalf("app.Test docs spec: %v", err)
	}
	defer specResp.Body.Close()

	if specResp.StatusCode != http.StatusOK {
		t.Fatalf("expected docs spec status 200, got %d", specResp.StatusCode)
	}
	if got := specResp.Header.Get(fiber.HeaderContentType); !strings.Contains(got, "application/yaml") {
		t.Fatalf("expected yaml content type, got %q", got)
	}
}

func TestRegisterDocsRoutesSkipsWhenDisabled(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{AppEnv: "production", EnableDocs: true}

	if err := registerDocsRoutes(app, cfg); err != nil {
		t.Fatalf("registerDocsRoutes: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 when docs are not in development, got %d", resp.StatusCode)
	}
}

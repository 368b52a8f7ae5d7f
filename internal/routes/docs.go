package routes

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/config"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      color-scheme: light;
      --bg: #f6f7f4;
      --text: #132019;
      --muted: #536258;
      --accent: #1f6f4a;
      --border: #d8ddd6;
      --code-bg: #0f172a;
      --code-text: #e2e8f0;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: Georgia, "Times New Roman", serif;
      color: var(--text);
      background: linear-gradient(180deg, #fcfcfa 0%, var(--bg) 100%);
    }
    main {
      max-width: 960px;
      margin: 0 auto;
      padding: 48px 20px 64px;
    }
    .hero, .panel {
      background: rgba(255, 255, 255, 0.92);
      border: 1px solid var(--border);
      border-radius: 18px;
      padding: 24px;
      margin-bottom: 20px;
    }
    .hero h1 { margin: 0 0 12px; font-size: clamp(2rem, 5vw, 3rem); }
    .hero p { margin: 0; color: var(--muted); line-height: 1.6; }
    .button {
      display: inline-flex;
      margin-top: 20px;
      padding: 11px 16px;
      border-radius: 999px;
      border: 1px solid var(--accent);
      color: #fff;
      background: var(--accent);
      text-decoration: none;
      font-weight: 600;
    }
    .panel h2 {
      margin: 0 0 6px;
      font-size: 0.92rem;
      text-transform: uppercase;
      letter-spacing: 0.08em;
      color: var(--muted);
    }
    pre {
      margin: 0;
      padding: 20px;
      overflow: auto;
      border-radius: 14px;
      background: var(--code-bg);
      color: var(--code-text);
      font-size: 0.92rem;
      line-height: 1.5;
    }
  </style>
</head>
<body>
  <main>
    <section class="hero">
      <h1>{{ .Title }}</h1>
      <p>The OpenAPI spec is served from the same origin at <code>/docs/openapi.yaml</code>. The docs surface is read-only and intended for development-only exposure.</p>
      <a class="button" href="/docs/openapi.yaml">Open Raw Spec</a>
    </section>
    <section class="panel">
      <h2>Last Loaded</h2>
      <span>{{ .LoadedAt }}</span>
    </section>
    <section class="panel">
      <h2>OpenAPI YAML</h2>
      <pre>{{ .Spec }}</pre>
    </section>
  </main>
</body>
</html>
`

type docsPageData struct {
	Title    string
	LoadedAt string
	Spec     string
}

func registerDocsRoutes(app fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	spec, err := loadOpenAPISpec()
	if err != nil {
		return fmt.Errorf("load openapi spec: %w", err)
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	pageData := docsPageData{
		Title:    "Fitness Tracker API Docs",
		LoadedAt: time.Now().UTC().Format(time.RFC3339),
		Spec:     string(spec),
	}

	indexHandler := func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; img-src 'self' data:; base-uri 'none'; form-action 'none'; frame-ancestors 'none'")

		var body bytes.Buffer
		if err := indexTemplate.Execute(&body, pageData); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render api docs")
		}

		return c.Status(fiber.StatusOK).Send(body.Bytes())
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/", indexHandler)
	app.Get("/docs/openapi.yaml", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, "application/yaml; charset=utf-8")
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="openapi.yaml"`)
		return c.Status(fiber.StatusOK).Send(spec)
	})

	return nil
}

func loadOpenAPISpec() ([]byte, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("resolve source path")
	}

	specPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "docs", "openapi.yaml")
	spec, err := os.ReadFile(specPath)
	if err != nil {
		return nil, err
	}

	return spec, nil
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("X-Robots-Tag", "noindex, nofollow")
}

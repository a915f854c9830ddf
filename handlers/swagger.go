package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>content-service — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the content and upload endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "content-service", "version": "v0.1.0" },
  "paths": {
    "/api/data": {
      "get": {
        "summary": "Fetch the full content document",
        "responses": { "200": { "description": "document with source marker" } }
      },
      "put": {
        "summary": "Replace the full content document",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object"} } } },
        "responses": { "200": { "description": "stored" }, "400": { "description": "malformed JSON or invalid structure" } }
      }
    },
    "/api/data/migrate": {
      "post": { "summary": "One-shot import of the seed document into the active backend", "responses": { "200": { "description": "migrated" }, "404": { "description": "seed not found" } } }
    },
    "/api/upload": {
      "post": { "summary": "Upload an image (multipart field: file)", "responses": { "200": { "description": "stored object info" }, "400": { "description": "missing file, bad type, too large" } } }
    },
    "/api/upload/delete": {
      "delete": { "summary": "Delete a stored object by public URL", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"url":{"type":"string"}}} } } }, "responses": { "200": { "description": "deleted" } } }
    },
    "/api/upload/list": {
      "get": { "summary": "List stored objects, optionally by prefix", "responses": { "200": { "description": "file list" } } }
    },
    "/health": { "get": { "summary": "Liveness probe", "responses": { "200": { "description": "ok" } } } },
    "/ready": { "get": { "summary": "Readiness probe with dependency status", "responses": { "200": { "description": "ready" }, "503": { "description": "a dependency is down" } } } }
  }
}`

package handler

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
    <title>termfolio — Swagger</title>
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

// Minimal OpenAPI document describing the portfolio API. The four list
// kinds share identical CRUD shapes; resume is a singleton.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "termfolio", "version": "v0.1.0" },
  "paths": {
    "/api/login": {
      "post": { "summary": "Exchange the admin password for a bearer token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "token returned" }, "401": { "description": "invalid password" } } }
    },
    "/api/projects": {
      "get": { "summary": "List projects", "responses": { "200": { "description": "array of projects" } } },
      "post": { "summary": "Create a project (auth)", "responses": { "201": { "description": "created" }, "400": { "description": "validation error" } } }
    },
    "/api/projects/{id}": {
      "put": { "summary": "Update a project (auth)", "responses": { "200": { "description": "updated" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Delete a project (auth)", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/education": { "get": { "summary": "List education entries", "responses": { "200": { "description": "array" } } } },
    "/api/experience": { "get": { "summary": "List experience entries", "responses": { "200": { "description": "array" } } } },
    "/api/techstack": { "get": { "summary": "List tech stack categories", "responses": { "200": { "description": "array" } } } },
    "/api/resume": {
      "get": { "summary": "Get the resume link", "responses": { "200": { "description": "single record or {link:'#'}" } } },
      "post": { "summary": "Replace the resume record (auth)", "responses": { "201": { "description": "replaced" } } }
    },
    "/api/seed": { "get": { "summary": "Reset content to the demo fixture", "responses": { "200": { "description": "seeded" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`

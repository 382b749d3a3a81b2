// Package handler exposes the portfolio store as the JSON API under /api.
// The five content kinds share one generic route set; resume gets the
// singleton treatment plus an optional file upload.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"termfolio/internal/auth"
	"termfolio/internal/portfolio"
	"termfolio/internal/portfolio/repository"
	"termfolio/internal/portfolio/service"
	"termfolio/pkg/middleware"
)

// FileStore is the slice of the object storage layer the upload route needs.
type FileStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Options carries the handler dependencies. Files may be nil, which
// disables the resume upload route.
type Options struct {
	Store         *service.Store
	Tokens        *auth.Manager
	AdminPassword string
	Files         FileStore
}

// RegisterRoutes mounts the API under /api. Reads are public; every
// mutating route requires a valid admin token.
func RegisterRoutes(r *gin.Engine, opts Options) {
	api := r.Group("/api")
	requireAuth := middleware.AuthMiddleware(opts.Tokens)

	api.POST("/login", loginHandler(opts.Tokens, opts.AdminPassword))
	api.GET("/seed", seedHandler(opts.Store))

	registerKind(api, opts.Store.Projects, requireAuth)
	registerKind(api, opts.Store.Education, requireAuth)
	registerKind(api, opts.Store.Experience, requireAuth)
	registerKind(api, opts.Store.TechStack, requireAuth)
	registerResume(api, opts.Store.Resume, requireAuth, opts.Files)
}

func loginHandler(tokens *auth.Manager, adminPassword string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if req.Password != adminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
			return
		}
		tok, err := tokens.Issue()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": tok})
	}
}

func seedHandler(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Seed(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Database seeded"})
	}
}

// registerKind mounts the uniform CRUD contract for one collection:
// GET list, POST create (201/400), PUT update (200/404), DELETE (200
// regardless of prior existence).
func registerKind[T any, PT repository.Entity[T]](rg *gin.RouterGroup, col *service.Collection[T, PT], requireAuth gin.HandlerFunc) {
	kind := col.Schema().Kind
	singular := col.Schema().Singular

	rg.GET("/"+kind, func(c *gin.Context) {
		list, err := col.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rg.POST("/"+kind, requireAuth, func(c *gin.Context) {
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		rec, err := col.Create(c.Request.Context(), fields)
		if err != nil {
			status := http.StatusInternalServerError
			var verr *portfolio.ValidationError
			if errors.As(err, &verr) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rec)
	})

	rg.PUT("/"+kind+"/:id", requireAuth, func(c *gin.Context) {
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		rec, err := col.Update(c.Request.Context(), c.Param("id"), fields)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": singular + " not found"})
			return
		}
		if err != nil {
			status := http.StatusInternalServerError
			var verr *portfolio.ValidationError
			if errors.As(err, &verr) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	rg.DELETE("/"+kind+"/:id", requireAuth, func(c *gin.Context) {
		if err := col.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": singular + " deleted"})
	})
}

func registerResume(rg *gin.RouterGroup, col *service.ResumeCollection, requireAuth gin.HandlerFunc, files FileStore) {
	rg.GET("/resume", func(c *gin.Context) {
		rec, err := col.Single(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if rec == nil {
			// no resume configured yet, clients treat "#" as unset
			c.JSON(http.StatusOK, gin.H{"link": "#"})
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	rg.POST("/resume", requireAuth, func(c *gin.Context) {
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		rec, err := col.Replace(c.Request.Context(), fields)
		if err != nil {
			status := http.StatusInternalServerError
			var verr *portfolio.ValidationError
			if errors.As(err, &verr) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rec)
	})

	if files == nil {
		return
	}
	rg.POST("/resume/upload", requireAuth, func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "file field required"})
			return
		}
		defer file.Close()

		key := "resume/" + filepath.Base(header.Filename)
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/pdf"
		}
		ctx := c.Request.Context()
		if err := files.Upload(ctx, key, file, header.Size, contentType); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		link, err := files.PresignedURL(ctx, key, 7*24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		rec, err := col.Replace(ctx, map[string]interface{}{"link": link})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rec)
	})
}

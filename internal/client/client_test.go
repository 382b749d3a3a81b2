package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"termfolio/internal/auth"
	"termfolio/internal/portfolio/handler"
	"termfolio/internal/portfolio/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	handler.RegisterRoutes(g, handler.Options{
		Store:         service.NewMemoryStore(),
		Tokens:        auth.NewManager("test-secret", time.Minute),
		AdminPassword: "admin123",
	})
	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewNormalizesBase(t *testing.T) {
	require.Equal(t, "http://x:5000/api", New("http://x:5000").base)
	require.Equal(t, "http://x:5000/api", New("http://x:5000/").base)
	require.Equal(t, "http://x:5000/api", New("http://x:5000/api").base)
}

func TestLoginAndMutate(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)

	tok, err := c.Login(ctx, "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	rec, err := c.CreateKind(ctx, "projects", map[string]interface{}{
		"title":       "X",
		"description": "Y",
		"techBucket":  []string{"Go"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec["_id"])

	list, err := c.ListKind(ctx, "projects")
	require.NoError(t, err)
	require.Len(t, list, 1)

	id := rec["_id"].(string)
	updated, err := c.UpdateKind(ctx, "projects", id, map[string]interface{}{"title": "Z"})
	require.NoError(t, err)
	require.Equal(t, "Z", updated["title"])

	require.NoError(t, c.DeleteKind(ctx, "projects", id))
	list, err = c.ListKind(ctx, "projects")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestMutateWithoutTokenIsUnauthorized(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	_, err := c.CreateKind(context.Background(), "projects", map[string]interface{}{
		"title": "X", "description": "Y",
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTypedGetters(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	require.NoError(t, c.Seed(ctx))

	projects, err := c.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.NotEmpty(t, projects[0].Title)

	edu, err := c.Education(ctx)
	require.NoError(t, err)
	require.Len(t, edu, 2)

	exp, err := c.Experience(ctx)
	require.NoError(t, err)
	require.Len(t, exp, 2)

	stacks, err := c.TechStack(ctx)
	require.NoError(t, err)
	require.Len(t, stacks, 4)
}

func TestResumeSingleton(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	// unset resume decodes to the "#" placeholder
	resume, err := c.Resume(ctx)
	require.NoError(t, err)
	require.Equal(t, "#", resume.Link)

	// and lists as an empty tab in the admin console
	list, err := c.ListKind(ctx, "resume")
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = c.Login(ctx, "admin123")
	require.NoError(t, err)
	_, err = c.UpdateKind(ctx, "resume", "", map[string]interface{}{"link": "https://a.example/r.pdf"})
	require.NoError(t, err)

	resume, err = c.Resume(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://a.example/r.pdf", resume.Link)

	list, err = c.ListKind(ctx, "resume")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "admin123")
	require.NoError(t, err)

	_, err = c.CreateKind(ctx, "projects", map[string]interface{}{"title": "X"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "description")
}

func TestContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	c := New(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.ListKind(ctx, "projects")
	require.Error(t, err)
}

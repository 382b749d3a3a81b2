package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"termfolio/internal/portfolio"
	"termfolio/internal/portfolio/repository"
)

func TestCollectionCreateValidates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Projects.Create(ctx, map[string]interface{}{"title": "X"})
	require.Error(t, err)
	verr, ok := err.(*portfolio.ValidationError)
	require.True(t, ok)
	require.Equal(t, []string{"description"}, verr.Missing)

	list, err := s.Projects.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCollectionCreateThenList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec, err := s.Projects.Create(ctx, map[string]interface{}{
		"title":       "X",
		"description": "Y",
		"techBucket":  []interface{}{"A", "B"},
	})
	require.NoError(t, err)
	require.False(t, rec.ID.IsZero())
	require.Equal(t, "X", rec.Title)
	require.Equal(t, []string{"A", "B"}, rec.TechBucket)

	list, err := s.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, rec.ID, list[0].ID)
}

func TestCollectionCreateDefaultsTechBucket(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec, err := s.Projects.Create(ctx, map[string]interface{}{"title": "X", "description": "Y"})
	require.NoError(t, err)
	require.NotNil(t, rec.TechBucket)
	require.Empty(t, rec.TechBucket)
}

func TestCollectionUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Education.Update(ctx, "64f000000000000000000000", map[string]interface{}{"degree": "MSc"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollectionUpdateIgnoresIdentifier(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec, err := s.Education.Create(ctx, map[string]interface{}{
		"institution": "MIT", "degree": "BSc", "year": "2020",
	})
	require.NoError(t, err)

	got, err := s.Education.Update(ctx, rec.ID.Hex(), map[string]interface{}{
		"_id":    "ffffffffffffffffffffffff",
		"degree": "MSc",
	})
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, "MSc", got.Degree)
}

func TestResumeSingleton(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	none, err := s.Resume.Single(ctx)
	require.NoError(t, err)
	require.Nil(t, none)

	for _, link := range []string{"https://a.example/r.pdf", "https://b.example/r.pdf", "https://c.example/r.pdf"} {
		_, err := s.Resume.Replace(ctx, map[string]interface{}{"link": link})
		require.NoError(t, err)

		list, err := s.Resume.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, link, list[0].Link)
		require.True(t, list[0].Active)
	}
}

func TestResumeReplaceValidationLeavesRecord(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Resume.Replace(ctx, map[string]interface{}{"link": "https://a.example/r.pdf"})
	require.NoError(t, err)

	_, err = s.Resume.Replace(ctx, map[string]interface{}{"link": ""})
	require.Error(t, err)

	cur, err := s.Resume.Single(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	require.Equal(t, "https://a.example/r.pdf", cur.Link)
}

func TestSeedPopulatesFixture(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	// pre-existing junk gets wiped, resume survives
	_, err := s.Projects.Create(ctx, map[string]interface{}{"title": "junk", "description": "junk"})
	require.NoError(t, err)
	_, err = s.Resume.Replace(ctx, map[string]interface{}{"link": "https://keep.example/r.pdf"})
	require.NoError(t, err)

	require.NoError(t, s.Seed(ctx))

	projects, err := s.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "Terminal Portfolio", projects[0].Title)

	education, err := s.Education.List(ctx)
	require.NoError(t, err)
	require.Len(t, education, 2)

	tech, err := s.TechStack.List(ctx)
	require.NoError(t, err)
	require.Len(t, tech, 4)

	exp, err := s.Experience.List(ctx)
	require.NoError(t, err)
	require.Len(t, exp, 2)

	kept, err := s.Resume.Single(ctx)
	require.NoError(t, err)
	require.NotNil(t, kept)
	require.Equal(t, "https://keep.example/r.pdf", kept.Link)

	// idempotent in effect
	require.NoError(t, s.Seed(ctx))
	projects, err = s.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
}

// Package service wires the generic repositories into the per-kind
// operations the HTTP layer exposes. Validation happens here against the
// kind's schema descriptor, so both repository flavors behave identically.
package service

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/mongo"

	"termfolio/internal/portfolio"
	"termfolio/internal/portfolio/repository"
)

// Collection binds one repository instance to its schema. It is
// instantiated once per kind; there is no per-kind handler code.
type Collection[T any, PT repository.Entity[T]] struct {
	repo   repository.Repository[T, PT]
	schema portfolio.Schema
}

func NewCollection[T any, PT repository.Entity[T]](repo repository.Repository[T, PT], schema portfolio.Schema) *Collection[T, PT] {
	return &Collection[T, PT]{repo: repo, schema: schema}
}

func (c *Collection[T, PT]) Schema() portfolio.Schema { return c.schema }

func (c *Collection[T, PT]) List(ctx context.Context) ([]PT, error) {
	return c.repo.List(ctx)
}

// Create validates required fields per the schema, then inserts. Unknown
// keys and "_id"/"__v" are dropped before validation.
func (c *Collection[T, PT]) Create(ctx context.Context, fields map[string]interface{}) (PT, error) {
	fields = c.schema.Filter(fields)
	if err := c.schema.Validate(fields); err != nil {
		return nil, err
	}
	rec, err := decode[T, PT](fields)
	if err != nil {
		return nil, err
	}
	return c.repo.Insert(ctx, rec)
}

// Update merges the supplied fields into the stored record. Absent fields
// keep their stored values; a supplied required field must not be emptied.
// Unknown ids surface repository.ErrNotFound.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, fields map[string]interface{}) (PT, error) {
	fields = c.schema.Filter(fields)
	if err := c.schema.ValidatePartial(fields); err != nil {
		return nil, err
	}
	return c.repo.UpdateByID(ctx, id, fields)
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	return c.repo.DeleteByID(ctx, id)
}

func (c *Collection[T, PT]) deleteAll(ctx context.Context) error {
	return c.repo.DeleteAll(ctx)
}

func (c *Collection[T, PT]) insert(ctx context.Context, rec PT) (PT, error) {
	return c.repo.Insert(ctx, rec)
}

func decode[T any, PT repository.Entity[T]](fields map[string]interface{}) (PT, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	out := PT(&rec)
	if n, ok := any(out).(interface{ Normalize() }); ok {
		n.Normalize()
	}
	return out, nil
}

// ResumeCollection adds the singleton convention on top of the generic
// collection: at most one resume record exists, enforced by replacing the
// whole collection on write.
type ResumeCollection struct {
	*Collection[portfolio.Resume, *portfolio.Resume]
}

// Single returns the one resume record, or nil when none is stored.
func (r *ResumeCollection) Single(ctx context.Context) (*portfolio.Resume, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Replace validates and decodes the incoming record before touching the
// store, then clears the collection and inserts. Validation failures leave
// the existing record untouched. The delete and insert are two store calls;
// on MongoDB without transactions a crash between them can leave the
// collection empty — an accepted race, see DESIGN.md.
func (r *ResumeCollection) Replace(ctx context.Context, fields map[string]interface{}) (*portfolio.Resume, error) {
	fields = r.schema.Filter(fields)
	if _, ok := fields["active"]; !ok {
		fields["active"] = true
	}
	if err := r.schema.Validate(fields); err != nil {
		return nil, err
	}
	rec, err := decode[portfolio.Resume, *portfolio.Resume](fields)
	if err != nil {
		return nil, err
	}
	if err := r.deleteAll(ctx); err != nil {
		return nil, err
	}
	return r.insert(ctx, rec)
}

// Store aggregates the five collections behind the API gateway.
type Store struct {
	Projects   *Collection[portfolio.Project, *portfolio.Project]
	Education  *Collection[portfolio.Education, *portfolio.Education]
	Experience *Collection[portfolio.Experience, *portfolio.Experience]
	TechStack  *Collection[portfolio.TechStack, *portfolio.TechStack]
	Resume     *ResumeCollection
}

// NewMemoryStore builds a Store over in-memory repositories (tests, DB-less
// development mode).
func NewMemoryStore() *Store {
	return &Store{
		Projects:   NewCollection[portfolio.Project](repository.NewMemoryRepo[portfolio.Project](), portfolio.ProjectSchema),
		Education:  NewCollection[portfolio.Education](repository.NewMemoryRepo[portfolio.Education](), portfolio.EducationSchema),
		Experience: NewCollection[portfolio.Experience](repository.NewMemoryRepo[portfolio.Experience](), portfolio.ExperienceSchema),
		TechStack:  NewCollection[portfolio.TechStack](repository.NewMemoryRepo[portfolio.TechStack](), portfolio.TechStackSchema),
		Resume:     &ResumeCollection{NewCollection[portfolio.Resume](repository.NewMemoryRepo[portfolio.Resume](), portfolio.ResumeSchema)},
	}
}

// NewMongoStore builds a Store over one MongoDB database, one collection
// per kind.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Projects:   NewCollection[portfolio.Project](repository.NewMongoRepo[portfolio.Project](db.Collection("projects")), portfolio.ProjectSchema),
		Education:  NewCollection[portfolio.Education](repository.NewMongoRepo[portfolio.Education](db.Collection("education")), portfolio.EducationSchema),
		Experience: NewCollection[portfolio.Experience](repository.NewMongoRepo[portfolio.Experience](db.Collection("experience")), portfolio.ExperienceSchema),
		TechStack:  NewCollection[portfolio.TechStack](repository.NewMongoRepo[portfolio.TechStack](db.Collection("techstack")), portfolio.TechStackSchema),
		Resume:     &ResumeCollection{NewCollection[portfolio.Resume](repository.NewMongoRepo[portfolio.Resume](db.Collection("resume")), portfolio.ResumeSchema)},
	}
}

// Package portfolio defines the five content kinds shown by the terminal
// site (projects, education, experience, tech stack, resume) together with
// their schema descriptors. The descriptors drive required-field validation
// on the server and form layout in the admin console, so the per-kind CRUD
// surface stays generic.
package portfolio

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a single portfolio project card.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	TechBucket  []string           `bson:"techBucket" json:"techBucket"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`
	Command     string             `bson:"command,omitempty" json:"command,omitempty"`
}

func (p *Project) GetID() primitive.ObjectID   { return p.ID }
func (p *Project) SetID(id primitive.ObjectID) { p.ID = id }

// Normalize keeps techBucket an empty sequence rather than null.
func (p *Project) Normalize() {
	if p.TechBucket == nil {
		p.TechBucket = []string{}
	}
}

type Education struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Institution string             `bson:"institution" json:"institution"`
	Degree      string             `bson:"degree" json:"degree"`
	Year        string             `bson:"year" json:"year"`
	Details     string             `bson:"details,omitempty" json:"details,omitempty"`
}

func (e *Education) GetID() primitive.ObjectID   { return e.ID }
func (e *Education) SetID(id primitive.ObjectID) { e.ID = id }

type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Role        string             `bson:"role" json:"role"`
	Company     string             `bson:"company" json:"company"`
	Duration    string             `bson:"duration" json:"duration"`
	Description string             `bson:"description" json:"description"`
}

func (e *Experience) GetID() primitive.ObjectID   { return e.ID }
func (e *Experience) SetID(id primitive.ObjectID) { e.ID = id }

type TechStack struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Category string             `bson:"category" json:"category"`
	Items    []string           `bson:"items" json:"items"`
}

func (t *TechStack) GetID() primitive.ObjectID   { return t.ID }
func (t *TechStack) SetID(id primitive.ObjectID) { t.ID = id }

// Resume holds the single downloadable resume link. The store keeps at most
// one record by convention (delete-all-then-insert on write).
type Resume struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Link   string             `bson:"link" json:"link"`
	Active bool               `bson:"active" json:"active"`
}

func (r *Resume) GetID() primitive.ObjectID   { return r.ID }
func (r *Resume) SetID(id primitive.ObjectID) { r.ID = id }

// FieldKind tells the validator and the admin form how to treat a field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldList
	FieldBool
)

// Field describes one schema field: its wire name, shape and whether a
// create must supply it.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Schema is the per-kind descriptor shared by server validation and the
// admin console form.
type Schema struct {
	Kind     string // route segment, e.g. "projects"
	Singular string // display name, e.g. "Project"
	Fields   []Field
}

var (
	ProjectSchema = Schema{Kind: "projects", Singular: "Project", Fields: []Field{
		{Name: "title", Kind: FieldText, Required: true},
		{Name: "description", Kind: FieldText, Required: true},
		{Name: "techBucket", Kind: FieldList},
		{Name: "link", Kind: FieldText},
		{Name: "command", Kind: FieldText},
	}}

	EducationSchema = Schema{Kind: "education", Singular: "Education", Fields: []Field{
		{Name: "institution", Kind: FieldText, Required: true},
		{Name: "degree", Kind: FieldText, Required: true},
		{Name: "year", Kind: FieldText, Required: true},
		{Name: "details", Kind: FieldText},
	}}

	ExperienceSchema = Schema{Kind: "experience", Singular: "Experience", Fields: []Field{
		{Name: "role", Kind: FieldText, Required: true},
		{Name: "company", Kind: FieldText, Required: true},
		{Name: "duration", Kind: FieldText, Required: true},
		{Name: "description", Kind: FieldText, Required: true},
	}}

	TechStackSchema = Schema{Kind: "techstack", Singular: "Tech Stack", Fields: []Field{
		{Name: "category", Kind: FieldText, Required: true},
		{Name: "items", Kind: FieldList, Required: true},
	}}

	ResumeSchema = Schema{Kind: "resume", Singular: "Resume", Fields: []Field{
		{Name: "link", Kind: FieldText, Required: true},
		{Name: "active", Kind: FieldBool},
	}}
)

// Kinds lists the route segments in admin tab order.
var Kinds = []string{"projects", "education", "experience", "techstack", "resume"}

// Schemas indexes the descriptors by kind.
var Schemas = map[string]Schema{
	"projects":   ProjectSchema,
	"education":  EducationSchema,
	"experience": ExperienceSchema,
	"techstack":  TechStackSchema,
	"resume":     ResumeSchema,
}

// ValidationError reports required fields that are missing or empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Missing, ", "))
}

// Filter returns a copy of rec restricted to the schema's field names.
// Identifier and bookkeeping keys ("_id", "__v") are dropped along with
// anything the schema doesn't know about.
func (s Schema) Filter(rec map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(rec))
	for _, f := range s.Fields {
		if v, ok := rec[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

// Validate checks required-field presence on a full record. A required text
// field must be a non-empty string; a required list must have at least one
// element.
func (s Schema) Validate(rec map[string]interface{}) error {
	var missing []string
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if !present(f, rec[f.Name]) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// ValidatePartial checks a patch: required fields may be absent (the
// stored value stays), but a required field that is supplied must not be
// emptied.
func (s Schema) ValidatePartial(rec map[string]interface{}) error {
	var missing []string
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		v, supplied := rec[f.Name]
		if supplied && !present(f, v) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func present(f Field, v interface{}) bool {
	if v == nil {
		return false
	}
	switch f.Kind {
	case FieldText:
		s, ok := v.(string)
		return ok && s != ""
	case FieldList:
		switch vv := v.(type) {
		case []interface{}:
			return len(vv) > 0
		case []string:
			return len(vv) > 0
		}
		return false
	case FieldBool:
		_, ok := v.(bool)
		return ok
	}
	return false
}

package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaValidate_MissingFields(t *testing.T) {
	err := ProjectSchema.Validate(map[string]interface{}{"link": "#"})
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"title", "description"}, verr.Missing)
}

func TestSchemaValidate_EmptyStringCountsAsMissing(t *testing.T) {
	err := EducationSchema.Validate(map[string]interface{}{
		"institution": "MIT",
		"degree":      "",
		"year":        "2020",
	})
	require.Error(t, err)
	require.Contains(t, err.(*ValidationError).Missing, "degree")
}

func TestSchemaValidate_RequiredList(t *testing.T) {
	err := TechStackSchema.Validate(map[string]interface{}{
		"category": "Backend",
		"items":    []interface{}{},
	})
	require.Error(t, err)
	require.Contains(t, err.(*ValidationError).Missing, "items")

	err = TechStackSchema.Validate(map[string]interface{}{
		"category": "Backend",
		"items":    []interface{}{"Go"},
	})
	require.NoError(t, err)
}

func TestSchemaValidatePartial(t *testing.T) {
	// absent required fields are fine on a patch
	require.NoError(t, ProjectSchema.ValidatePartial(map[string]interface{}{"link": "#"}))

	// emptying a supplied required field is not
	err := ProjectSchema.ValidatePartial(map[string]interface{}{"title": ""})
	require.Error(t, err)
	require.Contains(t, err.(*ValidationError).Missing, "title")
}

func TestSchemaFilter_DropsUnknownAndIdentifier(t *testing.T) {
	got := ProjectSchema.Filter(map[string]interface{}{
		"_id":         "abc",
		"__v":         0,
		"title":       "X",
		"description": "Y",
		"bogus":       "nope",
	})
	require.Equal(t, map[string]interface{}{"title": "X", "description": "Y"}, got)
}

func TestProjectNormalize(t *testing.T) {
	p := &Project{Title: "X"}
	p.Normalize()
	require.NotNil(t, p.TechBucket)
	require.Empty(t, p.TechBucket)
}

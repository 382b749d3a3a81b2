package admin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/portfolio"
)

// form is a schema-driven stack of text inputs. List fields are edited as a
// comma-separated string and split verbatim on submit; surrounding spaces
// are preserved, matching what admins already expect from the web console.
type form struct {
	schema portfolio.Schema
	inputs []textinput.Model
	focus  int
	editID string // "_id" of the record being edited, empty for create
}

// newForm builds inputs for every schema field, prefilled from rec when
// editing. Identifier and bookkeeping keys never get an input.
func newForm(schema portfolio.Schema, rec map[string]interface{}) form {
	f := form{schema: schema}
	if rec != nil {
		f.editID, _ = rec["_id"].(string)
	}
	for _, field := range schema.Fields {
		ti := textinput.New()
		ti.Placeholder = placeholder(field)
		ti.CharLimit = 512
		if rec != nil {
			ti.SetValue(fieldString(field, rec[field.Name]))
		}
		f.inputs = append(f.inputs, ti)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func placeholder(field portfolio.Field) string {
	switch field.Kind {
	case portfolio.FieldList:
		return field.Name + " (comma separated)"
	case portfolio.FieldBool:
		return field.Name + " (true/false)"
	default:
		return field.Name
	}
}

// fieldString renders an existing record value into editable text.
func fieldString(field portfolio.Field, v interface{}) string {
	if v == nil {
		return ""
	}
	switch field.Kind {
	case portfolio.FieldList:
		switch vv := v.(type) {
		case []string:
			return strings.Join(vv, ",")
		case []interface{}:
			parts := make([]string, 0, len(vv))
			for _, item := range vv {
				parts = append(parts, fmt.Sprintf("%v", item))
			}
			return strings.Join(parts, ",")
		}
		return fmt.Sprintf("%v", v)
	case portfolio.FieldBool:
		return fmt.Sprintf("%v", v)
	default:
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
}

// values converts the inputs back into an API payload. Empty optional
// fields are omitted so partial updates leave them untouched.
func (f *form) values() map[string]interface{} {
	out := make(map[string]interface{}, len(f.inputs))
	for i, field := range f.schema.Fields {
		raw := f.inputs[i].Value()
		if raw == "" && !field.Required {
			continue
		}
		switch field.Kind {
		case portfolio.FieldList:
			if raw == "" {
				out[field.Name] = []string{}
				continue
			}
			out[field.Name] = strings.Split(raw, ",")
		case portfolio.FieldBool:
			out[field.Name] = raw == "true"
		default:
			out[field.Name] = raw
		}
	}
	return out
}

func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	var b strings.Builder
	for i, field := range f.schema.Fields {
		label := field.Name
		if field.Required {
			label += " *"
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

package db_models

import (
	"strings"

	"gorm.io/datatypes"
)

type EmailTemplate struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"not null" json:"display_name"`
	Description string `gorm:"type:text" json:"description"`

	Subject  string `gorm:"not null" json:"subject"`
	BodyHTML string `gorm:"type:text;not null" json:"body_html"`
	BodyText string `gorm:"type:text" json:"body_text"`

	AvailableVariables datatypes.JSON `json:"available_variables"`

	IsActive bool   `gorm:"not null;default:true;index" json:"is_active"`
	Category string `gorm:"default:general;index" json:"category"`
	Version  int    `gorm:"not null;default:1" json:"version"`
}

type RenderedTemplate struct {
	Subject  string
	BodyHTML string
	BodyText string
}

func (t *EmailTemplate) Render(variables map[string]string) RenderedTemplate {
	return RenderedTemplate{
		Subject:  RenderString(t.Subject, variables),
		BodyHTML: RenderString(t.BodyHTML, variables),
		BodyText: RenderString(t.BodyText, variables),
	}
}

// RenderString substitutes both {{name}} and {name} placeholders. Keys that
// are not provided are left untouched rather than erroring.
func RenderString(template string, variables map[string]string) string {
	out := template
	for key, value := range variables {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

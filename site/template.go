package site

import (
	"fmt"
	"os"
	"strings"
)

// Placeholders replaced in a page template. They are matched literally,
// spaces included.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Template is a page skeleton with literal placeholders.
type Template struct {
	name string
	text string
}

// ParseTemplate wraps text as a template. Missing placeholders are allowed;
// see Missing.
func ParseTemplate(name, text string) *Template {
	return &Template{name: name, text: text}
}

// LoadTemplate reads the template at path.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	return ParseTemplate(path, string(data)), nil
}

// Name returns the name the template was parsed with.
func (t *Template) Name() string { return t.name }

// Missing lists the placeholders that do not occur in the template.
func (t *Template) Missing() []string {
	var missing []string
	for _, p := range []string{TitlePlaceholder, ContentPlaceholder} {
		if !strings.Contains(t.text, p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Render substitutes every placeholder occurrence in a single pass, so a
// title or body that itself contains a placeholder is not expanded again.
func (t *Template) Render(title, content string) string {
	return strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	).Replace(t.text)
}

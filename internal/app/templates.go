package app

import (
	"errors"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// FuncMap is shared by every template set
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"humanTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return humanize.Time(t)
		},
	}
}

// InitTemplates parses layouts and components under dir.
// Pages are parsed per request on a clone, see handlers.Renderer.
func InitTemplates(dir string) (*template.Template, error) {
	t := template.New("").Funcs(FuncMap())

	// 1. Layouts (required)
	if _, err := t.ParseGlob(filepath.Join(dir, "layouts", "*.html")); err != nil {
		return nil, err
	}

	// 2. Components
	if _, err := t.ParseGlob(filepath.Join(dir, "components", "*.html")); err != nil {
		log.Println("Warning: Components error:", err)
	}

	log.Printf("✅ Loaded Templates: %q", t.DefinedTemplates())

	return t, nil
}

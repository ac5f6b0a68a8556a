// pkg/handlers/render.go

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"event-marketplace/pkg/middleware"

	"github.com/pocketbase/pocketbase/core"
)

// Renderer executes the shared layout set against page files under Dir/pages
type Renderer struct {
	Templates *template.Template
	Dir       string
	SiteName  string
}

// Execute clones the base set, parses pagePath (if any) and runs the named template
func (r *Renderer) Execute(w io.Writer, name string, pagePath string, data map[string]interface{}) error {
	// Clone so the shared set is never executed directly
	tmpl, err := r.Templates.Clone()
	if err != nil {
		return fmt.Errorf("clone templates: %w", err)
	}

	if pagePath != "" {
		fullPath := filepath.Join(r.Dir, "pages", pagePath)
		if _, err := tmpl.ParseFiles(fullPath); err != nil {
			return fmt.Errorf("parse %s: %w", fullPath, err)
		}
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	if _, ok := data["SiteName"]; !ok {
		data["SiteName"] = r.SiteName
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = ""
	}

	return tmpl.ExecuteTemplate(w, name, data)
}

// Page renders a full page, or only its "content" block for HTMX navigations
func (r *Renderer) Page(e *core.RequestEvent, status int, pagePath string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Identity"] = middleware.IdentityFrom(e)

	name := "base"
	if isHtmxNav(e.Request) {
		name = "content"
	}

	return r.write(e, status, name, pagePath, data)
}

// Partial renders a single component template, used for HTMX swaps
func (r *Renderer) Partial(e *core.RequestEvent, status int, name string, data map[string]interface{}) error {
	return r.write(e, status, name, "", data)
}

func (r *Renderer) write(e *core.RequestEvent, status int, name, pagePath string, data map[string]interface{}) error {
	var buf bytes.Buffer
	if err := r.Execute(&buf, name, pagePath, data); err != nil {
		log.Printf("❌ [RENDER] %s %s: %v", name, pagePath, err)
		return e.String(http.StatusInternalServerError, "Render error")
	}

	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	e.Response.WriteHeader(status)
	_, err := buf.WriteTo(e.Response)
	return err
}

// Client sends HX-Target=main-content when it swaps whole pages
func isHtmxNav(req *http.Request) bool {
	return req.Header.Get("HX-Request") == "true" && req.Header.Get("HX-Target") == "main-content"
}

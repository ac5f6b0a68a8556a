package app

import (
	"testing"
	"time"
)

func TestInitTemplates(t *testing.T) {
	tmpl, err := InitTemplates("../../views")
	if err != nil {
		t.Fatalf("InitTemplates: %v", err)
	}

	for _, name := range []string{"base", "navbar", "vendor_browser", "alert"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %q not defined", name)
		}
	}
}

func TestInitTemplates_MissingDir(t *testing.T) {
	if _, err := InitTemplates(t.TempDir()); err == nil {
		t.Error("expected error without layouts")
	}
}

func TestFuncMap(t *testing.T) {
	funcs := FuncMap()

	dict := funcs["dict"].(func(...interface{}) (map[string]interface{}, error))
	m, err := dict("Name", "Catering", "Selected", true)
	if err != nil || m["Name"] != "Catering" || m["Selected"] != true {
		t.Errorf("dict = %v, %v", m, err)
	}
	if _, err := dict("odd"); err == nil {
		t.Error("dict with odd args should fail")
	}
	if _, err := dict(1, 2); err == nil {
		t.Error("dict with non-string key should fail")
	}

	humanTime := funcs["humanTime"].(func(time.Time) string)
	if got := humanTime(time.Time{}); got != "" {
		t.Errorf("humanTime(zero) = %q", got)
	}
	if got := humanTime(time.Now().Add(-3 * time.Hour)); got != "3 hours ago" {
		t.Errorf("humanTime(-3h) = %q", got)
	}
}

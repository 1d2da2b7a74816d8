// Package testhelpers provides utilities for testing the PocketBase-hosted calculator.
package testhelpers

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"cogscalculator/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The calculator keeps no records, so no collections are created.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// CalculatorForm returns form values for the given method and non-zero amounts.
func CalculatorForm(method services.Method, amounts map[string]string) url.Values {
	form := url.Values{}
	form.Set(services.FieldMethod, string(method))
	for name, v := range amounts {
		form.Set(name, v)
	}
	return form
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertToast checks that the HX-Trigger header carries a showToast event
// with the expected type and message.
func AssertToast(t *testing.T, headerVal, wantType, wantMessage string) {
	t.Helper()

	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(headerVal), &parsed); err != nil {
		t.Fatalf("HX-Trigger %q is not valid JSON: %v", headerVal, err)
	}
	toast, ok := parsed["showToast"]
	if !ok {
		t.Fatalf("expected showToast in HX-Trigger, got %q", headerVal)
	}
	if toast["type"] != wantType {
		t.Errorf("toast type = %q, want %q", toast["type"], wantType)
	}
	if toast["message"] != wantMessage {
		t.Errorf("toast message = %q, want %q", toast["message"], wantMessage)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

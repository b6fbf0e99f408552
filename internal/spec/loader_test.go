package spec

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleDoc = `
version: "1.2.0"
paths:
  /orders:
    get:
      parameters:
        - name: limit
          required: false
          type: integer
      responses: [200, 404]
    post:
      parameters:
        - name: body
          required: true
          type: object
      responses: [201]
  /users/{id}:
    get:
      responses: [200]
`

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadValidDocument(t *testing.T) {
	doc, err := Load(writeSpec(t, "api.yaml", sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc.Version != "1.2.0" {
		t.Errorf("version = %q, want 1.2.0", doc.Version)
	}
	if len(doc.Endpoints) != 3 {
		t.Fatalf("endpoints = %d, want 3", len(doc.Endpoints))
	}

	ep, ok := doc.Endpoint("/orders", "GET")
	if !ok {
		t.Fatal("GET /orders not found")
	}
	p, ok := ep.Parameters["limit"]
	if !ok {
		t.Fatal("parameter 'limit' not found")
	}
	if p.Required || p.Type != "integer" {
		t.Errorf("limit = %+v, want optional integer", p)
	}
	if !ep.Responses[200] || !ep.Responses[404] {
		t.Errorf("responses = %v, want 200 and 404", ep.Responses)
	}
}

func TestParseMethodNormalizedToUppercase(t *testing.T) {
	doc, err := Parse([]byte("version: \"1.0.0\"\npaths:\n  /a:\n    GeT:\n      responses: [200]\n"), "a.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := doc.Endpoint("/a", "GET"); !ok {
		t.Errorf("method not normalized: %v", doc.Endpoints)
	}
}

func TestParseResponsesMappingForm(t *testing.T) {
	content := `
version: "1.0.0"
paths:
  /a:
    get:
      responses:
        200: {description: ok}
        404: {description: missing}
`
	doc, err := Parse([]byte(content), "a.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ep, _ := doc.Endpoint("/a", "GET")
	if !ep.Responses[200] || !ep.Responses[404] {
		t.Errorf("responses = %v, want 200 and 404", ep.Responses)
	}
}

func TestParseAcceptsJSON(t *testing.T) {
	content := `{"version": "2.0.0", "paths": {"/a": {"get": {"responses": [200]}}}}`
	doc, err := Parse([]byte(content), "a.json")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Version != "2.0.0" {
		t.Errorf("version = %q, want 2.0.0", doc.Version)
	}
}

func TestParseMissingVersion(t *testing.T) {
	_, err := Parse([]byte("paths:\n  /a:\n    get:\n      responses: [200]\n"), "a.yaml")
	if _, ok := err.(*InvalidSpecError); !ok {
		t.Fatalf("expected InvalidSpecError, got %T: %v", err, err)
	}
}

func TestParseBadVersion(t *testing.T) {
	_, err := Parse([]byte("version: \"not-a-version\"\npaths: {}\n"), "a.yaml")
	if _, ok := err.(*InvalidVersionError); !ok {
		t.Fatalf("expected InvalidVersionError, got %T: %v", err, err)
	}
}

func TestParseDuplicateParameter(t *testing.T) {
	content := `
version: "1.0.0"
paths:
  /a:
    get:
      parameters:
        - {name: q, required: false, type: string}
        - {name: q, required: true, type: string}
      responses: [200]
`
	_, err := Parse([]byte(content), "a.yaml")
	if _, ok := err.(*InvalidSpecError); !ok {
		t.Fatalf("expected InvalidSpecError, got %T: %v", err, err)
	}
}

func TestParseUnknownParameterType(t *testing.T) {
	content := `
version: "1.0.0"
paths:
  /a:
    get:
      parameters:
        - {name: q, required: false, type: uuid}
      responses: [200]
`
	_, err := Parse([]byte(content), "a.yaml")
	if _, ok := err.(*InvalidSpecError); !ok {
		t.Fatalf("expected InvalidSpecError, got %T: %v", err, err)
	}
}

func TestParseDuplicateResponseCode(t *testing.T) {
	content := `
version: "1.0.0"
paths:
  /a:
    get:
      responses: [200, 200]
`
	_, err := Parse([]byte(content), "a.yaml")
	if _, ok := err.(*InvalidSpecError); !ok {
		t.Fatalf("expected InvalidSpecError, got %T: %v", err, err)
	}
}

func TestParseValidationErrorsStableOrder(t *testing.T) {
	content := `
version: "1.0.0"
paths:
  /b:
    get:
      parameters:
        - {name: q, required: false, type: uuid}
      responses: [200]
  /a:
    post:
      responses: [200, 200]
    get:
      parameters:
        - {required: true, type: string}
      responses: [200]
`
	want := []string{
		"GET /a: parameter without name",
		"POST /a: duplicate response code 200",
		"GET /b: parameter 'q' has unknown type 'uuid'",
	}
	for i := 0; i < 10; i++ {
		_, err := Parse([]byte(content), "a.yaml")
		specErr, ok := err.(*InvalidSpecError)
		if !ok {
			t.Fatalf("expected InvalidSpecError, got %T: %v", err, err)
		}
		if !reflect.DeepEqual(specErr.Errors, want) {
			t.Fatalf("errors = %v, want %v", specErr.Errors, want)
		}
	}
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("version: \"1.0.0\"\npaths: [not, a, mapping]\n"), "a.yaml")
	if _, ok := err.(*InvalidSpecError); !ok {
		t.Fatalf("expected InvalidSpecError, got %T: %v", err, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

package usage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadArrayFormat(t *testing.T) {
	idx, err := Load(writeLog(t, `[
		{"path": "/orders", "method": "GET"},
		{"path": "/orders", "method": "GET"},
		{"path": "/users", "method": "post", "count": 5}
	]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := idx.Count("/orders", "GET"); got != 2 {
		t.Errorf("Count(/orders, GET) = %d, want 2", got)
	}
	if got := idx.Count("/users", "POST"); got != 5 {
		t.Errorf("Count(/users, POST) = %d, want 5 (method case-insensitive)", got)
	}
	if !idx.WasUsed("/orders", "GET") {
		t.Error("WasUsed(/orders, GET) = false, want true")
	}
	if idx.WasUsed("/orders", "DELETE") {
		t.Error("WasUsed(/orders, DELETE) = true, want false")
	}
}

func TestLoadStreamFormat(t *testing.T) {
	idx, err := Load(writeLog(t, `{"path": "/a", "method": "GET"}
{"path": "/a", "method": "GET"}
{"path": "/b", "method": "PUT"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := idx.Count("/a", "GET"); got != 2 {
		t.Errorf("Count(/a, GET) = %d, want 2", got)
	}
	if idx.Len() != 2 {
		t.Errorf("Len = %d, want 2", idx.Len())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	idx, err := Load(writeLog(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("Len = %d, want 0", idx.Len())
	}
}

func TestLoadZeroCountIsNotUsed(t *testing.T) {
	idx, err := Load(writeLog(t, `[{"path": "/a", "method": "GET", "count": 0}]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if idx.WasUsed("/a", "GET") {
		t.Error("count 0 must not report as used")
	}
}

func TestLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"bad json":       `{"path": "/a", "method":`,
		"missing method": `[{"path": "/a"}]`,
		"negative count": `[{"path": "/a", "method": "GET", "count": -1}]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeLog(t, content))
			if _, ok := err.(*LogParseError); !ok {
				t.Fatalf("expected LogParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestNilIndexLookups(t *testing.T) {
	var idx *Index
	if idx.WasUsed("/a", "GET") {
		t.Error("nil index must answer false")
	}
	if idx.Count("/a", "GET") != 0 {
		t.Error("nil index must answer zero")
	}
	if idx.Len() != 0 {
		t.Error("nil index Len must be zero")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := err.(*LogParseError); ok {
		t.Error("missing file is an I/O error, not a parse error")
	}
}

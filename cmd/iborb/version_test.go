package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/uysalibov/ibORB/internal/version"
)

func TestValueOrUnknown(t *testing.T) {
	if got := valueOrUnknown(""); got != "unknown" {
		t.Errorf("valueOrUnknown(\"\") = %q, want %q", got, "unknown")
	}
	if got := valueOrUnknown("abc123"); got != "abc123" {
		t.Errorf("valueOrUnknown(%q) = %q, want unchanged", "abc123", got)
	}
}

func TestRenderVersionPrettyWithoutFlagsShowsHint(t *testing.T) {
	var buf bytes.Buffer
	renderVersionPretty(&buf, versionInfo{Version: "1.0.0"}, false, false)
	out := buf.String()
	if !strings.Contains(out, "iborb 1.0.0") {
		t.Errorf("missing version line:\n%s", out)
	}
	if !strings.Contains(out, "--hash") {
		t.Errorf("expected a hint about --hash/--date/--full:\n%s", out)
	}
}

func TestRenderVersionPrettyWithHashAndDate(t *testing.T) {
	var buf bytes.Buffer
	renderVersionPretty(&buf, versionInfo{Version: "1.0.0", GitCommit: "abcdef", BuildDate: "2026-01-01"}, true, true)
	out := buf.String()
	if !strings.Contains(out, "commit: abcdef") {
		t.Errorf("missing commit line:\n%s", out)
	}
	if !strings.Contains(out, "built:  2026-01-01") {
		t.Errorf("missing built line:\n%s", out)
	}
}

func TestRenderVersionJSONOmitsUnrequestedFields(t *testing.T) {
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, versionInfo{Version: "1.0.0", GitCommit: "abcdef"}, false, false); err != nil {
		t.Fatalf("renderVersionJSON failed: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if payload.GitCommit != "" {
		t.Errorf("expected GitCommit to be omitted, got %q", payload.GitCommit)
	}
	if payload.Version != "1.0.0" || payload.Tool != "iborb" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestRenderVersionJSONIncludesRequestedFields(t *testing.T) {
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, versionInfo{Version: "1.0.0", GitCommit: "abcdef", BuildDate: "2026-01-01"}, true, true); err != nil {
		t.Fatalf("renderVersionJSON failed: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if payload.GitCommit != "abcdef" || payload.BuildDate != "2026-01-01" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestCollectVersionInfoDefaultsToDevWhenEmpty(t *testing.T) {
	saved := version.Version
	defer func() { version.Version = saved }()
	version.Version = ""

	info := collectVersionInfo()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want %q", info.Version, "dev")
	}
}

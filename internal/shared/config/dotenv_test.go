package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line    string
		key     string
		val     string
		matched bool
	}{
		{line: "PORT=9090", key: "PORT", val: "9090", matched: true},
		{line: `export ACCESS_TOKEN_SECRET="abc"`, key: "ACCESS_TOKEN_SECRET", val: "abc", matched: true},
		{line: "# comment", matched: false},
		{line: "   ", matched: false},
		{line: "NOVALUE", matched: false},
		{line: "=orphan", matched: false},
	}
	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.line)
		if ok != tc.matched {
			t.Fatalf("%q: expected matched=%t, got %t", tc.line, tc.matched, ok)
		}
		if !ok {
			continue
		}
		if key != tc.key || val != tc.val {
			t.Fatalf("%q: got %q=%q", tc.line, key, val)
		}
	}
}

func TestLoadEnvFilesKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "RESUME_HUB_TEST_A=from-file\nRESUME_HUB_TEST_B=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("RESUME_HUB_TEST_A", "from-env")
	t.Setenv("RESUME_HUB_TEST_B", "")
	os.Unsetenv("RESUME_HUB_TEST_B")

	loadEnvFiles(path)

	if got := os.Getenv("RESUME_HUB_TEST_A"); got != "from-env" {
		t.Fatalf("expected env value to win, got %q", got)
	}
	if got := os.Getenv("RESUME_HUB_TEST_B"); got != "from-file" {
		t.Fatalf("expected file value, got %q", got)
	}
}

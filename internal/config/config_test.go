package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_GETENV", "value")

	if got := getenv("TEST_GETENV", "fallback"); got != "value" {
		t.Errorf("getenv() = %q, want value", got)
	}
	if got := getenv("TEST_GETENV_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getenv() = %q, want fallback", got)
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_INVALID", "not_a_number")

	if got := getenvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getenvInt() = %d, want 42", got)
	}
	if got := getenvInt("TEST_INT_INVALID", 7); got != 7 {
		t.Errorf("getenvInt() on invalid value = %d, want default 7", got)
	}
	if got := getenvInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("getenvInt() on missing value = %d, want default 7", got)
	}
}

func TestMustBool(t *testing.T) {
	t.Setenv("TEST_BOOL_TRUE", "true")
	t.Setenv("TEST_BOOL_INVALID", "maybe")

	if got := mustBool("TEST_BOOL_TRUE", false); got != true {
		t.Errorf("mustBool() = %v, want true", got)
	}
	if got := mustBool("TEST_BOOL_INVALID", true); got != true {
		t.Errorf("mustBool() on invalid value = %v, want default true", got)
	}
	if got := mustBool("TEST_BOOL_MISSING", false); got != false {
		t.Errorf("mustBool() on missing value = %v, want default false", got)
	}
}

func TestMustDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "150ms")
	t.Setenv("TEST_DUR_INVALID", "soon")

	if got := mustDuration("TEST_DUR", time.Second); got != 150*time.Millisecond {
		t.Errorf("mustDuration() = %v, want 150ms", got)
	}
	if got := mustDuration("TEST_DUR_INVALID", time.Second); got != time.Second {
		t.Errorf("mustDuration() on invalid value = %v, want default 1s", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple list",
			input: "a.example.com,b.example.com",
			want:  []string{"a.example.com", "b.example.com"},
		},
		{
			name:  "whitespace and quotes",
			input: ` "a.example.com" , 'b.example.com' `,
			want:  []string{"a.example.com", "b.example.com"},
		},
		{
			name:  "empty segments dropped",
			input: "a,,b,",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAllowedIPs(t *testing.T) {
	got := parseAllowedIPs("10.0.0.0/8, 192.168.1.5")
	want := []string{"10.0.0.0/8", "192.168.1.5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseAllowedIPs() = %v, want %v", got, want)
	}

	if got := parseAllowedIPs(""); got != nil {
		t.Errorf("parseAllowedIPs(\"\") = %v, want nil", got)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("MUSEUM_CONTENT_DIR", "/srv/museum/content")
	t.Setenv("MUSEUM_REDIS_ADDR", "localhost:6379")
	t.Setenv("MUSEUM_REDIS_PASSWORD", "secret")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ManifestFile != "museum.yaml" {
		t.Errorf("ManifestFile = %q, want museum.yaml", cfg.ManifestFile)
	}
	if cfg.ReloadInterval != 24*time.Hour {
		t.Errorf("ReloadInterval = %v, want 24h", cfg.ReloadInterval)
	}
	if cfg.SitemapFile != "" {
		t.Errorf("SitemapFile = %q, want empty (disabled)", cfg.SitemapFile)
	}
	if cfg.SearchBurst != 20 {
		t.Errorf("SearchBurst = %d, want 20", cfg.SearchBurst)
	}
	if cfg.WatchContent {
		t.Error("WatchContent should default to false")
	}
}

func TestLoadPanicsWithoutRequiredPassword(t *testing.T) {
	t.Setenv("MUSEUM_CONTENT_DIR", "/srv/museum/content")
	t.Setenv("MUSEUM_REDIS_ADDR", "localhost:6379")
	t.Setenv("MUSEUM_REDIS_PASSWORD_REQUIRED", "true")
	t.Setenv("MUSEUM_REDIS_PASSWORD", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic when a required redis password is empty")
		}
	}()

	Load()
}

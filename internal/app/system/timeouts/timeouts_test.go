package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping: got %v, want %v", got, DefaultPing)
	}
	if got := Short(); got != DefaultShort {
		t.Errorf("Short: got %v, want %v", got, DefaultShort)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium: got %v, want %v", got, DefaultMedium)
	}
	if got := External(); got != DefaultExternal {
		t.Errorf("External: got %v, want %v", got, DefaultExternal)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("TIMEOUT_SHORT", "7s")
	t.Setenv("TIMEOUT_MEDIUM", "bogus")

	n := ConfigureFromEnv()
	if n != 1 {
		t.Errorf("configured: got %d, want 1", n)
	}
	if got := Short(); got != 7*time.Second {
		t.Errorf("Short after env: got %v, want 7s", got)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium after invalid env: got %v, want default %v", got, DefaultMedium)
	}
}

package catlink

import (
	"testing"
	"time"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.timeout != 60*time.Second {
		t.Errorf("expected timeout=60s, got %v", opts.timeout)
	}

	if opts.language != "en_GB" {
		t.Errorf("expected language=en_GB, got %s", opts.language)
	}

	if opts.userAgent != "okhttp/3.10.0" {
		t.Errorf("expected userAgent=okhttp/3.10.0, got %s", opts.userAgent)
	}

	if !opts.verifySSL {
		t.Error("expected verifySSL=true")
	}

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 5 * time.Second, 5 * time.Second},
		{"minimum valid", 100 * time.Millisecond, 100 * time.Millisecond},
		{"below minimum ignored", 50 * time.Millisecond, 60 * time.Second}, // default is 60s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithTimeout(tt.input)(opts)

			if opts.timeout != tt.expected {
				t.Errorf("expected timeout=%v, got %v", tt.expected, opts.timeout)
			}
		})
	}
}

func TestWithLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid", "zh_CN", "zh_CN"},
		{"empty ignored", "", "en_GB"},
		{"blank ignored", "   ", "en_GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithLanguage(tt.input)(opts)

			if opts.language != tt.expected {
				t.Errorf("expected language=%s, got %s", tt.expected, opts.language)
			}
		})
	}
}

func TestWithInsecureSkipVerify(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithInsecureSkipVerify(true)(opts)

	if opts.verifySSL {
		t.Error("expected verifySSL=false")
	}

	WithInsecureSkipVerify(false)(opts)

	if !opts.verifySSL {
		t.Error("expected verifySSL=true")
	}
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	defaultLogger := opts.requestLogger

	WithRequestLogger(nil)(opts)

	if opts.requestLogger != defaultLogger {
		t.Error("expected nil logger to be ignored")
	}

	custom := &NoopLogger{}
	WithRequestLogger(custom)(opts)

	if opts.requestLogger != custom {
		t.Error("expected custom logger to be set")
	}
}

func TestWithToken(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithToken("T1")(opts)

	if opts.token != "T1" {
		t.Errorf("expected token=T1, got %s", opts.token)
	}
}

package catlink

import (
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	timeout       time.Duration
	language      string
	userAgent     string
	verifySSL     bool
	token         string
	requestLogger RequestLogger
}

func newClientOptions() *Options {
	return &Options{
		timeout:       60 * time.Second,
		language:      "en_GB",
		userAgent:     "okhttp/3.10.0",
		verifySSL:     true,
		requestLogger: &NoopLogger{},
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 100*time.Millisecond {
			o.timeout = timeout
		}
	}
}

func WithLanguage(language string) Option {
	return func(o *Options) {
		if strings.TrimSpace(language) != "" {
			o.language = language
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		if strings.TrimSpace(userAgent) != "" {
			o.userAgent = userAgent
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification when skip
// is true. Verification is enabled by default.
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *Options) {
		o.verifySSL = !skip
	}
}

func WithToken(token string) Option {
	return func(o *Options) {
		o.token = token
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

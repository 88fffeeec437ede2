package catlink

// RequestLogger receives the client's request and error output. The
// method set matches resty's Logger, so one implementation covers both
// this package's messages and resty's transport logs.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger discards everything. It is the default when no
// [WithRequestLogger] option is given.
type NoopLogger struct{}

func (*NoopLogger) Errorf(string, ...any) {}
func (*NoopLogger) Warnf(string, ...any)  {}
func (*NoopLogger) Debugf(string, ...any) {}

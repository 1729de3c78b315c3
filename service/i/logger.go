package i

// Logger defines leveled logging for services.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

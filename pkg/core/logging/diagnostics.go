package logging

import (
	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
	mdwlog "github.com/msto63/mdwtime/foundation/core/log"
	"github.com/msto63/mdwtime/foundation/utils/timex"
)

// Diagnostics returns a timex diagnostics sink logging every rejected value
// at warn level. A nil logger yields a nil sink, which disables reporting.
func Diagnostics(logger *mdwlog.Logger) timex.Diagnostics {
	if logger == nil {
		return nil
	}
	return timex.DiagnosticsFunc(func(err *mdwerror.Error) {
		fields := mdwlog.Fields{
			"error_code": err.Code().String(),
			"operation":  err.Operation(),
		}
		if c, ok := timex.InvalidComponents(err); ok {
			fields["hour"] = c.Hour
			fields["minute"] = c.Minute
			fields["second"] = c.Second
			fields["millisecond"] = c.Millisecond
		}
		logger.Warn(err.Message(), fields)
	})
}

// NewValidator returns a timex validator reporting to logger
func NewValidator(logger *mdwlog.Logger) *timex.Validator {
	return timex.NewValidator(Diagnostics(logger))
}

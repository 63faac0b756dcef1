package logger

import "go.uber.org/zap"

// New returns a JSON production logger for production and a console
// development logger everywhere else.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

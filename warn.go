package a11ycheck

import "log/slog"

// WarnFunc is the advisory channel. It gets the element name, the rule
// message and, when correlated, the mounted node.
type WarnFunc func(args ...any)

var warnKeys = []string{"element", "message", "node"}

// SlogWarn emits diagnostics as warnings of the logger.
func SlogWarn(logger *slog.Logger) WarnFunc {
	return func(args ...any) {
		attrs := make([]any, 0, 2*len(args))
		for i, arg := range args {
			key := "arg"
			if i < len(warnKeys) {
				key = warnKeys[i]
			}
			attrs = append(attrs, key, arg)
		}
		logger.Warn("accessibility violation", attrs...)
	}
}

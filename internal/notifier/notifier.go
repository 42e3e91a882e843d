// Package notifier delivers one-time codes to users through an out-of-band
// channel. The code must never appear in an API response.
package notifier

import "log/slog"

type OTPSender interface {
	SendOTP(email, code string) error
}

// LogSender writes codes to the application log. It stands in for a real
// mail or SMS dispatcher in local environments.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendOTP(email, code string) error {
	s.log.Info("otp issued",
		slog.String("email", email),
		slog.String("code", code),
	)

	return nil
}

package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New monta o logger raiz do serviço. Em development a saída é
// colorida/legível; em produção, JSON puro.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		return zerolog.New(out).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Str("service", "agendepro-api").Logger()
}

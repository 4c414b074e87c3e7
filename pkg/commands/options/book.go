package options

import (
	"context"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/logging"
	"tableflip.dev/medbook/pkg/store"
)

// Book is everything a command needs to work on the record book.
type Book struct {
	Settings *store.Settings
	Log      *logging.Logger
	Service  *app.Service
}

// OpenBook reads the configuration, sets up logging and loads the stored
// book.
func OpenBook(ctx context.Context) (*Book, error) {
	s, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(s.Log.Level, s.Log.Format)

	p, err := store.Load(s)
	if err != nil {
		return nil, err
	}
	svc, err := app.New(ctx, p, log)
	if err != nil {
		return nil, err
	}
	log.Debug("record book opened", "path", s.BasePath())
	return &Book{Settings: s, Log: log, Service: svc}, nil
}

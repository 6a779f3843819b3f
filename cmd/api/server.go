package main

import (
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		// Long enough for one completion call plus slack.
		WriteTimeout: 90 * time.Second,
	}

	app.Logger.Sugar().Infof("starting server on %s", server.Addr)

	return server.ListenAndServe()
}

// Package local serves the application shell over plain HTTP for
// development, without the Lambda front doors in between.
package local

import (
	"context"
	"net/http"
	"time"

	"github.com/charanteja1799/text2sqlrag-project/app"
)

var srv *http.Server

func Serve(addr string, appOpts []app.Option) error {
	srv = &http.Server{
		Addr:    addr,
		Handler: app.NewEngine(appOpts...),
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return nil
}

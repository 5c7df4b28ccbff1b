package server

import (
	"github.com/charanteja1799/text2sqlrag-project/bootstrap"
	"github.com/charanteja1799/text2sqlrag-project/entry"
	"github.com/charanteja1799/text2sqlrag-project/local"
)

// Serve bootstraps the scratch directories and starts the configured
// front: the Lambda runtime by default, a plain HTTP server in local
// mode. Lambda mode blocks for the lifetime of the process.
func Serve(opts ...Option) error {
	options := &Options{}
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(options)
		}
	}

	if err := bootstrap.Run(options.Bootstrap...); err != nil {
		return err
	}

	switch options.Mode {
	case "local":
		addr := options.Address
		if addr == "" {
			addr = ":8080"
		}
		return local.Serve(addr, options.App)
	case "lambda":
		fallthrough
	default:
		entry.Serve(options.Entry, options.App)
		return nil
	}
}

func Close() error {
	entry.Close()
	return local.Close()
}

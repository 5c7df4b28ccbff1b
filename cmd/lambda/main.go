package main

import (
	"log"

	"github.com/charanteja1799/text2sqlrag-project/entry"
	"github.com/charanteja1799/text2sqlrag-project/server"
	"github.com/charanteja1799/text2sqlrag-project/services"
)

func main() {
	var opts []server.Option
	if path, err := server.FindDefaultServeConfigFile(); err == nil {
		opts = append(opts, server.WithServeConfigFile(path))
	}
	opts = append(opts, server.WithEntryOptions(entry.WithSetup(services.InitAll)))

	if err := server.Serve(opts...); err != nil {
		log.Fatalf("[Server] serve: %v", err)
	}
}

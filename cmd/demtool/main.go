package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/roffe/godem/cmd/demtool/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel() // Setup interupt handler for ctrl-c
	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, os.Interrupt)
	go func() {
		s := <-quitChan
		log.Printf("got %v, exiting", s)
		cancel()
	}()
	cmd.Execute(ctx)
}

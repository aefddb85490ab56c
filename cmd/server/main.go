// Command server runs the topic store backend. It wires configuration,
// logging, the database pool, and the service layer, then blocks until
// SIGINT/SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/topicwiki-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

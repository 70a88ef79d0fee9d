// Command cleanup-events deletes modification-log events that have been
// read and are older than the retention window (90 days).
//
// Usage:
//
//	cleanup-events
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		"DELETE FROM modification_log WHERE is_read AND occurred_at < now() - interval '90 days'",
	)
	if err != nil {
		log.Fatalf("cleanup events: %v", err)
	}

	fmt.Printf("Deleted %d read modification events.\n", tag.RowsAffected())
}

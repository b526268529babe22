package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

func main() {
	dsn := flag.String("dsn", os.Getenv("TXLOG_DATABASE_URL"), "PostgreSQL connection string")
	olderThan := flag.Duration("older-than", 30*24*time.Hour, "Delete submission records older than this")
	flag.Parse()

	if *dsn == "" {
		fmt.Fprintln(os.Stderr, "TXLOG_DATABASE_URL or -dsn is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	cutoff := time.Now().Add(-*olderThan)
	res, err := db.Exec("DELETE FROM submissions WHERE submitted_at < $1", cutoff)
	if err != nil {
		panic(err)
	}

	n, _ := res.RowsAffected()
	fmt.Printf("Pruned %d submission records older than %s\n", n, cutoff.Format(time.RFC3339))
}

package cmd

import (
	"errors"
	"os"

	"github.com/gbl08ma/keybox"
	"github.com/gbl08ma/sqalx"
	"github.com/jmoiron/sqlx"

	// PostgreSQL driver
	_ "github.com/lib/pq"

	"github.com/citytransit/transitseed/storage"
)

const maxDBConnectionPoolSize = 10

func resolveDatabaseURI() (string, error) {
	if databaseURI != "" {
		return databaseURI, nil
	}
	if uri := os.Getenv("DATABASE_URI"); uri != "" {
		return uri, nil
	}
	if _, err := os.Stat(secretsPath); err == nil {
		mainLog.Println("Opening keybox...")
		secrets, err := keybox.Open(secretsPath)
		if err != nil {
			return "", err
		}
		if uri, present := secrets.Get("databaseURI"); present {
			return uri, nil
		}
		return "", errors.New("database connection string not present in keybox")
	}
	return "", errors.New("no database connection string: set --database-uri, DATABASE_URI or provide a keybox file")
}

// openStore connects to the database and returns the store plus a
// function releasing the connection pool
func openStore() (*storage.Postgres, func(), error) {
	uri, err := resolveDatabaseURI()
	if err != nil {
		return nil, nil, err
	}

	mainLog.Println("Opening database...")
	rdb, err := sqlx.Open("postgres", uri)
	if err != nil {
		return nil, nil, err
	}
	if err := rdb.Ping(); err != nil {
		rdb.Close()
		return nil, nil, err
	}
	rdb.SetMaxOpenConns(maxDBConnectionPoolSize)

	node, err := sqalx.New(rdb)
	if err != nil {
		rdb.Close()
		return nil, nil, err
	}
	mainLog.Println("Database opened")

	return storage.NewPostgres(node), func() { rdb.Close() }, nil
}

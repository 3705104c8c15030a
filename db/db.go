package db

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"
)

const DefaultTimeout = 10 * time.Second

// Db represents a connection to a db
type Db struct {
	session Session
}

type Options struct {
	Username string
	Password string
	LocalDc  string
	Timeout  time.Duration
}

// NewDb connects to the given hosts and returns a db that reads rows for tables
func NewDb(options Options, hosts ...string) (*Db, error) {
	cluster := gocql.NewCluster(hosts...)
	cluster.PoolConfig.HostSelectionPolicy = NewHostSelectionPolicy(options.LocalDc)

	if options.Username != "" && options.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: options.Username,
			Password: options.Password,
		}
	}

	if options.Timeout > 0 {
		cluster.Timeout = options.Timeout
	} else {
		cluster.Timeout = DefaultTimeout
	}

	var (
		session *gocql.Session
		err     error
	)

	session, err = cluster.CreateSession()
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, errors.New("failed to create session")
	}

	return NewDbWithSession(&GoCqlSession{ref: session}), nil
}

// NewDbWithSession wraps an existing session, mostly used for testing
func NewDbWithSession(session Session) *Db {
	return &Db{
		session: session,
	}
}

// Select executes a query and returns its rows with the column order of the result metadata
func (db *Db) Select(ctx context.Context, query string, options *QueryOptions, values ...interface{}) (ResultSet, error) {
	if options == nil {
		options = NewQueryOptions()
	}
	return db.session.ExecuteIter(ctx, query, options, values...)
}

func (db *Db) Close() {
	db.session.Close()
}

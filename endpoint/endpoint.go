package endpoint

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/gocql/gocql"
	"go.uber.org/zap"

	"github.com/datastax/action-table/config"
	"github.com/datastax/action-table/db"
	e "github.com/datastax/action-table/errors"
	"github.com/datastax/action-table/log"
	"github.com/datastax/action-table/source"
	"github.com/datastax/action-table/table"
)

const DefaultTablesPath = "/tables"

type TableEndpointConfig struct {
	dbHosts       []string
	dbUsername    string
	dbPassword    string
	localDc       string
	consistency   gocql.Consistency
	pageSize      int
	definitions   []source.Definition
	naming        config.NamingConvention
	actionsHeader string
	logger        log.Logger
}

func (cfg TableEndpointConfig) Naming() config.NamingConvention {
	return cfg.naming
}

func (cfg TableEndpointConfig) ActionsHeader() string {
	return cfg.actionsHeader
}

func (cfg TableEndpointConfig) Logger() log.Logger {
	return cfg.logger
}

func (cfg *TableEndpointConfig) WithDbHosts(hosts ...string) *TableEndpointConfig {
	cfg.dbHosts = hosts
	return cfg
}

func (cfg *TableEndpointConfig) WithDbUsername(dbUsername string) *TableEndpointConfig {
	cfg.dbUsername = dbUsername
	return cfg
}

func (cfg *TableEndpointConfig) WithDbPassword(dbPassword string) *TableEndpointConfig {
	cfg.dbPassword = dbPassword
	return cfg
}

func (cfg *TableEndpointConfig) WithLocalDc(localDc string) *TableEndpointConfig {
	cfg.localDc = localDc
	return cfg
}

func (cfg *TableEndpointConfig) WithConsistency(consistency gocql.Consistency) *TableEndpointConfig {
	cfg.consistency = consistency
	return cfg
}

func (cfg *TableEndpointConfig) WithPageSize(pageSize int) *TableEndpointConfig {
	cfg.pageSize = pageSize
	return cfg
}

func (cfg *TableEndpointConfig) WithNaming(naming config.NamingConvention) *TableEndpointConfig {
	cfg.naming = naming
	return cfg
}

func (cfg *TableEndpointConfig) WithActionsHeader(actionsHeader string) *TableEndpointConfig {
	cfg.actionsHeader = actionsHeader
	return cfg
}

// NewEndpoint connects to the database when hosts were configured; tables with inline rows don't need one.
func (cfg TableEndpointConfig) NewEndpoint() (*TableEndpoint, error) {
	if len(cfg.dbHosts) == 0 {
		return cfg.newEndpointWithDb(nil)
	}

	dbClient, err := db.NewDb(db.Options{
		Username: cfg.dbUsername,
		Password: cfg.dbPassword,
		LocalDc:  cfg.localDc,
	}, cfg.dbHosts...)
	if err != nil {
		return nil, err
	}
	return cfg.newEndpointWithDb(dbClient)
}

func (cfg TableEndpointConfig) newEndpointWithDb(dbClient *db.Db) (*TableEndpoint, error) {
	var selector source.Selector
	if dbClient != nil {
		selector = dbClient
	}

	options := db.NewQueryOptions().
		WithConsistency(cfg.consistency).
		WithPageSize(cfg.pageSize)

	endpoint := &TableEndpoint{
		dbClient: dbClient,
		renderer: table.NewRenderer(cfg),
		tables:   make(map[string]*servedTable, len(cfg.definitions)),
		logger:   cfg.logger,
	}

	for _, definition := range cfg.definitions {
		rowSource, err := definition.Source(selector, options)
		if err != nil {
			return nil, err
		}
		endpoint.tables[definition.Name] = &servedTable{definition: definition, source: rowSource}
		endpoint.names = append(endpoint.names, definition.Name)
	}
	sort.Strings(endpoint.names)

	return endpoint, nil
}

type servedTable struct {
	definition source.Definition
	source     source.RowSource
}

type TableEndpoint struct {
	dbClient *db.Db
	renderer *table.Renderer
	tables   map[string]*servedTable
	names    []string
	logger   log.Logger
}

func NewEndpointConfig(definitions ...source.Definition) (*TableEndpointConfig, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewEndpointConfigWithLogger(log.NewZapLogger(logger), definitions...), nil
}

func NewEndpointConfigWithLogger(logger log.Logger, definitions ...source.Definition) *TableEndpointConfig {
	return &TableEndpointConfig{
		definitions:   definitions,
		consistency:   gocql.LocalQuorum,
		naming:        config.NewDefaultNaming(),
		actionsHeader: config.DefaultActionsHeader,
		logger:        logger,
	}
}

// Tables returns the names of the served tables, sorted
func (te *TableEndpoint) Tables() []string {
	names := make([]string, len(te.names))
	copy(names, te.names)
	return names
}

// View loads the rows of a table from its source and builds the table view.
func (te *TableEndpoint) View(ctx context.Context, name string) (*table.View, error) {
	served, ok := te.tables[name]
	if !ok {
		return nil, errNotFound(name)
	}

	rows, err := served.source.Rows(ctx)
	if err != nil {
		te.logger.Error("unable to load rows", "table", name, "error", err)
		return nil, errInternal(name, err)
	}

	view, err := te.renderer.Build(served.definition.Props(rows))
	if err != nil {
		te.logger.Error("unable to build table", "table", name, "error", err)
		return nil, errInternal(name, err)
	}
	return view, nil
}

// IndexView lists the served tables, rendered with the same table component.
func (te *TableEndpoint) IndexView() (*table.View, error) {
	rows := make([]table.Row, 0, len(te.names))
	for _, name := range te.names {
		definition := te.tables[name].definition
		rows = append(rows, table.NewRow(
			table.F("name", name),
			table.F("caption", definition.Caption),
			table.F("source", definition.Kind()),
		))
	}

	return te.renderer.Build(table.Props{
		Caption:      "Tables",
		Rows:         rows,
		TableClasses: []string{"tables-index"},
	})
}

// Close closes the database session and every source holding a connection of its own.
func (te *TableEndpoint) Close() {
	for name, served := range te.tables {
		if closer, ok := served.source.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				te.logger.Warn("unable to close table source", "table", name, "error", err)
			}
		}
	}
	if te.dbClient != nil {
		te.dbClient.Close()
	}
}

func errNotFound(name string) error {
	return e.NewNotFoundError(fmt.Sprintf("table not found: %s", name))
}

func errInternal(name string, cause error) error {
	return e.NewInternalError(fmt.Sprintf("unable to render table %s", name), cause)
}

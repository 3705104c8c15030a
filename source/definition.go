package source

import (
	"errors"
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"

	"github.com/datastax/action-table/db"
	"github.com/datastax/action-table/table"
)

// Definition describes one table served by the host: its presentation and where its rows come from, either
// inline rows, a CQL query or a query on a SQLite file.
type Definition struct {
	Name          string
	Caption       string
	ActionsHeader string
	TableClasses  []string
	Actions       []table.Action
	Rows          []table.Row
	Query         string
	SQLite        string
}

type definitionFile struct {
	Tables []rawDefinition `yaml:"tables"`
}

type rawDefinition struct {
	Name          string        `yaml:"name"`
	Caption       string        `yaml:"caption"`
	ActionsHeader string        `yaml:"actionsHeader"`
	TableClasses  []string      `yaml:"tableClasses"`
	Actions       []interface{} `yaml:"actions"`
	Rows          []yaml.Node   `yaml:"rows"`
	Query         string        `yaml:"query"`
	SQLite        string        `yaml:"sqlite"`
}

// LoadDefinitions reads a YAML or JSON definition file.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read table definitions: %w", err)
	}
	return ParseDefinitions(data)
}

// ParseDefinitions decodes table definitions. Rows are decoded node by node so that every row keeps the key order
// of the document.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse table definitions: %w", err)
	}

	definitions := make([]Definition, 0, len(file.Tables))
	seen := make(map[string]bool, len(file.Tables))

	for i, raw := range file.Tables {
		if raw.Name == "" {
			return nil, fmt.Errorf("table %d: name is required", i)
		}
		if seen[raw.Name] {
			return nil, fmt.Errorf("duplicate table name: %s", raw.Name)
		}
		seen[raw.Name] = true

		definition, err := raw.toDefinition()
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", raw.Name, err)
		}
		definitions = append(definitions, definition)
	}

	return definitions, nil
}

func (raw rawDefinition) toDefinition() (Definition, error) {
	if raw.Query != "" && len(raw.Rows) > 0 {
		return Definition{}, errors.New("rows and query are mutually exclusive")
	}
	if raw.SQLite != "" && raw.Query == "" {
		return Definition{}, errors.New("sqlite requires a query")
	}

	actions, err := table.ParseActions(raw.Actions)
	if err != nil {
		return Definition{}, err
	}

	rows := make([]table.Row, 0, len(raw.Rows))
	for i := range raw.Rows {
		row, err := rowFromNode(&raw.Rows[i])
		if err != nil {
			return Definition{}, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	return Definition{
		Name:          raw.Name,
		Caption:       raw.Caption,
		ActionsHeader: raw.ActionsHeader,
		TableClasses:  raw.TableClasses,
		Actions:       actions,
		Rows:          rows,
		Query:         raw.Query,
		SQLite:        raw.SQLite,
	}, nil
}

func rowFromNode(node *yaml.Node) (table.Row, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return table.Row{}, fmt.Errorf("expected a mapping, got line %d column %d", node.Line, node.Column)
	}

	fields := make([]table.Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return table.Row{}, fmt.Errorf("keys must be scalars, line %d column %d", key.Line, key.Column)
		}

		var decoded interface{}
		if err := value.Decode(&decoded); err != nil {
			return table.Row{}, fmt.Errorf("unable to decode %s: %w", key.Value, err)
		}
		fields = append(fields, table.F(key.Value, decoded))
	}

	return table.NewRow(fields...), nil
}

// Kind names where the rows come from: "rows", "query" or "sqlite".
func (d Definition) Kind() string {
	switch {
	case d.SQLite != "":
		return "sqlite"
	case d.Query != "":
		return "query"
	default:
		return "rows"
	}
}

// Props builds the table properties for rows loaded from the definition's source.
func (d Definition) Props(rows []table.Row) table.Props {
	return table.Props{
		Caption:       d.Caption,
		Rows:          rows,
		Actions:       d.Actions,
		ActionsHeader: d.ActionsHeader,
		TableClasses:  d.TableClasses,
	}
}

// Source returns where the definition's rows come from. A CQL query needs a selector.
func (d Definition) Source(selector Selector, options *db.QueryOptions) (RowSource, error) {
	if d.Query == "" {
		return NewStaticSource(d.Rows), nil
	}
	if d.SQLite != "" {
		sqliteSource, err := NewSQLiteSource(d.SQLite, d.Query)
		if err != nil {
			return nil, err
		}
		return sqliteSource, nil
	}
	if selector == nil {
		return nil, fmt.Errorf("table %s has a query but no database hosts are configured", d.Name)
	}
	return NewCassandraSource(selector, d.Query, options), nil
}

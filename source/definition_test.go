package source

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datastax/action-table/db"
	"github.com/datastax/action-table/table"
)

const usersYaml = `
tables:
  - name: users
    caption: Users
    tableClasses: [my-table, user-table]
    actions:
      - Edit
      - name: Delete
        showIf:
          key: role
          is: editor
    rows:
      - name: Bob
        email: bob@mail.com
        dateCreated: 04/01/2020
        role: admin
      - name: Joe
        email: joe@mail.com
        dateCreated: 04/12/2020
        role: editor
  - name: books
    actionsHeader: Manage
    query: SELECT title, pages FROM store.books
`

func TestParseDefinitions(t *testing.T) {
	definitions, err := ParseDefinitions([]byte(usersYaml))
	require.NoError(t, err)
	require.Len(t, definitions, 2)

	users := definitions[0]
	assert.Equal(t, "users", users.Name)
	assert.Equal(t, "Users", users.Caption)
	assert.Equal(t, []string{"my-table", "user-table"}, users.TableClasses)
	assert.Equal(t, []table.Action{
		{Name: "Edit"},
		{Name: "Delete", ShowIf: &table.Condition{Key: "role", Is: "editor"}},
	}, users.Actions)

	require.Len(t, users.Rows, 2)
	assert.Equal(t, []string{"name", "email", "dateCreated", "role"}, users.Rows[0].Keys())
	role, _ := users.Rows[1].Get("role")
	assert.Equal(t, "editor", role)

	books := definitions[1]
	assert.Equal(t, "SELECT title, pages FROM store.books", books.Query)
	assert.Equal(t, "Manage", books.ActionsHeader)
	assert.Empty(t, books.Rows)
}

func TestParseDefinitionsJSON(t *testing.T) {
	definitions, err := ParseDefinitions([]byte(`{"tables": [{"name": "t", "rows": [{"z": 1, "a": true, "m": null}]}]}`))
	require.NoError(t, err)
	require.Len(t, definitions[0].Rows, 1)

	row := definitions[0].Rows[0]
	assert.Equal(t, []string{"z", "a", "m"}, row.Keys())
	z, _ := row.Get("z")
	assert.Equal(t, 1, z)
	a, _ := row.Get("a")
	assert.Equal(t, true, a)
	m, ok := row.Get("m")
	assert.True(t, ok)
	assert.Nil(t, m)
}

func TestParseDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{"missing name", "tables: [{caption: x}]", "table 0: name is required"},
		{"duplicate", "tables: [{name: a}, {name: a}]", "duplicate table name: a"},
		{"rows and query", "tables: [{name: a, query: SELECT, rows: [{x: 1}]}]", "table a: rows and query are mutually exclusive"},
		{"bad action", "tables: [{name: a, actions: [1]}]", "table a: action 0: action must be a name or an object, got int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinitions([]byte(tt.data))
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestParseDefinitionsScalarRow(t *testing.T) {
	_, err := ParseDefinitions([]byte("tables: [{name: a, rows: [1]}]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table a: row 0: expected a mapping")
}

func TestLoadDefinitions(t *testing.T) {
	dir, err := ioutil.TempDir("", "definitions")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tables.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(usersYaml), 0644))

	definitions, err := LoadDefinitions(path)
	require.NoError(t, err)
	assert.Len(t, definitions, 2)

	_, err = LoadDefinitions(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefinitionSource(t *testing.T) {
	definitions, err := ParseDefinitions([]byte(usersYaml))
	require.NoError(t, err)

	src, err := definitions[0].Source(nil, nil)
	require.NoError(t, err)
	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = definitions[1].Source(nil, nil)
	assert.EqualError(t, err, "table books has a query but no database hosts are configured")

	src, err = definitions[1].Source(db.NewDbWithSession(db.NewSessionMock()), nil)
	require.NoError(t, err)
	assert.IsType(t, &CassandraSource{}, src)
}

func TestDefinitionProps(t *testing.T) {
	definitions, err := ParseDefinitions([]byte(usersYaml))
	require.NoError(t, err)

	props := definitions[0].Props(definitions[0].Rows)
	assert.Equal(t, "Users", props.Caption)
	assert.Len(t, props.Rows, 2)
	assert.Len(t, props.Actions, 2)
	assert.NoError(t, props.Validate())
}

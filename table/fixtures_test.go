package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func userRows() []Row {
	return []Row{
		NewRow(F("name", "Bob"), F("email", "bob@mail.com"), F("dateCreated", "04/01/2020"), F("role", "admin")),
		NewRow(F("name", "Joe"), F("email", "joe@mail.com"), F("dateCreated", "04/12/2020"), F("role", "editor")),
		NewRow(F("name", "Amanda"), F("email", "amanda@mail.com"), F("dateCreated", "04/15/2020"), F("role", "admin")),
		NewRow(F("name", "Jane"), F("email", "jane@mail.com"), F("dateCreated", "04/20/2020"), F("role", "editor")),
	}
}

// mount renders props and parses the markup back into a node tree.
func mount(t *testing.T, props Props) *html.Node {
	t.Helper()
	markup, err := NewDefaultRenderer().HTML(props)
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(string(markup)))
	require.NoError(t, err)
	return doc
}

func findAll(node *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return found
}

func text(node *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return strings.TrimSpace(sb.String())
}

func attr(node *html.Node, key string) (string, bool) {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func texts(nodes []*html.Node) []string {
	values := make([]string, 0, len(nodes))
	for _, n := range nodes {
		values = append(values, text(n))
	}
	return values
}

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

func TestLocalName(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected string
	}{
		{"plain", "key", "key"},
		{"prefixed", "jira:key", "key"},
		{"braced", "{http://example.com/ns}key", "key"},
		{"braced with colons in uri", "{http://example.com:8080/ns}key", "key"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocalName(tt.tag))
		})
	}
}

func TestParse_BuildsTree(t *testing.T) {
	root, err := Parse([]byte(`<item><key>PROJ-1</key><summary>  hi  </summary></item>`))
	require.NoError(t, err)

	assert.Equal(t, "item", root.Tag)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "PROJ-1", root.ChildText("key"))
	assert.Equal(t, "hi", root.ChildText("summary"), "text is trimmed")
}

func TestParse_NamespacedTags(t *testing.T) {
	doc := `<root xmlns:j="http://example.com/jira"><j:key>PROJ-1</j:key></root>`
	root, err := Parse([]byte(doc))
	require.NoError(t, err)

	// Lookups compare local names only.
	assert.Equal(t, "PROJ-1", root.ChildText("key"))
	require.NotNil(t, root.FindChild("key"))
	assert.Equal(t, "{http://example.com/jira}key", root.FindChild("key").Tag)
}

func TestParse_Attributes(t *testing.T) {
	root, err := Parse([]byte(`<item><project id="10001" key="PROJ">Projections</project></item>`))
	require.NoError(t, err)

	project := root.FindChild("project")
	require.NotNil(t, project)
	assert.Equal(t, "10001", project.Attr["id"])
	assert.Equal(t, "PROJ", project.Attr["key"])
	assert.Equal(t, "Projections", project.Text)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<item><key>PROJ-1</item>`))
	assert.Error(t, err)

	_, err = Parse([]byte(``))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNode_Descendants(t *testing.T) {
	doc := `<comments><wrapper><comment>one</comment></wrapper><comment>two</comment></comments>`
	root, err := Parse([]byte(doc))
	require.NoError(t, err)

	found := root.Descendants("comment")
	require.Len(t, found, 2)
	assert.Equal(t, "one", found[0].Text, "document order, depth first")
	assert.Equal(t, "two", found[1].Text)
}

func TestNode_LookupAbsent(t *testing.T) {
	root, err := Parse([]byte(`<item/>`))
	require.NoError(t, err)

	assert.Nil(t, root.FindChild("key"))
	assert.Empty(t, root.ChildText("key"))
	assert.Empty(t, root.Descendants("key"))
}

func TestNode_Raw(t *testing.T) {
	doc := `<rss><channel><item><key>PROJ-1</key></item></channel></rss>`
	items, err := ParseItems([]byte(doc))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, `<item><key>PROJ-1</key></item>`, items[0].Raw())
}

func TestParseItems(t *testing.T) {
	doc := `<rss version="0.92"><channel>
		<title>export</title>
		<item><key>PROJ-1</key></item>
		<item><key>PROJ-2</key></item>
	</channel></rss>`

	items, err := ParseItems([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestParseItems_NotRSS(t *testing.T) {
	_, err := ParseItems([]byte(`<html><body/></html>`))
	assert.ErrorIs(t, err, domain.ErrUnrecognisedFeed)
}

func TestParseItems_NoChannel(t *testing.T) {
	items, err := ParseItems([]byte(`<rss version="0.92"></rss>`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseItems_CaseInsensitiveEnvelope(t *testing.T) {
	items, err := ParseItems([]byte(`<RSS><CHANNEL><item><key>PROJ-1</key></item></CHANNEL></RSS>`))
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

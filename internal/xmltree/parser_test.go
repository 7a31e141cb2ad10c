package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagNames(nodes []*Node) []string {
	var names []string
	for _, n := range nodes {
		if n.Kind == ElementNode {
			names = append(names, n.TagName())
		}
	}
	return names
}

func TestParseDescendantsInDocumentOrder(t *testing.T) {
	doc, err := ParseBytes([]byte(`<?xml version="1.0"?>
<Root>
  <A><B/><C><D/></C></A>
  <E/>
</Root>`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Root", "A", "B", "C", "D", "E"}, tagNames(doc.Descendants()))

	a := doc.Root.Children[1]
	require.True(t, a.HasTagName("A"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, tagNames(a.Descendants()))
}

func TestParseText(t *testing.T) {
	doc, err := ParseBytes([]byte(`<Root>` +
		`<Plain>hello &amp; bye</Plain>` +
		`<Mixed>lead<X/>tail</Mixed>` +
		`<Cdata>one <![CDATA[<two>]]> three</Cdata>` +
		`<Empty></Empty>` +
		`<Nested><X>inner</X></Nested>` +
		`<Commented><!-- c -->text</Commented>` +
		`</Root>`))
	require.NoError(t, err)

	cases := []struct {
		tag  string
		want string
		ok   bool
	}{
		{"Plain", "hello & bye", true},
		{"Mixed", "lead", true},
		{"Cdata", "one <two> three", true},
		{"Empty", "", false},
		{"Nested", "", false},
		{"Commented", "", false},
	}

	for i, c := range cases {
		c := c
		node := doc.Root.Children[i]
		t.Run(c.tag, func(t *testing.T) {
			require.True(t, node.HasTagName(c.tag))
			got, ok := node.Text()
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseKeepsWhitespaceText(t *testing.T) {
	doc, err := ParseBytes([]byte("<Root>\n  <Child/>\n</Root>"))
	require.NoError(t, err)

	text, ok := doc.Root.Text()
	assert.True(t, ok)
	assert.Equal(t, "\n  ", text)
}

func TestAttributeIgnoresPrefixedNames(t *testing.T) {
	doc, err := ParseBytes([]byte(`<r:Root xmlns:r="urn:x" r:Name="prefixed" Pure="true"/>`))
	require.NoError(t, err)

	assert.True(t, doc.Root.HasTagName("Root"))

	_, ok := doc.Root.Attribute("Name")
	assert.False(t, ok, "a prefixed attribute must not satisfy Name")

	pure, ok := doc.Root.Attribute("Pure")
	assert.True(t, ok)
	assert.Equal(t, "true", pure)

	_, ok = doc.Root.Attribute("Missing")
	assert.False(t, ok)

	doc, err = ParseBytes([]byte(`<Root xmlns:r="urn:x" r:Name="prefixed" Name="plain"/>`))
	require.NoError(t, err)
	name, ok := doc.Root.Attribute("Name")
	assert.True(t, ok)
	assert.Equal(t, "plain", name)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"only prolog": `<?xml version="1.0"?>`,
		"unclosed":    "<Root><A></Root>",
		"two roots":   `<Function Name="a"/><Function Name="b"/><Variable Name="v"/>`,
		"text after":  "<Root/>trailing",
		"text before": "leading<Root/>",
	}
	for name, input := range cases {
		input := input
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsMultipleRoots(t *testing.T) {
	_, err := ParseBytes([]byte(`<Function Name="a"/>
<Function Name="b"/>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple root elements")
}

func TestParseRejectsTextAfterRoot(t *testing.T) {
	_, err := ParseBytes([]byte("<Root><A/></Root>\n  junk\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text outside the root element")
}

func TestParseAllowsWhitespaceAndCommentsAroundRoot(t *testing.T) {
	doc, err := ParseBytes([]byte("<?xml version=\"1.0\"?>\n<!-- head -->\n<Root/>\n<!-- tail -->\n"))
	require.NoError(t, err)
	assert.True(t, doc.Root.HasTagName("Root"))
	assert.Empty(t, doc.Root.Children)
}

func TestNonElementTagName(t *testing.T) {
	doc, err := ParseBytes([]byte(`<Root>text</Root>`))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)

	text := doc.Root.Children[0]
	assert.Equal(t, TextNode, text.Kind)
	assert.Equal(t, "", text.TagName())
	assert.False(t, text.HasTagName(""))
	assert.Same(t, doc.Root, text.Parent)
}

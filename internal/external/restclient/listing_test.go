package restclient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, raw string) []listing {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(raw))
	require.NoError(t, err)

	parsed := ParseListings(doc, "https://bids.example.com/search")

	result := make([]listing, 0, len(parsed))
	for _, l := range parsed {
		result = append(result, listing{l.BidNumber, l.Title, l.Url, l.Agency, l.DueDateRaw, l.BidType})
	}

	return result
}

type listing struct {
	bidNumber, title, url, agency, dueDate, bidType string
}

func TestParseListingsExtractsTableRows(t *testing.T) {
	page := `
	<html><body><table>
	<tr><th>Number</th><th>Title</th><th>Agency</th><th>Due</th><th>Type</th></tr>
	<tr>
		<td>24-117</td>
		<td><a href="/bids/117">Gym roof replacement</a></td>
		<td>School District</td>
		<td>8/15/2024</td>
		<td>ITB</td>
	</tr>
	<tr>
		<td>24-118</td>
		<td><a href="https://other.example.com/118">Library reroof</a></td>
		<td>County</td>
	</tr>
	</table></body></html>`

	listings := parseFragment(t, page)
	require.Len(t, listings, 2)

	assert.Equal(t, "24-117", listings[0].bidNumber)
	assert.Equal(t, "Gym roof replacement", listings[0].title)
	assert.Equal(t, "https://bids.example.com/bids/117", listings[0].url)
	assert.Equal(t, "School District", listings[0].agency)
	assert.Equal(t, "8/15/2024", listings[0].dueDate)
	assert.Equal(t, "ITB", listings[0].bidType)

	assert.Equal(t, "https://other.example.com/118", listings[1].url)
	assert.Empty(t, listings[1].dueDate)
	assert.Empty(t, listings[1].bidType)
}

func TestParseListingsSkipsRowsWithoutLinks(t *testing.T) {
	page := `<table>
	<tr><td>24-117</td><td>No link here</td></tr>
	<tr><td>24-118</td><td><a href="/bids/118">Linked</a></td><td>County</td></tr>
	</table>`

	listings := parseFragment(t, page)
	require.Len(t, listings, 1)
	assert.Equal(t, "Linked", listings[0].title)
}

func TestParseListingsNeverFailsOnMalformedMarkup(t *testing.T) {
	pages := []string{
		"",
		"plain text, no markup at all",
		"<div><span>unclosed",
		"<table><tr><td><a href=''>empty href</a></td></tr></table>",
		"<tr><td></td>",
		`{"this": "is json, not html"}`,
	}

	for _, page := range pages {
		listings := parseFragment(t, page)
		assert.Empty(t, listings)
	}
}

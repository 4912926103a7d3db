package restclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"bid-tracking-api/internal/external"

	"golang.org/x/net/html"
)

// ListingClient fetches the third-party bid listing page for a keyword and
// parses it into candidate records. The page is uncontrolled markup, so the
// parse is structural best-effort and never fails: malformed input yields an
// empty result.
type ListingClient struct {
	restClient
}

func NewListingClient(baseUrl string) *ListingClient {
	return &ListingClient{newRestClient(baseUrl)}
}

func (c *ListingClient) Fetch(ctx context.Context, keyword string) ([]external.Listing, error) {
	reqUrl := c.baseUrl + "?q=" + url.QueryEscape(keyword)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, nil
	}

	return ParseListings(doc, c.baseUrl), nil
}

// ParseListings extracts one candidate per table row. Expected cell order is
// bid number, linked title, agency, due date, bid type; any missing cell
// stays empty. Rows without a link are skipped.
func ParseListings(doc *html.Node, baseUrl string) []external.Listing {
	var listings []external.Listing

	for _, row := range findAll(doc, "tr") {
		texts := make([]string, 0, 5)
		href := ""
		for _, td := range findAll(row, "td") {
			texts = append(texts, nodeText(td))
			if href == "" {
				href = firstHref(td)
			}
		}

		if href == "" {
			continue
		}

		listing := external.Listing{Url: resolveHref(baseUrl, href)}
		if len(texts) > 0 {
			listing.BidNumber = texts[0]
		}
		if len(texts) > 1 {
			listing.Title = texts[1]
		}
		if len(texts) > 2 {
			listing.Agency = texts[2]
		}
		if len(texts) > 3 {
			listing.DueDateRaw = texts[3]
		}
		if len(texts) > 4 {
			listing.BidType = texts[4]
		}

		if listing.Title == "" && len(texts) > 0 {
			listing.Title = texts[0]
		}
		if listing.Title == "" {
			continue
		}

		listings = append(listings, listing)
	}

	return listings
}

func findAll(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			found = append(found, node)

			return
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)

	return found
}

func nodeText(n *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(builder.String()), " ")
}

func firstHref(n *html.Node) string {
	for _, anchor := range findAll(n, "a") {
		for _, attr := range anchor.Attr {
			if attr.Key == "href" && attr.Val != "" {
				return attr.Val
			}
		}
	}

	return ""
}

func resolveHref(baseUrl string, href string) string {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return base.ResolveReference(ref).String()
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/teamhub-io/teamhub-client/internal/constants"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// GetAll fetches every page of a collection by following the server's
// Link headers and returns the accumulated items in server order. A
// failure on any page discards everything fetched so far: the caller gets
// either the whole collection or an error, never a partial one.
func GetAll[T any](ctx context.Context, c *Client, path string, query url.Values, opts *teamhub.PaginationOptions) (*teamhub.ListResult[T], error) {
	maxPages := c.maxPages
	maxItems := 0

	if opts != nil {
		if opts.MaxPages > 0 {
			maxPages = opts.MaxPages
		}

		maxItems = opts.MaxItems
	}

	firstURL, err := c.resolveURL(path, query)
	if err != nil {
		return nil, teamhub.ErrUsage(fmt.Sprintf("invalid request path %q: %v", path, err))
	}

	result := &teamhub.ListResult[T]{}
	pageURL := firstURL

	for {
		resp, err := c.Do(ctx, &Request{Method: "GET", Path: pageURL.String()})
		if err != nil {
			return nil, err
		}

		var items []T
		if err := json.Unmarshal(resp.Body, &items); err != nil {
			return nil, teamhub.ErrAPI(resp.StatusCode, fmt.Sprintf("decoding page %d: %v", result.PageCount+1, err))
		}

		result.PageCount++

		if result.PageCount == 1 {
			if total := resp.Headers.Get(constants.TotalCountHeader); total != "" {
				if count, convErr := strconv.Atoi(total); convErr == nil {
					result.TotalCount = count
				}
			}
		}

		if maxItems > 0 && len(result.Items)+len(items) >= maxItems {
			keep := maxItems - len(result.Items)
			result.Items = append(result.Items, items[:keep]...)
			result.Truncated = true

			return result, nil
		}

		result.Items = append(result.Items, items...)

		nextURL, err := nextPageURL(pageURL, firstURL, resp.Headers.Get("Link"))
		if err != nil {
			return nil, err
		}

		if nextURL == nil {
			return result, nil
		}

		if result.PageCount >= maxPages {
			result.Truncated = true

			return result, nil
		}

		pageURL = nextURL
	}
}

// nextPageURL extracts the rel="next" target from a Link header, resolves
// it against the page it came from, and rejects targets on a different
// origin than the first page. No request is made to a rejected target.
func nextPageURL(current, first *url.URL, linkHeader string) (*url.URL, error) {
	next := parseLinkNext(linkHeader)
	if next == "" {
		return nil, nil
	}

	parsed, err := url.Parse(next)
	if err != nil {
		return nil, teamhub.ErrAPI(0, fmt.Sprintf("malformed pagination link %q: %v", next, err))
	}

	resolved := current.ResolveReference(parsed)

	if resolved.Scheme != first.Scheme || resolved.Host != first.Host {
		return nil, teamhub.ErrAPI(0, fmt.Sprintf(
			"pagination link points to a different origin: %s://%s", resolved.Scheme, resolved.Host))
	}

	return resolved, nil
}

// parseLinkNext returns the target of the rel="next" entry in a Link
// header, or "" when there is none.
func parseLinkNext(header string) string {
	if header == "" {
		return ""
	}

	for _, entry := range strings.Split(header, ",") {
		parts := strings.Split(entry, ";")
		if len(parts) < 2 {
			continue
		}

		target := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		for _, param := range parts[1:] {
			param = strings.TrimSpace(param)

			rel, found := strings.CutPrefix(param, "rel=")
			if !found {
				continue
			}

			if strings.Trim(rel, `"`) == "next" {
				return strings.Trim(target, "<>")
			}
		}
	}

	return ""
}

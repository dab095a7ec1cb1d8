package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SearchPerson searches people by name. Results are in TMDB ranking order.
func (c *Client) SearchPerson(ctx context.Context, query string) ([]Person, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("language", c.language)

	var page PersonPage
	action := fmt.Sprintf("searching actors for '%s'", query)
	if err := c.Request(ctx, http.MethodGet, "/3/search/person", params, action, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// PersonExternalIDs fetches the external catalog ids for a person.
func (c *Client) PersonExternalIDs(ctx context.Context, personID int64) (*ExternalIDs, error) {
	var ids ExternalIDs
	path := fmt.Sprintf("/3/person/%d/external_ids", personID)
	action := fmt.Sprintf("getting external IDs for actor ID %d", personID)
	if err := c.Request(ctx, http.MethodGet, path, nil, action, &ids); err != nil {
		return nil, err
	}
	return &ids, nil
}

// PersonMovieCredits fetches a person's movie credits.
func (c *Client) PersonMovieCredits(ctx context.Context, personID int64) (*MovieCredits, error) {
	params := url.Values{}
	params.Set("language", c.language)

	var credits MovieCredits
	path := fmt.Sprintf("/3/person/%d/movie_credits", personID)
	action := fmt.Sprintf("getting movie credits for actor ID %d", personID)
	if err := c.Request(ctx, http.MethodGet, path, params, action, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// PopularPeople fetches one page of the popular people listing (1-based).
func (c *Client) PopularPeople(ctx context.Context, page int) (*PersonPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("language", c.language)

	var result PersonPage
	action := fmt.Sprintf("getting popular people page %d", page)
	if err := c.Request(ctx, http.MethodGet, "/3/person/popular", params, action, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

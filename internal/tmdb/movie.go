package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// MovieDetails fetches a movie with its credits and external ids appended.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,external_ids")
	params.Set("language", c.language)

	var movie MovieDetails
	path := fmt.Sprintf("/3/movie/%d", movieID)
	action := fmt.Sprintf("getting details for movie ID %d", movieID)
	if err := c.Request(ctx, http.MethodGet, path, params, action, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

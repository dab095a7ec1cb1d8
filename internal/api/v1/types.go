// internal/api/v1/types.go
package v1

import (
	"github.com/vmunix/screenpairs/internal/actors"
	"github.com/vmunix/screenpairs/internal/popular"
)

// commonMoviesRequest is the query string of GET /common-movies.
type commonMoviesRequest struct {
	Actor1 string `validate:"required"`
	Actor2 string `validate:"required"`
}

// autocompleteResponse is the response for GET /actors/autocomplete.
type autocompleteResponse struct {
	Results []actors.Candidate `json:"results"`
}

// listPairsResponse is the response for GET /pairs/popular.
type listPairsResponse struct {
	Items []*popular.Pair `json:"items"`
	Total int             `json:"total"`
	Limit int             `json:"limit"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

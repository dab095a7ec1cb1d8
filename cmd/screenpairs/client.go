package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps HTTP calls to the screenpairs server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new screenpairs API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			// Uncached pairs fan out to many TMDB calls.
			Timeout: 60 * time.Second,
		},
	}
}

// APIError is a non-200 response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func (c *Client) get(path string, params url.Values, result any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	resp, err := c.httpClient.Get(target)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{Status: resp.StatusCode, Message: string(body)}
		var payload struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type CandidateResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ProfilePath *string `json:"profile_path"`
	Popularity  float64 `json:"popularity"`
}

type AutocompleteResponse struct {
	Results []CandidateResponse `json:"results"`
}

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MovieResponse struct {
	ID          int64             `json:"id"`
	Title       *string           `json:"title"`
	PosterPath  *string           `json:"poster_path"`
	ReleaseYear string            `json:"release_year"`
	Directors   []string          `json:"directors"`
	IMDbURL     *string           `json:"imdb_url"`
	Genres      []GenreResponse   `json:"genres"`
	Characters  map[string]string `json:"characters"`
}

type CommonMoviesResponse struct {
	Results     []MovieResponse `json:"results"`
	Actor1Image *string         `json:"actor1_image"`
	Actor2Image *string         `json:"actor2_image"`
	Actor1IMDb  *string         `json:"actor1_imdb"`
	Actor2IMDb  *string         `json:"actor2_imdb"`
}

type PairMovieResponse struct {
	Title         string `json:"title"`
	ReleaseDate   string `json:"release_date"`
	IsDocumentary bool   `json:"is_documentary"`
}

type PairResponse struct {
	Actor1ID          int64               `json:"actor1_id"`
	Actor2ID          int64               `json:"actor2_id"`
	Actor1Name        string              `json:"actor1_name"`
	Actor2Name        string              `json:"actor2_name"`
	CommonMoviesCount int                 `json:"common_movies_count"`
	CommonMovies      []PairMovieResponse `json:"common_movies"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type ListPairsResponse struct {
	Items []PairResponse `json:"items"`
	Total int            `json:"total"`
	Limit int            `json:"limit"`
}

// Client methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Autocomplete(query string) (*AutocompleteResponse, error) {
	var resp AutocompleteResponse
	if err := c.get("/api/v1/actors/autocomplete", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CommonMovies(actor1, actor2 string) (*CommonMoviesResponse, error) {
	params := url.Values{"actor1": {actor1}, "actor2": {actor2}}
	var resp CommonMoviesResponse
	if err := c.get("/api/v1/common-movies", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PopularPairs(actor string, limit int) (*ListPairsResponse, error) {
	params := url.Values{}
	if actor != "" {
		params.Set("actor", actor)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp ListPairsResponse
	if err := c.get("/api/v1/pairs/popular", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

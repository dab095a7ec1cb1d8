package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(url string, opts ...Option) *Client {
	opts = append([]Option{WithLogger(testLogger())}, opts...)
	return NewClient(Config{Token: "test-token", BaseURL: url}, opts...)
}

func strPtr(s string) *string { return &s }

func TestClient_SearchPerson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/person", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "Tom Hanks", r.URL.Query().Get("query"))
		assert.Equal(t, "false", r.URL.Query().Get("include_adult"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[
			{"id":31,"name":"Tom Hanks","profile_path":"/hanks.jpg","popularity":42.5},
			{"id":999,"name":"Tom Hanks Jr","profile_path":null,"popularity":1.2}
		],"total_pages":1,"total_results":2}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	people, err := client.SearchPerson(context.Background(), "Tom Hanks")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, int64(31), people[0].ID)
	assert.Equal(t, "Tom Hanks", people[0].Name)
	require.NotNil(t, people[0].ProfilePath)
	assert.Equal(t, "/hanks.jpg", *people[0].ProfilePath)
	assert.Equal(t, 42.5, people[0].Popularity)
	assert.Nil(t, people[1].ProfilePath)
}

func TestClient_PersonExternalIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/person/31/external_ids", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":31,"imdb_id":"nm0000158"}`))
	}))
	defer server.Close()

	ids, err := newTestClient(server.URL).PersonExternalIDs(context.Background(), 31)
	require.NoError(t, err)
	require.NotNil(t, ids.IMDBID)
	assert.Equal(t, "nm0000158", *ids.IMDBID)
}

func TestClient_PersonMovieCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/person/31/movie_credits", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":31,"cast":[
			{"id":13,"title":"Forrest Gump","release_date":"1994-06-23","character":"Forrest Gump","genre_ids":[35,18]},
			{"id":862,"title":"Toy Story","character":null,"genre_ids":[16]}
		]}`))
	}))
	defer server.Close()

	credits, err := newTestClient(server.URL).PersonMovieCredits(context.Background(), 31)
	require.NoError(t, err)
	require.Len(t, credits.Cast, 2)
	assert.Equal(t, int64(13), credits.Cast[0].ID)
	assert.Equal(t, []int{35, 18}, credits.Cast[0].GenreIDs)
	assert.Nil(t, credits.Cast[1].Character)
	assert.Nil(t, credits.Cast[1].ReleaseDate)
}

func TestClient_MovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/9489", r.URL.Path)
		assert.Equal(t, "credits,external_ids", r.URL.Query().Get("append_to_response"))

		resp := map[string]any{
			"id":           9489,
			"title":        "You've Got Mail",
			"poster_path":  "/mail.jpg",
			"release_date": "1998-12-18",
			"genres":       []map[string]any{{"id": 35, "name": "Comedy"}},
			"credits": map[string]any{"crew": []map[string]any{
				{"name": "Nora Ephron", "job": "Director"},
				{"name": "Lauren Shuler Donner", "job": "Producer"},
			}},
			"external_ids": map[string]any{"imdb_id": "tt0128853"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	movie, err := newTestClient(server.URL).MovieDetails(context.Background(), 9489)
	require.NoError(t, err)
	assert.Equal(t, int64(9489), movie.ID)
	assert.Equal(t, "1998", movie.ReleaseYear())
	assert.Equal(t, []string{"Nora Ephron"}, movie.Directors())
	assert.Equal(t, []Genre{{ID: 35, Name: "Comedy"}}, movie.Genres)
	require.NotNil(t, IMDbTitleURL(movie.ExternalIDs.IMDBID))
	assert.Equal(t, "https://www.imdb.com/title/tt0128853/", *IMDbTitleURL(movie.ExternalIDs.IMDBID))
}

func TestClient_PopularPeople(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/person/popular", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"page":3,"results":[{"id":1,"name":"A"}],"total_pages":500}`))
	}))
	defer server.Close()

	page, err := newTestClient(server.URL).PopularPeople(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 500, page.TotalPages)
	require.Len(t, page.Results, 1)
}

func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	movie, err := newTestClient(server.URL).MovieDetails(context.Background(), 99999999)
	assert.Nil(t, movie)

	var rse *RemoteServiceError
	require.True(t, errors.As(err, &rse))
	assert.Equal(t, ReasonHTTP, rse.Reason)
	assert.Equal(t, http.StatusNotFound, rse.Status)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, "TMDB returned HTTP error 404 while getting details for movie ID 99999999", err.Error())
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchPerson(context.Background(), "x")

	var rse *RemoteServiceError
	require.True(t, errors.As(err, &rse))
	assert.Equal(t, ReasonInvalidResponse, rse.Reason)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, WithTimeout(50*time.Millisecond))

	_, err := client.PersonMovieCredits(context.Background(), 31)

	var rse *RemoteServiceError
	require.True(t, errors.As(err, &rse))
	assert.Equal(t, ReasonTimeout, rse.Reason)
	assert.Contains(t, err.Error(), "timeout communicating with TMDB")
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).PersonExternalIDs(context.Background(), 31)

	var rse *RemoteServiceError
	require.True(t, errors.As(err, &rse))
	assert.Equal(t, ReasonNetwork, rse.Reason)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{Token: "t"})
	assert.Equal(t, defaultBaseURL, c.baseURL)
	assert.Equal(t, defaultLanguage, c.language)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)

	c = NewClient(Config{Token: "t", BaseURL: "http://localhost:9999/", Language: "fr-FR"})
	assert.Equal(t, "http://localhost:9999", c.baseURL)
	assert.Equal(t, "fr-FR", c.language)
}

func TestWithHTTPClient_KeepsDefaultTimeout(t *testing.T) {
	hc := &http.Client{}
	c := NewClient(Config{Token: "t"}, WithHTTPClient(hc))
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Zero(t, hc.Timeout, "caller's client is not modified")

	c = NewClient(Config{Token: "t"}, WithHTTPClient(&http.Client{Timeout: time.Second}))
	assert.Equal(t, time.Second, c.httpClient.Timeout)

	c = NewClient(Config{Token: "t"}, WithHTTPClient(&http.Client{}), WithTimeout(50*time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, c.httpClient.Timeout)
}

func TestMovieDetails_Helpers(t *testing.T) {
	m := MovieDetails{}
	assert.Equal(t, "", m.ReleaseYear())
	assert.Equal(t, []string{}, m.Directors())

	m.ReleaseDate = "2001-09-14"
	assert.Equal(t, "2001", m.ReleaseYear())

	assert.Nil(t, IMDbNameURL(nil))
	assert.Nil(t, IMDbNameURL(strPtr("")))
	assert.Equal(t, "https://www.imdb.com/name/nm0000158/", *IMDbNameURL(strPtr("nm0000158")))
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "timeout", ReasonTimeout.String())
	assert.Equal(t, "http", ReasonHTTP.String())
	assert.Equal(t, "network", ReasonNetwork.String())
	assert.Equal(t, "invalid_response", ReasonInvalidResponse.String())
	assert.Equal(t, "unexpected", ReasonUnexpected.String())
}

// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strings"

// Person is a person record as returned by search and popular listings.
type Person struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        *string `json:"profile_path"` // "/abc123.jpg"
	Popularity         float64 `json:"popularity"`
	KnownForDepartment string  `json:"known_for_department,omitempty"`
}

// PersonPage is one page of person results.
type PersonPage struct {
	Page         int      `json:"page"`
	Results      []Person `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// ExternalIDs holds identifiers in other catalogs.
type ExternalIDs struct {
	IMDBID *string `json:"imdb_id"` // "nm0000158" or "tt0133093"
}

// CastCredit is one acting credit in a person's filmography.
type CastCredit struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Character   *string `json:"character"`
	GenreIDs    []int   `json:"genre_ids"`
}

// MovieCredits is a person's movie filmography.
type MovieCredits struct {
	ID   int64        `json:"id"`
	Cast []CastCredit `json:"cast"`
}

// CrewMember is a crew credit on a movie.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits is the credits block appended to a movie response.
type Credits struct {
	Crew []CrewMember `json:"crew"`
}

// Genre represents a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreDocumentary is the TMDB genre id for documentaries.
const GenreDocumentary = 99

// MovieDetails is a movie with credits and external ids appended.
type MovieDetails struct {
	ID          int64       `json:"id"`
	Title       *string     `json:"title"`
	PosterPath  *string     `json:"poster_path"`
	ReleaseDate string      `json:"release_date"` // "2024-03-01", may be empty
	Genres      []Genre     `json:"genres"`
	Credits     Credits     `json:"credits"`
	ExternalIDs ExternalIDs `json:"external_ids"`
}

// Directors returns the names of crew members whose job is "Director", in upstream order.
func (m *MovieDetails) Directors() []string {
	directors := []string{}
	for _, c := range m.Credits.Crew {
		if c.Job == "Director" {
			directors = append(directors, c.Name)
		}
	}
	return directors
}

// ReleaseYear returns the year portion of ReleaseDate, or "" when absent.
func (m *MovieDetails) ReleaseYear() string {
	if m.ReleaseDate == "" {
		return ""
	}
	year, _, _ := strings.Cut(m.ReleaseDate, "-")
	return year
}

// IMDbNameURL returns the IMDb page for a person id, or nil when id is absent.
func IMDbNameURL(imdbID *string) *string {
	if imdbID == nil || *imdbID == "" {
		return nil
	}
	u := "https://www.imdb.com/name/" + *imdbID + "/"
	return &u
}

// IMDbTitleURL returns the IMDb page for a title id, or nil when id is absent.
func IMDbTitleURL(imdbID *string) *string {
	if imdbID == nil || *imdbID == "" {
		return nil
	}
	u := "https://www.imdb.com/title/" + *imdbID + "/"
	return &u
}

package pairs

import (
	"time"

	"github.com/vmunix/screenpairs/internal/metadata"
)

// TTL is how long a computed pair result stays valid.
const TTL = 24 * time.Hour

// TimestampLayout is the UTC layout of Entry.Timestamp.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Result is the payload returned for a pair query.
type Result struct {
	Results     []*metadata.MovieDetail `json:"results"`
	Actor1Image *string                 `json:"actor1_image"`
	Actor2Image *string                 `json:"actor2_image"`
	Actor1IMDb  *string                 `json:"actor1_imdb"`
	Actor2IMDb  *string                 `json:"actor2_imdb"`
}

// Entry is a stored Result stamped with its creation time.
type Entry struct {
	Result
	Timestamp string `json:"timestamp"`
}

// createdAt parses Timestamp. ok is false when it is missing or malformed.
func (e *Entry) createdAt() (t time.Time, ok bool) {
	if e.Timestamp == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

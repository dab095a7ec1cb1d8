package names

import (
	"github.com/hbollon/go-edlib"
)

// Confidence represents how closely two names match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Similarity returns the Jaro-Winkler similarity of two folded names (0.0-1.0).
func Similarity(a, b string) float64 {
	fa, fb := Fold(a), Fold(b)
	if fa == "" || fb == "" {
		return 0
	}
	if fa == fb {
		return 1
	}
	return float64(edlib.JaroWinklerSimilarity(fa, fb))
}

// ConfidenceOf buckets a similarity score.
func ConfidenceOf(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Match is the best candidate found by Best.
type Match struct {
	Name       string
	Score      float64
	Confidence Confidence
}

// Best returns the candidate closest to query.
// Name is empty when nothing reaches ConfidenceLow.
func Best(query string, candidates []string) Match {
	best := Match{Confidence: ConfidenceNone}
	for _, c := range candidates {
		score := Similarity(query, c)
		if score > best.Score {
			best.Name = c
			best.Score = score
		}
	}

	best.Confidence = ConfidenceOf(best.Score)
	if best.Confidence == ConfidenceNone {
		best.Name = ""
	}
	return best
}

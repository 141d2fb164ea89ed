package evaluate

import (
	"math"
	"unicode/utf8"

	"github.com/abhisek/lexis/internal/textmatch"
)

// TokenStatus classifies one position of a token alignment.
type TokenStatus string

const (
	TokenCorrect   TokenStatus = "correct"
	TokenAlmost    TokenStatus = "almost"
	TokenIncorrect TokenStatus = "incorrect"
	TokenMissing   TokenStatus = "missing"
	TokenExtra     TokenStatus = "extra"
)

const (
	// almostSimilarity is the token similarity at which a token earns half credit.
	almostSimilarity = 0.8

	// minTypoRunes is the shortest token for which a single edit still
	// counts as almost. Short words cannot reach almostSimilarity with one typo.
	minTypoRunes = 3
)

// AlignedToken is one position of an alignment.
type AlignedToken struct {
	Expected string
	Actual   string
	Status   TokenStatus
}

// Alignment is the positional comparison of an expected and an actual text.
type Alignment struct {
	Tokens    []AlignedToken
	Correct   int
	Almost    int
	Incorrect int
	Missing   int
	Extra     int
	Accuracy  int // 0-100
}

// AlignTokens compares expected and actual word by word, index against
// index. Tokens are not re-aligned after an insertion or deletion, so a
// dropped word early in the sentence shifts every later position.
func AlignTokens(expected, actual string) Alignment {
	exp := textmatch.Tokens(expected)
	act := textmatch.Tokens(actual)

	var a Alignment
	n := max(len(exp), len(act))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(act):
			a.Tokens = append(a.Tokens, AlignedToken{Expected: exp[i], Status: TokenMissing})
			a.Missing++
		case i >= len(exp):
			a.Tokens = append(a.Tokens, AlignedToken{Actual: act[i], Status: TokenExtra})
			a.Extra++
		default:
			status := classifyToken(exp[i], act[i])
			a.Tokens = append(a.Tokens, AlignedToken{Expected: exp[i], Actual: act[i], Status: status})
			switch status {
			case TokenCorrect:
				a.Correct++
			case TokenAlmost:
				a.Almost++
			default:
				a.Incorrect++
			}
		}
	}

	switch {
	case len(exp) > 0:
		a.Accuracy = int(math.Round(100 * (float64(a.Correct) + 0.5*float64(a.Almost)) / float64(len(exp))))
	case len(act) == 0:
		a.Accuracy = 100
	}
	return a
}

func classifyToken(expected, actual string) TokenStatus {
	sim := textmatch.Similarity(expected, actual)
	switch {
	case sim == 1:
		return TokenCorrect
	case sim >= almostSimilarity:
		return TokenAlmost
	case utf8.RuneCountInString(expected) >= minTypoRunes && textmatch.Distance(expected, actual) == 1:
		return TokenAlmost
	default:
		return TokenIncorrect
	}
}

package vocab

import "github.com/abhisek/lexis/internal/mastery"

// Distribution counts words per mastery bucket. Every word lands in
// exactly one bucket.
type Distribution struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
	Mastered     int `json:"mastered"`
}

// Count returns the count for bucket b.
func (d Distribution) Count(b mastery.Bucket) int {
	switch b {
	case mastery.BucketBeginner:
		return d.Beginner
	case mastery.BucketIntermediate:
		return d.Intermediate
	case mastery.BucketAdvanced:
		return d.Advanced
	case mastery.BucketMastered:
		return d.Mastered
	}
	return 0
}

// Total returns the number of words counted.
func (d Distribution) Total() int {
	return d.Beginner + d.Intermediate + d.Advanced + d.Mastered
}

// Classification summarizes a vocabulary snapshot. The counters are
// independent views; a word may count toward several of them.
type Classification struct {
	TotalWords        int          `json:"total_words"`
	PassiveVocabulary int          `json:"passive_vocabulary"`
	ActiveVocabulary  int          `json:"active_vocabulary"`
	StrugglingWords   int          `json:"struggling_words"`
	MasteredWords     int          `json:"mastered_words"`
	Distribution      Distribution `json:"distribution"`
}

// Classify aggregates records in a single pass.
func Classify(records []WordRecord) Classification {
	var c Classification
	for _, r := range records {
		c.TotalWords++
		if r.IsPassive() {
			c.PassiveVocabulary++
		}
		if r.IsActive() {
			c.ActiveVocabulary++
		}
		if r.IsStruggling() {
			c.StrugglingWords++
		}
		if r.IsMastered() {
			c.MasteredWords++
		}

		switch mastery.BucketFor(r.MasteryLevel) {
		case mastery.BucketBeginner:
			c.Distribution.Beginner++
		case mastery.BucketIntermediate:
			c.Distribution.Intermediate++
		case mastery.BucketAdvanced:
			c.Distribution.Advanced++
		case mastery.BucketMastered:
			c.Distribution.Mastered++
		}
	}
	return c
}

package mastery

// Bucket is a coarse band of mastery levels used for distribution reporting.
type Bucket string

const (
	BucketBeginner     Bucket = "beginner"
	BucketIntermediate Bucket = "intermediate"
	BucketAdvanced     Bucket = "advanced"
	BucketMastered     Bucket = "mastered"
)

// MaxLevel caps how far a word's mastery level can grow.
const MaxLevel = 10

// BucketFor maps a mastery level to its distribution bucket:
// 0-1 beginner, 2-3 intermediate, 4-5 advanced, 6+ mastered.
func BucketFor(level int) Bucket {
	switch {
	case level >= 6:
		return BucketMastered
	case level >= 4:
		return BucketAdvanced
	case level >= 2:
		return BucketIntermediate
	default:
		return BucketBeginner
	}
}

// AllBuckets returns the buckets from lowest to highest.
func AllBuckets() []Bucket {
	return []Bucket{BucketBeginner, BucketIntermediate, BucketAdvanced, BucketMastered}
}

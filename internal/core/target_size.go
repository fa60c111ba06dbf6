// ABOUTME: Maps a reader's age to the target chunk size in words
// ABOUTME: The policy is an ordered bucket table evaluated top-down
package core

// AgeBucket is one row of the target size table
type AgeBucket struct {
	MaxAge int // inclusive upper bound
	Words  int
}

// AgeBuckets is evaluated top-down; the first bucket whose MaxAge is >= age wins.
// Ages are not range checked, so negative ages land in the first bucket.
var AgeBuckets = []AgeBucket{
	{MaxAge: 12, Words: 150},
	{MaxAge: 20, Words: 220},
	{MaxAge: 35, Words: 250},
	{MaxAge: 50, Words: 240},
	{MaxAge: 65, Words: 200},
}

// DefaultTargetWords applies to ages above every bucket
const DefaultTargetWords = 180

// ResolveTargetSize returns the target chunk size in words for a reader of the given age
func ResolveTargetSize(age int) int {
	for _, b := range AgeBuckets {
		if age <= b.MaxAge {
			return b.Words
		}
	}
	return DefaultTargetWords
}

package grouping

import (
	"fmt"
	"strings"

	"diro/pkg/hasher"
	"diro/pkg/scanner"
)

// similarityThreshold is the minimum score for a file to join a group.
const similarityThreshold = 60

// BySimilarity clusters files greedily: each unassigned file seeds a group
// and pulls in every later unassigned file whose comparison key scores at
// least the threshold against the seed's key. The clustering is
// order-dependent and not transitively closed; each file belongs to at most
// one group per invocation.
//
// With CheckContents set, the comparison key is the content digest
// (computed lazily, cached for the duration of one Group call) and hash
// failures abort the call. Otherwise the key is the lowercased filename
// stem.
type BySimilarity struct {
	CheckContents bool
	GroupPrefix   string // e.g. "Similar"; labels are "<prefix><N>", N from 1
}

// Name implements Strategy.
func (b *BySimilarity) Name() string { return "Similarity" }

// Group implements Strategy. Only groups with two or more members are
// emitted; a seed without matches produces no group.
func (b *BySimilarity) Group(files []scanner.FileInfo) (*Suggestion, error) {
	s := NewSuggestion()
	processed := make(map[string]bool)
	h := hasher.New()
	counter := 1

	for i := range files {
		seed := files[i]
		if processed[seed.Path] {
			continue
		}

		seedKey, err := b.key(h, seed)
		if err != nil {
			return nil, err
		}

		group := []string{seed.Path}
		for _, other := range files[i+1:] {
			if processed[other.Path] {
				continue
			}

			otherKey, err := b.key(h, other)
			if err != nil {
				return nil, err
			}

			if b.score(seedKey, otherKey) >= similarityThreshold {
				group = append(group, other.Path)
				processed[other.Path] = true
			}
		}

		if len(group) > 1 {
			s.Add(fmt.Sprintf("%s%d", b.GroupPrefix, counter), group...)
			counter++
		}
		processed[seed.Path] = true
	}

	return s, nil
}

func (b *BySimilarity) key(h *hasher.Hasher, f scanner.FileInfo) (string, error) {
	if b.CheckContents {
		return h.Hash(f.Path)
	}

	return strings.ToLower(scanner.Stem(f.Name)), nil
}

func (b *BySimilarity) score(key1, key2 string) float64 {
	if b.CheckContents {
		return contentScore(key1, key2)
	}

	return nameScore(key1, key2)
}

// contentScore compares digests positionally: identical keys score 100,
// otherwise the ratio of equal-position characters to the longer key's
// length. This is a positional character-match ratio, not edit distance.
func contentScore(key1, key2 string) float64 {
	if key1 == key2 {
		return 100
	}

	r1, r2 := []rune(key1), []rune(key2)
	common := 0
	for i := 0; i < len(r1) && i < len(r2); i++ {
		if r1[i] == r2[i] {
			common++
		}
	}

	return float64(common) / float64(max(len(r1), len(r2))) * 100
}

// nameScore compares lowercased stems. Stems whose length difference
// exceeds half the longer stem's length score 0 outright. Otherwise the
// score is the ratio of distinct characters of stem1 appearing anywhere in
// stem2 to the longer length, boosted by 5 per character of common leading
// prefix once that prefix reaches length 3, capped at 100.
func nameScore(stem1, stem2 string) float64 {
	r1, r2 := []rune(stem1), []rune(stem2)
	longer := max(len(r1), len(r2))

	diff := len(r1) - len(r2)
	if diff < 0 {
		diff = -diff
	}
	if diff > longer/2 {
		return 0
	}
	if longer == 0 {
		return 0
	}

	inStem2 := make(map[rune]bool, len(r2))
	for _, r := range r2 {
		inStem2[r] = true
	}

	common := 0
	counted := make(map[rune]bool, len(r1))
	for _, r := range r1 {
		if counted[r] {
			continue
		}
		counted[r] = true
		if inStem2[r] {
			common++
		}
	}

	score := float64(common) / float64(longer) * 100

	prefix := 0
	for i := 0; i < len(r1) && i < len(r2); i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}
	if prefix >= 3 {
		score = min(100, score+float64(prefix*5))
	}

	return score
}

package miner_test

import (
	"testing"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/stretchr/testify/assert"
)

func TestScoreConfidence(t *testing.T) {
	t.Parallel()

	t.Run("email on the official domain", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Email: "jane@acmecorp.com"}
		score := miner.ScoreConfidence(c, "acmecorp.com")

		assert.Equal(t, 25, score)
		assert.Equal(t, []string{"Email on official domain"}, c.ConfidenceReasons)
	})

	t.Run("email on a foreign domain earns nothing", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Email: "jane@othercorp.com"}

		assert.Equal(t, 0, miner.ScoreConfidence(c, "acmecorp.com"))
		assert.Empty(t, c.ConfidenceReasons)
	})

	t.Run("phone presence", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Phone: "+919876543210"}
		score := miner.ScoreConfidence(c, "acmecorp.com")

		assert.Equal(t, 15, score)
		assert.Equal(t, []string{"Phone found on official site"}, c.ConfidenceReasons)
	})

	t.Run("explicit role", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Role: miner.RolePMS}
		score := miner.ScoreConfidence(c, "acmecorp.com")

		assert.Equal(t, 25, score)
		assert.Equal(t, []string{"Role explicitly stated"}, c.ConfidenceReasons)
	})

	t.Run("multiple evidence pages", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{
			EvidenceURLs: []string{"https://acmecorp.com/a", "https://acmecorp.com/b", "https://acmecorp.com/c"},
		}
		score := miner.ScoreConfidence(c, "acmecorp.com")

		assert.Equal(t, 20, score)
		assert.Equal(t, []string{"Found on 3 pages"}, c.ConfidenceReasons)
	})

	t.Run("a single evidence page earns no page bonus", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{EvidenceURLs: []string{"https://acmecorp.com/a"}}

		assert.Equal(t, 0, miner.ScoreConfidence(c, "acmecorp.com"))
	})

	t.Run("cross-source confirmation needs two engines", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Sources: []miner.Engine{miner.EngineGoogle, miner.EngineDuckDuckGo}}
		score := miner.ScoreConfidence(c, "acmecorp.com")

		assert.Equal(t, 15, score)
		assert.Equal(t, []string{"Cross-source confirmation"}, c.ConfidenceReasons)
	})

	t.Run("a single engine is not cross-source", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Sources: []miner.Engine{miner.EngineGoogle}}

		assert.Equal(t, 0, miner.ScoreConfidence(c, "acmecorp.com"))
	})

	t.Run("all signals together cap at 100", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{
			Email:        "jane@acmecorp.com",
			Phone:        "+919876543210",
			Role:         miner.RolePMS,
			EvidenceURLs: []string{"https://acmecorp.com/a", "https://acmecorp.com/b"},
			Sources:      []miner.Engine{miner.EngineGoogle, miner.EngineDuckDuckGo},
		}
		score := miner.ScoreConfidence(c, "acmecorp.com")

		assert.Equal(t, 100, score)
		assert.Equal(t, 100, c.Confidence)
		assert.Len(t, c.ConfidenceReasons, 5)
	})

	t.Run("score is written back to the contact", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Email: "jane@acmecorp.com", Phone: "+919876543210"}
		score := miner.ScoreConfidence(c, "acmecorp.com")

		assert.Equal(t, score, c.Confidence)
	})
}

func TestAcceptContact(t *testing.T) {
	t.Parallel()

	t.Run("accepts at the threshold", func(t *testing.T) {
		t.Parallel()
		assert.True(t, miner.AcceptContact(&miner.MergedContact{Confidence: 50}))
	})

	t.Run("rejects just below the threshold", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.AcceptContact(&miner.MergedContact{Confidence: 49}))
	})

	t.Run("domain email plus role clears the threshold", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Email: "jane@acmecorp.com", Role: miner.RoleIFA}
		miner.ScoreConfidence(c, "acmecorp.com")

		assert.True(t, miner.AcceptContact(c))
	})

	t.Run("lone off-domain phone stays below the threshold", func(t *testing.T) {
		t.Parallel()

		c := &miner.MergedContact{Phone: "+919876543210"}
		miner.ScoreConfidence(c, "acmecorp.com")

		assert.False(t, miner.AcceptContact(c))
	})
}

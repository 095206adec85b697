package miner_test

import (
	"testing"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPersona(t *testing.T) {
	t.Parallel()

	t.Run("recognizes each persona", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, miner.RolePMS, miner.ClassifyPersona("Portfolio Manager"))
		assert.Equal(t, miner.RoleInsuranceAgent, miner.ClassifyPersona("Insurance Advisor"))
		assert.Equal(t, miner.RoleIFA, miner.ClassifyPersona("Wealth Advisor"))
		assert.Equal(t, miner.RoleMutualFund, miner.ClassifyPersona("Head of Asset Management"))
		assert.Equal(t, miner.PersonaFinancialInfluencer, miner.ClassifyPersona("Founder and Content Creator"))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, miner.RolePMS, miner.ClassifyPersona("FUND MANAGER"))
	})

	t.Run("earlier personas win over later ones", func(t *testing.T) {
		t.Parallel()

		// "fund manager" (PMS) appears before "founder" (Financial Influencer).
		assert.Equal(t, miner.RolePMS, miner.ClassifyPersona("Founder and Fund Manager"))
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", miner.ClassifyPersona("Head Chef"))
		assert.Equal(t, "", miner.ClassifyPersona(""))
	})
}

func TestRankPeople(t *testing.T) {
	t.Parallel()

	t.Run("high-priority personas earn 80", func(t *testing.T) {
		t.Parallel()

		ranked := miner.RankPeople([]miner.Person{
			{Name: "Jane Doe", Title: "Portfolio Manager"},
		})

		require.Len(t, ranked, 1)
		assert.Equal(t, miner.RolePMS, ranked[0].Persona)
		assert.Equal(t, 80, ranked[0].Confidence)
		assert.Equal(t, "Persona matched: PMS", ranked[0].ConfidenceReason)
	})

	t.Run("lower-priority personas earn 60", func(t *testing.T) {
		t.Parallel()

		ranked := miner.RankPeople([]miner.Person{
			{Name: "John Smith", Title: "Insurance Advisor"},
		})

		require.Len(t, ranked, 1)
		assert.Equal(t, 60, ranked[0].Confidence)
	})

	t.Run("unmatched titles earn 30", func(t *testing.T) {
		t.Parallel()

		ranked := miner.RankPeople([]miner.Person{
			{Name: "Sam Jones", Title: "Office Manager"},
		})

		require.Len(t, ranked, 1)
		assert.Equal(t, "", ranked[0].Persona)
		assert.Equal(t, 30, ranked[0].Confidence)
		assert.Equal(t, "No persona match found", ranked[0].ConfidenceReason)
	})

	t.Run("orders by persona priority", func(t *testing.T) {
		t.Parallel()

		ranked := miner.RankPeople([]miner.Person{
			{Name: "Sam Jones", Title: "Office Manager"},
			{Name: "John Smith", Title: "Insurance Advisor"},
			{Name: "Jane Doe", Title: "Portfolio Manager"},
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, "Jane Doe", ranked[0].Name)
		assert.Equal(t, "John Smith", ranked[1].Name)
		assert.Equal(t, "Sam Jones", ranked[2].Name)
	})

	t.Run("order is stable within a priority", func(t *testing.T) {
		t.Parallel()

		ranked := miner.RankPeople([]miner.Person{
			{Name: "John Smith", Title: "Insurance Agent"},
			{Name: "Mary Major", Title: "Insurance Advisor"},
		})

		require.Len(t, ranked, 2)
		assert.Equal(t, "John Smith", ranked[0].Name)
		assert.Equal(t, "Mary Major", ranked[1].Name)
	})

	t.Run("deduplicates by name keeping the stronger persona", func(t *testing.T) {
		t.Parallel()

		ranked := miner.RankPeople([]miner.Person{
			{Name: "Jane Doe", Title: "Speaker"},
			{Name: "jane doe", Title: "Fund Manager"},
		})

		require.Len(t, ranked, 1)
		assert.Equal(t, miner.RolePMS, ranked[0].Persona)
		assert.Equal(t, 80, ranked[0].Confidence)
	})

	t.Run("drops entries without a name", func(t *testing.T) {
		t.Parallel()

		ranked := miner.RankPeople([]miner.Person{
			{Name: "", Title: "Portfolio Manager"},
			{Name: "   ", Title: "Fund Manager"},
		})

		assert.Empty(t, ranked)
	})
}

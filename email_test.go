package miner_test

import (
	"testing"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/stretchr/testify/assert"
)

func TestIsBusinessEmail(t *testing.T) {
	t.Parallel()

	t.Run("accepts company domain email", func(t *testing.T) {
		t.Parallel()
		assert.True(t, miner.IsBusinessEmail("ceo@acmecorp.com"))
	})

	t.Run("rejects personal webmail domains", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.IsBusinessEmail("ceo@gmail.com"))
		assert.False(t, miner.IsBusinessEmail("someone@yahoo.co.in"))
		assert.False(t, miner.IsBusinessEmail("someone@hotmail.com"))
		assert.False(t, miner.IsBusinessEmail("someone@rediffmail.com"))
		assert.False(t, miner.IsBusinessEmail("someone@protonmail.com"))
	})

	t.Run("rejects webmail domains regardless of case", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.IsBusinessEmail("CEO@Gmail.COM"))
	})

	t.Run("rejects empty and malformed input", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.IsBusinessEmail(""))
		assert.False(t, miner.IsBusinessEmail("not-an-email"))
	})

	t.Run("rejects asset names shaped like emails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.IsBusinessEmail("logo@2x.png"))
		assert.False(t, miner.IsBusinessEmail("icon@small.svg"))
		assert.False(t, miner.IsBusinessEmail("bundle@v2.min.js"))
	})

	t.Run("rejects documentation placeholders", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.IsBusinessEmail("you@example.com"))
		assert.False(t, miner.IsBusinessEmail("name@domain.com"))
	})
}

func TestEmailMatchesDomain(t *testing.T) {
	t.Parallel()

	t.Run("matches exact domain", func(t *testing.T) {
		t.Parallel()
		assert.True(t, miner.EmailMatchesDomain("jane@acmecorp.com", "acmecorp.com"))
	})

	t.Run("matches when email domain is a superset", func(t *testing.T) {
		t.Parallel()
		assert.True(t, miner.EmailMatchesDomain("jane@mail.acmecorp.com", "acmecorp.com"))
	})

	t.Run("matches when target carries a www prefix", func(t *testing.T) {
		t.Parallel()
		assert.True(t, miner.EmailMatchesDomain("jane@acmecorp.com", "www.acmecorp.com"))
	})

	t.Run("rejects an unrelated domain", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.EmailMatchesDomain("jane@other.com", "acmecorp.com"))
	})

	t.Run("rejects empty inputs", func(t *testing.T) {
		t.Parallel()
		assert.False(t, miner.EmailMatchesDomain("", "acmecorp.com"))
		assert.False(t, miner.EmailMatchesDomain("jane@acmecorp.com", ""))
	})
}

func TestNormalizeDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acmecorp.com", miner.NormalizeDomain("WWW.AcmeCorp.com"))
	assert.Equal(t, "acmecorp.com", miner.NormalizeDomain(" acmecorp.com "))
	assert.Equal(t, "wwwcorp.com", miner.NormalizeDomain("wwwcorp.com"))
}

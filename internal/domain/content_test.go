package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePublishedAtStampsOnFirstPublish(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	got := ResolvePublishedAt(nil, false, true, now)
	require.NotNil(t, got)
	assert.Equal(t, now, *got)
}

func TestResolvePublishedAtNeverOverwrites(t *testing.T) {
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(90 * 24 * time.Hour)

	// unpublish keeps the original timestamp
	got := ResolvePublishedAt(&first, true, false, later)
	require.NotNil(t, got)
	assert.Equal(t, first, *got)

	// republish does not refresh it either
	got = ResolvePublishedAt(&first, false, true, later)
	require.NotNil(t, got)
	assert.Equal(t, first, *got)
}

func TestResolvePublishedAtStaysNilForDrafts(t *testing.T) {
	now := time.Now()
	assert.Nil(t, ResolvePublishedAt(nil, false, false, now))
	assert.Nil(t, ResolvePublishedAt(nil, true, true, now))
}

package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
)

func TestMemoryStoreLatestEmpty(t *testing.T) {
	s := NewMemoryStore(5, 0)

	_, err := s.Latest()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRetentionByCount(t *testing.T) {
	s := NewMemoryStore(2, 0)

	first := s.Save(solar.BatchResult{Total: 1})
	second := s.Save(solar.BatchResult{Total: 2})
	third := s.Save(solar.BatchResult{Total: 3})

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, third.ID, latest.ID)
	assert.Equal(t, 3, latest.Result.Total)

	_, err = s.Get(first.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Result.Total)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestMemoryStoreRetentionByAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(0, time.Hour)
	s.now = func() time.Time { return now }

	old := s.Save(solar.BatchResult{Total: 1})

	now = now.Add(2 * time.Hour)
	fresh := s.Save(solar.BatchResult{Total: 2})

	_, err := s.Get(old.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, latest.ID)
	assert.Len(t, s.List(), 1)
}

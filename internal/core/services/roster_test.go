package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
)

func TestRosterList_SortedByName(t *testing.T) {
	svc := NewRosterService(newMemStore(domain.Roster{
		"Zed":  {Name: "Zed", ID: 3},
		"Anna": {Name: "Anna", ID: 1},
		"Mike": {Name: "Mike", ID: 2},
	}))

	records, err := svc.List()

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Anna", records[0].Name)
	assert.Equal(t, "Mike", records[1].Name)
	assert.Equal(t, "Zed", records[2].Name)
}

func TestRosterFind_ExactThenPrefix(t *testing.T) {
	svc := NewRosterService(newMemStore(domain.Roster{
		"January Hakomairos": {Name: "January Hakomairos", ID: 101},
	}))

	rec, err := svc.Find("Jan")

	require.NoError(t, err)
	assert.Equal(t, "January Hakomairos", rec.Name)
}

func TestRosterFind_NotFound(t *testing.T) {
	svc := NewRosterService(newMemStore(nil))

	_, err := svc.Find("Nobody")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Nobody")
}

func TestRosterUpsert_InsertAndReplace(t *testing.T) {
	store := newMemStore(nil)
	svc := NewRosterService(store)

	require.NoError(t, svc.Upsert(domain.CharacterRecord{Name: "Anna", ID: 1, RefreshToken: "old"}))
	require.NoError(t, svc.Upsert(domain.CharacterRecord{Name: "Anna", ID: 1, RefreshToken: "new"}))

	rec, err := svc.Find("Anna")
	require.NoError(t, err)
	assert.Equal(t, "new", rec.RefreshToken)

	records, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

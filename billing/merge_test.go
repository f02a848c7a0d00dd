package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   uuid.UUID
	Done bool
}

func TestReplaceByID(t *testing.T) {
	a := record{ID: uuid.New()}
	b := record{ID: uuid.New()}
	c := record{ID: uuid.New()}
	list := []record{a, b, c}

	updated := record{ID: b.ID, Done: true}
	merged := ReplaceByID(list, updated, func(r record) bool { return r.ID == updated.ID })

	require.Len(t, merged, 3)
	assert.Equal(t, a, merged[0])
	assert.Equal(t, updated, merged[1])
	assert.Equal(t, c, merged[2])

	// Input list untouched.
	assert.False(t, list[1].Done)
}

func TestReplaceByIDNoMatch(t *testing.T) {
	list := []record{{ID: uuid.New()}, {ID: uuid.New()}}
	stranger := record{ID: uuid.New(), Done: true}

	merged := ReplaceByID(list, stranger, func(r record) bool { return r.ID == stranger.ID })
	assert.Equal(t, list, merged)
}

func TestReplaceByIDEmptyList(t *testing.T) {
	merged := ReplaceByID(nil, record{ID: uuid.New()}, func(record) bool { return true })
	assert.Empty(t, merged)
}

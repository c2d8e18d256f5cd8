package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUnrestricted(t *testing.T) {
	sql, args := Search("", "title", "caption").build("photos")

	assert.Equal(t, "SELECT doc FROM photos ORDER BY created_at DESC", sql)
	assert.Empty(t, args)
}

func TestSearchBlankTermIsUnrestricted(t *testing.T) {
	sql, args := Search("   ", "title").build("photos")

	assert.Equal(t, "SELECT doc FROM photos ORDER BY created_at DESC", sql)
	assert.Empty(t, args)
}

func TestSearchSubstringPredicate(t *testing.T) {
	sql, args := Search("Sun", "title", "caption", "location").build("photos")

	assert.Equal(t,
		`SELECT doc FROM photos WHERE (lower(doc->>$2) LIKE $1 ESCAPE '\' OR lower(doc->>$3) LIKE $1 ESCAPE '\' OR lower(doc->>$4) LIKE $1 ESCAPE '\') ORDER BY created_at DESC`,
		sql)
	require.Len(t, args, 4)
	assert.Equal(t, "%sun%", args[0], "term is lower-cased and wrapped for containment")
	assert.Equal(t, []any{"title", "caption", "location"}, args[1:])
}

func TestSearchEscapesLikeWildcards(t *testing.T) {
	_, args := Search(`50%_off\`, "title").build("photos")

	require.NotEmpty(t, args)
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}

func TestByPartition(t *testing.T) {
	sql, args := ByPartition("photo-1").build("comments")

	assert.Equal(t,
		"SELECT doc FROM comments WHERE partition_key = $1 ORDER BY created_at DESC",
		sql)
	assert.Equal(t, []any{"photo-1"}, args)
}

func TestWithLimit(t *testing.T) {
	sql, args := ByPartition("photo-1").WithLimit(20).build("ratings")

	assert.Equal(t,
		"SELECT doc FROM ratings WHERE partition_key = $1 ORDER BY created_at DESC LIMIT $2",
		sql)
	assert.Equal(t, []any{"photo-1", 20}, args)
}

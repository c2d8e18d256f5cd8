package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyPreservesExtension(t *testing.T) {
	key := objectKey("holiday.JPG")

	assert.True(t, strings.HasSuffix(key, ".JPG"))
	_, err := uuid.Parse(strings.TrimSuffix(key, ".JPG"))
	require.NoError(t, err, "key prefix should be a uuid")
}

func TestObjectKeyDefaultsExtension(t *testing.T) {
	assert.True(t, strings.HasSuffix(objectKey("raw-upload"), ".bin"))
}

func TestObjectKeyIsUniquePerCall(t *testing.T) {
	assert.NotEqual(t, objectKey("a.png"), objectKey("a.png"))
}

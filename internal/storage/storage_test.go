package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestObjectKey_Format(t *testing.T) {
	key := ObjectKey("wrist-scan.png")
	require.True(t, strings.HasSuffix(key, "-wrist-scan.jpg"), "key %q", key)

	// prefix is a parseable uuid
	prefix := key[:36]
	_, err := uuid.Parse(prefix)
	require.NoError(t, err)
}

func TestObjectKey_AlwaysUnique(t *testing.T) {
	a := ObjectKey("same.png")
	b := ObjectKey("same.png")
	require.NotEqual(t, a, b)
}

func TestObjectKey_SanitizesHostileNames(t *testing.T) {
	key := ObjectKey("../../etc/passwd")
	require.NotContains(t, key, "/")
	require.NotContains(t, key, "..")
	require.True(t, strings.HasSuffix(key, ".jpg"))

	key = ObjectKey("ឆ្អឹងដៃ x-ray.jpeg") // non-latin characters collapse to dashes
	require.True(t, strings.HasSuffix(key, ".jpg"))
	for _, r := range key {
		require.True(t, r < 128, "non-ascii rune %q in key %q", r, key)
	}
}

func TestObjectKey_EmptyAndExtensionOnlyNames(t *testing.T) {
	require.True(t, strings.HasSuffix(ObjectKey(""), "-image.jpg"))
	require.True(t, strings.HasSuffix(ObjectKey(".png"), "-image.jpg"))
}

func TestObjectKey_CapsLongNames(t *testing.T) {
	long := strings.Repeat("a", 300) + ".png"
	key := ObjectKey(long)
	// uuid (36) + dash + capped base (64) + ".jpg"
	require.LessOrEqual(t, len(key), 36+1+64+4)
}

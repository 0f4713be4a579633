package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("**жирный** текст"))
	assert.Contains(t, out, "<strong>жирный</strong>")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := string(RenderMarkdown(`привет <script>alert("x")</script>`))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "привет")
}

func TestLazyLoadImages(t *testing.T) {
	out := string(LazyLoadImages(`<p><img src="https://example.com/a.png"></p>`))
	assert.Contains(t, out, `loading="lazy"`)
	assert.Contains(t, out, `referrerpolicy="no-referrer"`)
}

func TestStringToUint(t *testing.T) {
	assert.Equal(t, uint(42), StringToUint("42"))
	assert.Equal(t, uint(0), StringToUint("-1"))
	assert.Equal(t, uint(0), StringToUint("abc"))
	assert.Equal(t, uint(0), StringToUint(""))
}

func TestPageCache(t *testing.T) {
	c := GetCache()
	c.Purge()

	c.Set("key", "value", time.Minute)
	assert.Equal(t, "value", c.Get("key"))

	c.Delete("key")
	assert.Nil(t, c.Get("key"))

	// An entry with an already-elapsed TTL reads as missing
	c.Set("expired", "value", -time.Second)
	assert.Nil(t, c.Get("expired"))

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Purge()
	assert.Nil(t, c.Get("a"))
	assert.Nil(t, c.Get("b"))
}

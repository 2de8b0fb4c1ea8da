package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func TestAddThenPop(t *testing.T) {
	store := NewStore("test-secret", false)

	c, w := newContext()
	require.NoError(t, store.Add(c, Success, "Building added"))
	require.NoError(t, store.Add(c, Warning, "Zone not found"))

	// each Add saves the cookie again; the last one carries both notices
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	next, _ := newContext(cookies[len(cookies)-1])
	notices := store.Pop(next)

	assert.Equal(t, []Notice{
		{Kind: Success, Message: "Building added"},
		{Kind: Warning, Message: "Zone not found"},
	}, notices)
}

func TestPopClearsNotices(t *testing.T) {
	store := NewStore("test-secret", false)

	c, w := newContext()
	require.NoError(t, store.Add(c, Info, "once"))

	second, w2 := newContext(w.Result().Cookies()...)
	assert.Len(t, store.Pop(second), 1)

	third, _ := newContext(w2.Result().Cookies()...)
	assert.Empty(t, store.Pop(third))
}

func TestPopWithoutCookie(t *testing.T) {
	store := NewStore("test-secret", false)
	c, _ := newContext()
	assert.Nil(t, store.Pop(c))
}

func TestPopRejectsForeignSignature(t *testing.T) {
	c, w := newContext()
	require.NoError(t, NewStore("one-secret", false).Add(c, Danger, "boom"))

	next, _ := newContext(w.Result().Cookies()...)
	assert.Nil(t, NewStore("other-secret", false).Pop(next))
}

func TestAddTruncatesLongMessages(t *testing.T) {
	store := NewStore("test-secret", false)

	long := "ERROR: duplicate key value violates unique constraint " + strings.Repeat("é", 5000)
	c, w := newContext()
	require.NoError(t, store.Add(c, Danger, long))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Less(t, len(cookies[len(cookies)-1].Value), 4096)

	next, _ := newContext(cookies[len(cookies)-1])
	notices := store.Pop(next)
	require.Len(t, notices, 1)
	assert.Equal(t, MaxMessageRunes, utf8.RuneCountInString(notices[0].Message))
	assert.True(t, strings.HasPrefix(notices[0].Message, "ERROR: duplicate key"))
	assert.True(t, strings.HasSuffix(notices[0].Message, "…"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefghij", truncate("abcdefghij", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
	assert.Equal(t, "éé…", truncate("éééééé", 3))
}

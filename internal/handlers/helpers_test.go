package handlers_test

// Shared fixtures for the handler tests: every case gets its own in-memory
// database and an httptest server running the real router, and talks to it
// through cookie-jar clients the way a browser would.

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"newsline/internal/db"
	"newsline/internal/middleware"
	"newsline/internal/models"
	"newsline/internal/router"
	"newsline/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

const testPassword = "test-password"

var testDBSeq atomic.Int64

type testEnv struct {
	t   *testing.T
	srv *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A uniquely named shared-cache database keeps each test isolated while
	// letting GORM open more than one connection to it.
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	require.NoError(t, db.Open(sqlite.Open(dsn)))

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// Rendered pages must not leak between tests
	utils.GetCache().Purge()

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("newsline_session", store))
	r.HTMLRender = router.LoadTemplates("../../web/templates")
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)

	// The cookie store marks session cookies Secure, so the fixture must
	// serve HTTPS for the browser-like cookie jar to retain them.
	srv := httptest.NewTLSServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{t: t, srv: srv}
}

// client returns a fresh browser-like client: it keeps session cookies but
// does not follow redirects, so tests can assert on Location headers.
func (e *testEnv) client() *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(e.t, err)
	return &http.Client{
		Jar:       jar,
		Transport: e.srv.Client().Transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (e *testEnv) get(c *http.Client, path string) (*http.Response, string) {
	e.t.Helper()
	resp, err := c.Get(e.srv.URL + path)
	require.NoError(e.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return resp, string(body)
}

func (e *testEnv) postForm(c *http.Client, path string, data url.Values) (*http.Response, string) {
	e.t.Helper()
	resp, err := c.PostForm(e.srv.URL+path, data)
	require.NoError(e.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return resp, string(body)
}

func (e *testEnv) createUser(username string) *models.User {
	e.t.Helper()
	hash, err := utils.HashPassword(testPassword)
	require.NoError(e.t, err)

	user := &models.User{Username: username, Password: hash}
	require.NoError(e.t, db.DB.Create(user).Error)
	return user
}

// loginAs signs the client in through the real login form.
func (e *testEnv) loginAs(c *http.Client, user *models.User) {
	e.t.Helper()
	resp, _ := e.postForm(c, "/login", url.Values{
		"username": {user.Username},
		"password": {testPassword},
	})
	require.Equal(e.t, http.StatusFound, resp.StatusCode, "login failed for %s", user.Username)
}

func (e *testEnv) createNews(title string, date time.Time) *models.News {
	e.t.Helper()
	news := &models.News{Title: title, Text: "Просто текст.", Date: date}
	require.NoError(e.t, db.DB.Create(news).Error)
	return news
}

func (e *testEnv) createComment(news *models.News, author *models.User, text string) *models.Comment {
	e.t.Helper()
	comment := &models.Comment{NewsID: news.ID, UserID: author.ID, Text: text}
	require.NoError(e.t, db.DB.Create(comment).Error)
	return comment
}

// setCommentCreated backdates (or forward-dates) a comment to simulate a
// different creation time.
func (e *testEnv) setCommentCreated(comment *models.Comment, ts time.Time) {
	e.t.Helper()
	require.NoError(e.t, db.DB.Model(comment).Update("created_at", ts).Error)
	comment.CreatedAt = ts
}

func (e *testEnv) commentCount() int64 {
	e.t.Helper()
	var count int64
	require.NoError(e.t, db.DB.Model(&models.Comment{}).Count(&count).Error)
	return count
}

func (e *testEnv) reloadComment(comment *models.Comment) *models.Comment {
	e.t.Helper()
	var fresh models.Comment
	require.NoError(e.t, db.DB.First(&fresh, comment.ID).Error)
	return &fresh
}

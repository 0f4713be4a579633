package handlers

import (
	"html/template"
	"net/http"
	"time"

	"newsline/internal/config"
	"newsline/internal/db"
	"newsline/internal/models"
	"newsline/internal/utils"

	"github.com/gin-gonic/gin"
)

const homeCacheKey = "news:home"

type NewsHandler struct {
	homeCount int
}

func NewNewsHandler() *NewsHandler {
	return &NewsHandler{
		homeCount: config.NewsCountOnHomePage(),
	}
}

// recentNews returns at most limit items, most recent publication date
// first. Ties on the date fall back to the newer row.
func recentNews(limit int) ([]models.News, error) {
	var items []models.News
	err := db.DB.Order("date DESC, id DESC").Limit(limit).Find(&items).Error
	return items, err
}

// newsComments returns all comments of one news item, oldest first.
func newsComments(newsID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("User").
		Where("news_id = ?", newsID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// fillCommentCounts batch-loads the comment count for a page of news items.
func fillCommentCounts(items []models.News) map[uint]int64 {
	counts := make(map[uint]int64, len(items))
	if len(items) == 0 {
		return counts
	}

	ids := make([]uint, len(items))
	for i, n := range items {
		ids[i] = n.ID
	}

	type countRow struct {
		NewsID uint
		Count  int64
	}
	var rows []countRow
	db.DB.Model(&models.Comment{}).
		Select("news_id, COUNT(*) as count").
		Where("news_id IN ?", ids).
		Group("news_id").
		Scan(&rows)

	for _, r := range rows {
		counts[r.NewsID] = r.Count
	}
	return counts
}

// newsItemView is a news row plus presentation-only fields.
type newsItemView struct {
	models.News
	CommentCount int64
}

func (h *NewsHandler) Home(c *gin.Context) {
	// Only the item views are cached; Render adds per-request variables on
	// top, so the cached value must stay request-independent.
	if cached := utils.GetCache().Get(homeCacheKey); cached != nil {
		if views, ok := cached.([]newsItemView); ok {
			Render(c, http.StatusOK, "news/list.html", gin.H{"Title": "Новости", "News": views})
			return
		}
	}

	items, err := recentNews(h.homeCount)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Не удалось загрузить новости")
		return
	}

	counts := fillCommentCounts(items)
	views := make([]newsItemView, len(items))
	for i, n := range items {
		views[i] = newsItemView{News: n, CommentCount: counts[n.ID]}
	}

	utils.GetCache().Set(homeCacheKey, views, time.Minute)

	Render(c, http.StatusOK, "news/list.html", gin.H{"Title": "Новости", "News": views})
}

// commentView is a comment plus its rendered text and position on the page.
type commentView struct {
	models.Comment
	TextHTML template.HTML
	Floor    int
}

func (h *NewsHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var news models.News
	if id == 0 || db.DB.First(&news, id).Error != nil {
		RenderError(c, http.StatusNotFound, "Новость не найдена")
		return
	}

	renderNewsDetail(c, &news, http.StatusOK, "", "")
}

// renderNewsDetail shows a news page with its comments. The comment form is
// only present for logged-in visitors; formError and formText carry a failed
// submission back onto the page.
func renderNewsDetail(c *gin.Context, news *models.News, status int, formError, formText string) {
	comments, err := newsComments(news.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Не удалось загрузить комментарии")
		return
	}

	views := make([]commentView, len(comments))
	for i, com := range comments {
		views[i] = commentView{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
			Floor:    i + 1,
		}
	}

	Render(c, status, "news/detail.html", gin.H{
		"Title":     news.Title,
		"News":      news,
		"NewsText":  utils.RenderMarkdown(news.Text),
		"Comments":  views,
		"FormError": formError,
		"FormText":  formText,
	})
}

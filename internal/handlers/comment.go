package handlers

import (
	"fmt"
	"net/http"

	"newsline/internal/db"
	"newsline/internal/forms"
	"newsline/internal/middleware"
	"newsline/internal/models"
	"newsline/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// commentsAnchor points back to the comment block of the parent news page;
// every successful mutation redirects there.
func commentsAnchor(newsID uint) string {
	return fmt.Sprintf("/news/%d#comments", newsID)
}

// Create stores a new comment under a news item. Text with forbidden words
// is rejected with the fixed warning and nothing is written.
func (h *CommentHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	newsID := utils.StringToUint(c.Param("id"))

	var news models.News
	if newsID == 0 || db.DB.First(&news, newsID).Error != nil {
		RenderError(c, http.StatusNotFound, "Новость не найдена")
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		renderNewsDetail(c, &news, http.StatusBadRequest, "Введите текст комментария", "")
		return
	}

	if err := forms.ValidateCommentText(form.Text); err != nil {
		renderNewsDetail(c, &news, http.StatusOK, err.Error(), form.Text)
		return
	}

	comment := models.Comment{
		NewsID: news.ID,
		UserID: user.ID,
		Text:   form.Text,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		renderNewsDetail(c, &news, http.StatusInternalServerError, "Не удалось сохранить комментарий", form.Text)
		return
	}

	utils.GetCache().Delete(homeCacheKey)

	c.Redirect(http.StatusFound, commentsAnchor(news.ID))
}

// loadOwnComment fetches a comment for mutation. A missing comment and a
// comment owned by someone else produce the same 404, so the response does
// not reveal whether the resource exists.
func loadOwnComment(c *gin.Context) (*models.Comment, bool) {
	user := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if id == 0 || db.DB.First(&comment, id).Error != nil {
		RenderError(c, http.StatusNotFound, "Комментарий не найден")
		return nil, false
	}

	if !comment.IsAuthor(user) {
		RenderError(c, http.StatusNotFound, "Комментарий не найден")
		return nil, false
	}
	return &comment, true
}

func (h *CommentHandler) ShowEdit(c *gin.Context) {
	comment, ok := loadOwnComment(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "comment/edit.html", gin.H{
		"Title":    "Редактировать комментарий",
		"Comment":  comment,
		"FormText": comment.Text,
	})
}

// Edit updates the text of the caller's own comment. The author and the news
// reference never change.
func (h *CommentHandler) Edit(c *gin.Context) {
	comment, ok := loadOwnComment(c)
	if !ok {
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "comment/edit.html", gin.H{
			"Title":     "Редактировать комментарий",
			"Comment":   comment,
			"FormError": "Введите текст комментария",
			"FormText":  "",
		})
		return
	}

	if err := forms.ValidateCommentText(form.Text); err != nil {
		Render(c, http.StatusOK, "comment/edit.html", gin.H{
			"Title":     "Редактировать комментарий",
			"Comment":   comment,
			"FormError": err.Error(),
			"FormText":  form.Text,
		})
		return
	}

	if err := db.DB.Model(comment).Update("text", form.Text).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Не удалось сохранить комментарий")
		return
	}

	c.Redirect(http.StatusFound, commentsAnchor(comment.NewsID))
}

// ShowDelete asks for confirmation before removing a comment.
func (h *CommentHandler) ShowDelete(c *gin.Context) {
	comment, ok := loadOwnComment(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "comment/delete.html", gin.H{
		"Title":   "Удалить комментарий",
		"Comment": comment,
	})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	comment, ok := loadOwnComment(c)
	if !ok {
		return
	}

	if err := db.DB.Delete(comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Не удалось удалить комментарий")
		return
	}

	utils.GetCache().Delete(homeCacheKey)

	c.Redirect(http.StatusFound, commentsAnchor(comment.NewsID))
}

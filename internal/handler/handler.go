package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/service"
	"github.com/hanif-mianjee/news-aggregator/internal/store"
)

type Handler struct {
	db          *gorm.DB
	articles    *store.ArticleStore
	preferences *store.PreferenceStore
	feed        *service.FeedService
	auth        *service.AuthService
	ingest      *service.IngestService
	status      *service.StatusService
	scheduler   interface {
		GetNextFetchTime() time.Time
	}
}

func NewHandler(db *gorm.DB, cfg *config.Config, ingest *service.IngestService) *Handler {
	articles := store.NewArticleStore(db)
	preferences := store.NewPreferenceStore(db)
	return &Handler{
		db:          db,
		articles:    articles,
		preferences: preferences,
		feed:        service.NewFeedService(articles, preferences),
		auth:        service.NewAuthService(db, cfg.Auth),
		ingest:      ingest,
		status:      service.NewStatusService(db),
	}
}

// SetScheduler 设置调度器引用
func (h *Handler) SetScheduler(scheduler interface {
	GetNextFetchTime() time.Time
}) {
	h.scheduler = scheduler
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// Auth
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		// Articles
		api.GET("/articles", h.ListArticles)
		api.GET("/articles/search", h.SearchArticles)
		api.GET("/articles/:id", h.GetArticle)

		// Status
		api.GET("/status", h.GetStatus)
	}

	authed := api.Group("", AuthRequired(h.auth))
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/user", h.CurrentUser)
		authed.GET("/user/news-feed", h.GetNewsFeed)
		authed.POST("/user/preferences", h.SetPreferences)
		authed.GET("/user/preferences", h.GetPreferences)
		authed.POST("/fetch", h.FetchArticles)
	}
}

// ===== Auth相关 =====

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation Error",
			"errors":  err.Error(),
		})
		return
	}

	if _, err := h.auth.Register(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Validation Error",
				"errors":  gin.H{"email": err.Error()},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation Error",
			"errors":  err.Error(),
		})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid login credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Logout(c *gin.Context) {
	// token无状态,客户端丢弃即失效
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.auth.GetUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ===== Article相关 =====

func (h *Handler) ListArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.articles.List(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) SearchArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := store.SearchFilter{
		Keyword:   c.Query("keyword"),
		Category:  c.Query("category"),
		Source:    c.Query("source"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	result, err := h.articles.Search(filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	article, err := h.articles.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

// ===== 个性化订阅相关 =====

func (h *Handler) GetNewsFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.feed.GetNewsFeed(currentUserID(c), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type preferencesRequest struct {
	Sources    []string `json:"sources"`
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
}

func (h *Handler) SetPreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation Error",
			"errors":  err.Error(),
		})
		return
	}

	_, err := h.preferences.Upsert(currentUserID(c), store.PreferenceInput{
		Sources:    req.Sources,
		Categories: req.Categories,
		Authors:    req.Authors,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmptyPreferences) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "At least one preference (sources, categories, or authors) must be provided.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated successfully"})
}

func (h *Handler) GetPreferences(c *gin.Context) {
	preference, err := h.preferences.GetByUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 没设置过偏好时返回null,与客户端约定一致
	c.JSON(http.StatusOK, preference)
}

// ===== 抓取与状态 =====

func (h *Handler) FetchArticles(c *gin.Context) {
	go h.ingest.Run(context.Background())
	c.JSON(http.StatusOK, gin.H{"message": "fetching started"})
}

func (h *Handler) GetStatus(c *gin.Context) {
	status, err := h.status.GetSystemStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 添加定时任务信息
	if h.scheduler != nil {
		status.NextFetchTime = h.scheduler.GetNextFetchTime()
	}

	c.JSON(http.StatusOK, status)
}

package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

// PerPage 固定每页10条
const PerPage = 10

type ArticleStore struct {
	db *gorm.DB
}

func NewArticleStore(db *gorm.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Page 分页结果,字段结构与客户端约定保持一致
type Page struct {
	CurrentPage int             `json:"current_page"`
	Data        []model.Article `json:"data"`
	Total       int64           `json:"total"`
	PerPage     int             `json:"per_page"`
	LastPage    int             `json:"last_page"`
}

// SearchFilter 搜索条件,空字段不参与过滤
type SearchFilter struct {
	Keyword   string
	Category  string
	Source    string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// Upsert 按标题更新或创建,同名文章的其余字段全部覆盖
func (s *ArticleStore) Upsert(candidate *model.Article) error {
	article := model.Article{Title: candidate.Title}
	return s.db.Where("title = ?", candidate.Title).
		Assign(map[string]interface{}{
			"content":      candidate.Content,
			"author":       candidate.Author,
			"category":     candidate.Category,
			"source":       candidate.Source,
			"published_at": candidate.PublishedAt,
		}).
		FirstOrCreate(&article).Error
}

// GetByID 按ID查询,不存在时返回 gorm.ErrRecordNotFound
func (s *ArticleStore) GetByID(id uint) (*model.Article, error) {
	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List 全量分页
func (s *ArticleStore) List(page int) (*Page, error) {
	return s.paginate(s.db.Model(&model.Article{}), page)
}

// Search 按关键词/分类/来源/发布时间区间组合过滤后分页
func (s *ArticleStore) Search(filter SearchFilter, page int) (*Page, error) {
	query := s.db.Model(&model.Article{})

	// 关键词同时匹配标题和正文
	if filter.Keyword != "" {
		keyword := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", keyword, keyword)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	// 起止日期都给出时才启用区间过滤,结束日期含当天
	if filter.StartDate != "" && filter.EndDate != "" {
		start, errStart := time.Parse("2006-01-02", filter.StartDate)
		end, errEnd := time.Parse("2006-01-02", filter.EndDate)
		if errStart == nil && errEnd == nil {
			end = end.Add(24*time.Hour - time.Second)
			query = query.Where("published_at BETWEEN ? AND ?", start, end)
		}
	}

	return s.paginate(query, page)
}

// FilterByMembership 按来源/分类/作者的集合匹配过滤,三组条件之间取OR
func (s *ArticleStore) FilterByMembership(sources, categories, authors []string, page int) (*Page, error) {
	query := s.db.Model(&model.Article{})

	if len(sources) > 0 {
		query = query.Or("source IN ?", sources)
	}

	if len(categories) > 0 {
		query = query.Or("category IN ?", categories)
	}

	if len(authors) > 0 {
		query = query.Or("author IN ?", authors)
	}

	return s.paginate(query, page)
}

func (s *ArticleStore) paginate(query *gorm.DB, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var articles []model.Article
	if err := query.Offset((page - 1) * PerPage).Limit(PerPage).Find(&articles).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + PerPage - 1) / PerPage)
	if lastPage < 1 {
		lastPage = 1
	}

	return &Page{
		CurrentPage: page,
		Data:        articles,
		Total:       total,
		PerPage:     PerPage,
		LastPage:    lastPage,
	}, nil
}

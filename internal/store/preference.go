package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

// ErrEmptyPreferences 三项偏好都没提供时返回
var ErrEmptyPreferences = errors.New("at least one preference (sources, categories, or authors) must be provided")

type PreferenceStore struct {
	db *gorm.DB
}

func NewPreferenceStore(db *gorm.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// PreferenceInput 更新请求,nil表示该字段未提交
type PreferenceInput struct {
	Sources    []string
	Categories []string
	Authors    []string
}

// Upsert 按user_id更新或创建偏好,未提交的字段保留原值
func (s *PreferenceStore) Upsert(userID uint, input PreferenceInput) (*model.UserPreference, error) {
	if len(input.Sources) == 0 && len(input.Categories) == 0 && len(input.Authors) == 0 {
		return nil, ErrEmptyPreferences
	}

	updates := map[string]interface{}{}
	if len(input.Sources) > 0 {
		updates["sources"] = model.StringList(input.Sources)
	}
	if len(input.Categories) > 0 {
		updates["categories"] = model.StringList(input.Categories)
	}
	if len(input.Authors) > 0 {
		updates["authors"] = model.StringList(input.Authors)
	}

	preference := model.UserPreference{UserID: userID}
	err := s.db.Where("user_id = ?", userID).
		Assign(updates).
		FirstOrCreate(&preference).Error
	if err != nil {
		return nil, err
	}

	return &preference, nil
}

// GetByUser 查询用户偏好,没有记录时返回nil而不是错误
func (s *PreferenceStore) GetByUser(userID uint) (*model.UserPreference, error) {
	var preference model.UserPreference
	err := s.db.Where("user_id = ?", userID).First(&preference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &preference, nil
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList 以JSON数组形式存储在text列的字符串列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("无法将 %T 转换为 StringList", value)
	}
	return json.Unmarshal(data, l)
}

// UserPreference 用户的个性化订阅偏好,每个用户最多一条记录
type UserPreference struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Sources    StringList `gorm:"type:text" json:"sources"`
	Categories StringList `gorm:"type:text" json:"categories"`
	Authors    StringList `gorm:"type:text" json:"authors"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

package provider

import (
	"time"

	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

// 各来源发布时间的已知格式,已符合统一格式的原样通过
var timeLayouts = []string{
	model.TimeFormat,
	time.RFC3339,
	"2006-01-02T15:04:05.999Z07:00",
	"2006-01-02",
}

// parsePublished 把来源自带的时间字符串归一化为统一时间,解析失败时退回当前时间
func parsePublished(raw string) model.LocalTime {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return model.NewLocalTime(t)
		}
	}
	return model.NewLocalTime(time.Now())
}

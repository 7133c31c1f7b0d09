// Package feed 提供 RSS/Atom 订阅源的抓取、归一化和汇总功能。
package feed

import "time"

// Source 订阅源配置。Labels 为该源下所有文章共享的标签列表。
type Source struct {
	URL    string   `yaml:"url"`
	Name   string   `yaml:"name"`
	Labels []string `yaml:"labels"`
}

// Article 归一化后的文章条目。
// Labels 直接引用 Source.Labels，不做拷贝；Image 为空表示没有配图。
type Article struct {
	Title     string
	Link      string
	Source    string
	Labels    []string
	Published time.Time
	Summary   string
	Image     string
}

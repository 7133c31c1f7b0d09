package feed

import (
	"context"
	"sort"
	"time"

	"github.com/shu1007/github-rss/internal/logger"
)

// Collector 按顺序抓取所有订阅源并汇总归一化后的文章。
type Collector struct {
	fetcher *Fetcher
}

// NewCollector 创建文章收集器。
func NewCollector(fetcher *Fetcher) *Collector {
	return &Collector{fetcher: fetcher}
}

// Collect 依次抓取 sources 中的每个订阅源，丢弃 cutoff 之前的文章，
// 返回按发布时间倒序排列的结果（同一时间保持原有顺序）。
// 单个订阅源抓取失败只记录日志并跳过，不会中断整个流程。
func (c *Collector) Collect(ctx context.Context, sources []Source, cutoff time.Time) []Article {
	var articles []Article
	for _, src := range sources {
		parsed, err := c.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			logger.Warnf("[feed] 抓取 %s 失败: %v", src.URL, err)
			continue
		}
		for _, item := range parsed.Items {
			a, ok := newArticle(item, src.Name, src.Labels)
			if !ok || a.Published.Before(cutoff) {
				continue
			}
			articles = append(articles, a)
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
	return articles
}

// AllLabels 返回所有文章标签去重后的字典序列表。
func AllLabels(articles []Article) []string {
	set := make(map[string]struct{})
	for _, a := range articles {
		for _, l := range a.Labels {
			set[l] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// AllSources 返回所有文章来源去重后的字典序列表。
func AllSources(articles []Article) []string {
	set := make(map[string]struct{})
	for _, a := range articles {
		set[a.Source] = struct{}{}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package feed

import (
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

const maxSummaryLen = 200 // 摘要最大字符数

var (
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	inlineImgRe = regexp.MustCompile(`<img[^>]+src=["']([^"']+)`)
)

// newArticle 将一条 gofeed 条目归一化为 Article。
// 条目既没有发布时间也没有更新时间时返回 false，该条目被丢弃。
func newArticle(item *gofeed.Item, source string, labels []string) (Article, bool) {
	published := item.PublishedParsed
	if published == nil {
		published = item.UpdatedParsed
	}
	if published == nil {
		return Article{}, false
	}

	title := item.Title
	if title == "" {
		title = "(no title)"
	}
	link := item.Link
	if link == "" {
		link = "#"
	}

	summary := truncate(strings.TrimSpace(stripHTML(item.Description)), maxSummaryLen)

	return Article{
		Title:     title,
		Link:      link,
		Source:    source,
		Labels:    labels,
		Published: *published,
		Summary:   summary,
		Image:     extractImage(item),
	}, true
}

// extractImage 按优先级从条目中提取配图 URL，找不到返回空串。
// 优先级：图片类型的 enclosure > media:thumbnail > media:content > 正文内联 <img>。
func extractImage(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, mt := range media["thumbnail"] {
			if url := mt.Attrs["url"]; url != "" {
				return url
			}
		}
		for _, mc := range media["content"] {
			if mc.Attrs["medium"] == "image" || strings.HasPrefix(mc.Attrs["type"], "image/") {
				return mc.Attrs["url"]
			}
		}
	}

	// 最后在摘要和正文里找第一个内联 <img>，可能误选跟踪像素之类的无关图片
	for _, text := range []string{item.Description, item.Content} {
		if m := inlineImgRe.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}

	return ""
}

// stripHTML 剥离 HTML 标签，只保留纯文本。不解码 HTML 实体。
func stripHTML(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// truncate 截断字符串到指定字符数（按 UTF-8 字符计算），超长时追加 "..."。
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

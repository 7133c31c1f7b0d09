package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

func TestNewArticleNoTimestamp(t *testing.T) {
	item := &gofeed.Item{Title: "无时间戳的文章", Link: "https://example.com/1"}
	if _, ok := newArticle(item, "Test", nil); ok {
		t.Fatal("没有发布时间和更新时间的条目应被丢弃")
	}
}

func TestNewArticleUpdatedFallback(t *testing.T) {
	updated := time.Date(2026, 2, 19, 9, 0, 0, 0, time.UTC)
	item := &gofeed.Item{Title: "只有更新时间", UpdatedParsed: &updated}

	a, ok := newArticle(item, "Test", nil)
	if !ok {
		t.Fatal("有更新时间的条目不应被丢弃")
	}
	if !a.Published.Equal(updated) {
		t.Errorf("发布时间应回退到更新时间: %v", a.Published)
	}
}

func TestNewArticleFallbacks(t *testing.T) {
	published := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)
	item := &gofeed.Item{PublishedParsed: &published}

	a, ok := newArticle(item, "Test", nil)
	if !ok {
		t.Fatal("条目不应被丢弃")
	}
	if a.Title != "(no title)" {
		t.Errorf("缺失标题应使用占位符: %q", a.Title)
	}
	if a.Link != "#" {
		t.Errorf("缺失链接应使用占位符: %q", a.Link)
	}
}

func TestNewArticleFields(t *testing.T) {
	published := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)
	labels := []string{"tech", "news"}
	item := &gofeed.Item{
		Title:           "一篇文章",
		Link:            "https://example.com/post/1",
		Description:     "<p>这是 <b>摘要</b> 正文。</p>",
		PublishedParsed: &published,
	}

	a, ok := newArticle(item, "Example Blog", labels)
	if !ok {
		t.Fatal("条目不应被丢弃")
	}
	if a.Source != "Example Blog" {
		t.Errorf("Source 不匹配: %q", a.Source)
	}
	if a.Summary != "这是 摘要 正文。" {
		t.Errorf("摘要应剥离 HTML 标签: %q", a.Summary)
	}
	if len(a.Labels) != 2 || a.Labels[0] != "tech" {
		t.Errorf("Labels 不匹配: %v", a.Labels)
	}
}

func TestNewArticleSummaryTruncation(t *testing.T) {
	published := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)
	long := strings.Repeat("很长的摘要文字。", 50)
	item := &gofeed.Item{Title: "长摘要", Description: long, PublishedParsed: &published}

	a, _ := newArticle(item, "Test", nil)
	runes := []rune(a.Summary)
	// 200 字符 + "..." = 203
	if len(runes) != 203 {
		t.Fatalf("截断后应为 203 字符，实际 %d", len(runes))
	}
	if !strings.HasSuffix(a.Summary, "...") {
		t.Errorf("截断后应以 ... 结尾: %q", a.Summary)
	}
	if !strings.HasPrefix(long, string(runes[:200])) {
		t.Error("截断结果应是原文的前缀")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<p>Hello <b>World</b></p>", "Hello World"},
		{"plain text", "plain text"},
		{"<div class=\"x\">带属性</div>", "带属性"},
		// HTML 实体保持原样，不做解码
		{"&amp; &lt;", "&amp; &lt;"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := stripHTML(tc.input); got != tc.expected {
			t.Errorf("stripHTML(%q) = %q, 期望 %q", tc.input, got, tc.expected)
		}
	}
}

func TestTruncateShort(t *testing.T) {
	s := "短文本"
	if got := truncate(s, 200); got != s {
		t.Errorf("短文本不应被截断: %q", got)
	}
}

func TestExtractImageEnclosure(t *testing.T) {
	item := &gofeed.Item{
		Enclosures: []*gofeed.Enclosure{
			{URL: "https://example.com/audio.mp3", Type: "audio/mpeg"},
			{URL: "https://example.com/cover.jpg", Type: "image/jpeg"},
		},
	}
	if got := extractImage(item); got != "https://example.com/cover.jpg" {
		t.Errorf("应返回第一个图片类型的 enclosure: %q", got)
	}
}

func TestExtractImageEnclosurePriority(t *testing.T) {
	// enclosure 与内联 <img> 同时存在时，enclosure 优先
	item := &gofeed.Item{
		Description: `<p><img src="https://example.com/inline.png"></p>`,
		Enclosures: []*gofeed.Enclosure{
			{URL: "https://example.com/cover.jpg", Type: "image/jpeg"},
		},
	}
	if got := extractImage(item); got != "https://example.com/cover.jpg" {
		t.Errorf("enclosure 应优先于内联图片: %q", got)
	}
}

func TestExtractImageMediaThumbnail(t *testing.T) {
	item := &gofeed.Item{
		Extensions: ext.Extensions{
			"media": {
				"thumbnail": []ext.Extension{
					{Name: "thumbnail", Attrs: map[string]string{"url": "https://example.com/thumb.png"}},
				},
			},
		},
	}
	if got := extractImage(item); got != "https://example.com/thumb.png" {
		t.Errorf("应返回 media:thumbnail 的 URL: %q", got)
	}
}

func TestExtractImageMediaContent(t *testing.T) {
	item := &gofeed.Item{
		Extensions: ext.Extensions{
			"media": {
				"content": []ext.Extension{
					{Name: "content", Attrs: map[string]string{"url": "https://example.com/video.mp4", "medium": "video"}},
					{Name: "content", Attrs: map[string]string{"url": "https://example.com/photo.jpg", "medium": "image"}},
				},
			},
		},
	}
	if got := extractImage(item); got != "https://example.com/photo.jpg" {
		t.Errorf("应返回 medium 为 image 的 media:content: %q", got)
	}
}

func TestExtractImageInline(t *testing.T) {
	// 摘要里没有图片时回退到正文，单引号属性也能匹配
	item := &gofeed.Item{
		Description: "<p>没有图片的摘要</p>",
		Content:     "<div><img class='hero' src='https://example.com/hero.webp' alt=''></div>",
	}
	if got := extractImage(item); got != "https://example.com/hero.webp" {
		t.Errorf("应从正文提取内联图片: %q", got)
	}
}

func TestExtractImageNone(t *testing.T) {
	item := &gofeed.Item{Description: "纯文本摘要"}
	if got := extractImage(item); got != "" {
		t.Errorf("没有图片时应返回空串: %q", got)
	}
}

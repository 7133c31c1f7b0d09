// Package page 将汇总后的文章渲染为单个自包含的静态 HTML 页面。
package page

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/shu1007/github-rss/internal/feed"
)

// repo 是接收「添加订阅源」Issue 的仓库。
const repo = "shu1007/github-rss"

const issueTemplateBody = `### Feed URL
(RSSフィードのURLを入力)

### Feed Name
(表示名を入力)

### Labels
(カンマ区切りでラベルを入力。例: tech, news)
`

type pageData struct {
	UpdatedAt string
	IssueURL  string
	Sources   []string
	Labels    []string
	Articles  []articleView
}

type articleView struct {
	Title      string
	Link       string
	Source     string
	Labels     []string
	LabelsAttr string
	Published  string
	Summary    string
	Image      string
}

// Render 生成完整的 HTML 页面。
// 页面内嵌 CSS 和过滤脚本，来源 × 标签两个维度可独立组合过滤。
// 所有插值都经过 html/template 的上下文转义，外部文本不会破坏页面结构。
func Render(articles []feed.Article, updatedAt time.Time) (string, error) {
	data := pageData{
		UpdatedAt: updatedAt.UTC().Format("2006-01-02 15:04") + " UTC",
		IssueURL:  issueURL(),
		Sources:   feed.AllSources(articles),
		Labels:    feed.AllLabels(articles),
		Articles:  make([]articleView, 0, len(articles)),
	}
	for _, a := range articles {
		data.Articles = append(data.Articles, articleView{
			Title:      a.Title,
			Link:       a.Link,
			Source:     a.Source,
			Labels:     a.Labels,
			LabelsAttr: strings.Join(a.Labels, " "),
			Published:  a.Published.UTC().Format("2006-01-02 15:04"),
			Summary:    a.Summary,
			Image:      a.Image,
		})
	}

	var b strings.Builder
	if err := pageTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("渲染页面失败: %w", err)
	}
	return b.String(), nil
}

// issueURL 生成预填了模板的「添加订阅源」Issue 链接。
func issueURL() string {
	return fmt.Sprintf("https://github.com/%s/issues/new?title=%s&body=%s&labels=%s",
		repo,
		url.QueryEscape("add-feed"),
		url.QueryEscape(issueTemplateBody),
		url.QueryEscape("add-feed"))
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>RSS Reader</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #f5f5f5; color: #333; line-height: 1.6; }
    .container { max-width: 800px; margin: 0 auto; padding: 20px; }
    header { margin-bottom: 24px; }
    header h1 { font-size: 1.5rem; }
    header .updated { font-size: 0.85rem; color: #888; margin-top: 4px; }
    .filters { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 20px; }
    .sources { margin-bottom: 20px; }
    .sources summary { cursor: pointer; font-size: 0.9rem; font-weight: 600; color: #555; padding: 8px 0; }
    .sources .source-list { display: flex; flex-wrap: wrap; gap: 8px; padding-top: 10px; }
    .filter-btn { background: #fff; border: 1px solid #ddd; border-radius: 20px; padding: 6px 16px; font-size: 0.85rem; cursor: pointer; transition: all 0.2s; }
    .filter-btn:hover { border-color: #1a73e8; color: #1a73e8; }
    .filter-btn.active { background: #1a73e8; color: #fff; border-color: #1a73e8; }
    .entry { background: #fff; border-radius: 8px; padding: 16px; margin-bottom: 12px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
    .entry.hidden { display: none; }
    .thumb { width: 100%; max-height: 300px; object-fit: cover; border-radius: 6px; margin: 8px 0; }
    .entry .meta { display: flex; flex-wrap: wrap; gap: 6px; align-items: center; }
    .entry .source { display: inline-block; background: #e8f0fe; color: #1a73e8; font-size: 0.75rem; padding: 2px 8px; border-radius: 4px; font-weight: 600; cursor: pointer; }
    .entry .source:hover { background: #d2e3fc; }
    .entry .label { display: inline-block; background: #f0f0f0; color: #555; font-size: 0.7rem; padding: 2px 8px; border-radius: 4px; cursor: pointer; }
    .entry .label:hover { background: #e0e0e0; }
    .add-feed { display: inline-block; background: #34a853; color: #fff; text-decoration: none; font-size: 0.85rem; padding: 6px 16px; border-radius: 20px; font-weight: 600; transition: background 0.2s; }
    .add-feed:hover { background: #2d8e47; }
    .entry h2 { font-size: 1.1rem; margin: 8px 0 4px; }
    .entry h2 a { color: #1a1a1a; text-decoration: none; }
    .entry h2 a:hover { text-decoration: underline; }
    .entry time { font-size: 0.8rem; color: #888; }
    .entry p { font-size: 0.9rem; color: #555; margin-top: 8px; }
  </style>
</head>
<body>
  <div class="container">
    <header>
      <h1>RSS Reader</h1>
      <div class="updated">Last updated: {{.UpdatedAt}}</div>
      <a class="add-feed" href="{{.IssueURL}}" target="_blank" rel="noopener">+ Add Feed</a>
    </header>
    <details class="sources">
      <summary>Sources ({{len .Sources}})</summary>
      <div class="source-list">
        <button class="filter-btn source-btn active" data-source="all">All</button>
{{- range .Sources}}
        <button class="filter-btn source-btn" data-source="{{.}}">{{.}}</button>
{{- end}}
      </div>
    </details>
    <div class="filters">
      <button class="filter-btn label-btn active" data-label="all">All</button>
{{- range .Labels}}
      <button class="filter-btn label-btn" data-label="{{.}}">{{.}}</button>
{{- end}}
    </div>
    <main>
{{- if .Articles}}
{{- range .Articles}}
      <article class="entry" data-source="{{.Source}}" data-labels="{{.LabelsAttr}}">
        <div class="meta">
          <span class="source" data-filter-source="{{.Source}}">{{.Source}}</span>
          {{range .Labels}}<span class="label" data-filter-label="{{.}}">{{.}}</span> {{end}}
        </div>
        <h2><a href="{{.Link}}" target="_blank" rel="noopener">{{.Title}}</a></h2>
        {{if .Image}}<a href="{{.Link}}" target="_blank" rel="noopener"><img class="thumb" src="{{.Image}}" alt="" loading="lazy"></a>{{end}}
        <time>{{.Published}}</time>
        <p>{{.Summary}}</p>
      </article>
{{- end}}
{{- else}}
      <p>記事がありません。</p>
{{- end}}
    </main>
  </div>
  <script>
    let activeSource = 'all';
    let activeLabel = 'all';

    function applyFilters() {
      document.querySelectorAll('.entry').forEach(entry => {
        const matchSource = activeSource === 'all' || entry.dataset.source === activeSource;
        const matchLabel = activeLabel === 'all' || entry.dataset.labels.split(' ').includes(activeLabel);
        entry.classList.toggle('hidden', !(matchSource && matchLabel));
      });
    }

    document.querySelectorAll('.source-btn').forEach(btn => {
      btn.addEventListener('click', () => {
        document.querySelectorAll('.source-btn').forEach(b => b.classList.remove('active'));
        btn.classList.add('active');
        activeSource = btn.dataset.source;
        applyFilters();
      });
    });

    document.querySelectorAll('.label-btn').forEach(btn => {
      btn.addEventListener('click', () => {
        document.querySelectorAll('.label-btn').forEach(b => b.classList.remove('active'));
        btn.classList.add('active');
        activeLabel = btn.dataset.label;
        applyFilters();
      });
    });

    function selectSource(name) {
      document.querySelectorAll('.source-btn').forEach(b => {
        b.classList.toggle('active', b.dataset.source === name);
      });
      activeSource = name;
      applyFilters();
    }

    function selectLabel(name) {
      document.querySelectorAll('.label-btn').forEach(b => {
        b.classList.toggle('active', b.dataset.label === name);
      });
      activeLabel = name;
      applyFilters();
    }

    document.querySelectorAll('[data-filter-source]').forEach(el => {
      el.addEventListener('click', () => selectSource(el.dataset.filterSource));
    });

    document.querySelectorAll('[data-filter-label]').forEach(el => {
      el.addEventListener('click', () => selectLabel(el.dataset.filterLabel));
    });
  </script>
</body>
</html>
`))

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shu1007/github-rss/internal/config"
	"github.com/shu1007/github-rss/internal/feed"
	"github.com/shu1007/github-rss/internal/logger"
	"github.com/shu1007/github-rss/internal/page"
)

func main() {
	configPath := flag.String("config", "configs/feedgen.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Errorf("[main] 生成失败: %v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -cfg.WindowDays)

	fetcher := feed.NewFetcher(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, cfg.Fetch.UserAgent)
	collector := feed.NewCollector(fetcher)

	logger.Infof("[main] 开始抓取 %d 个订阅源...", len(cfg.Feeds))
	articles := collector.Collect(context.Background(), cfg.Feeds, cutoff)
	logger.Infof("[main] 最近 %d 天内共 %d 篇文章", cfg.WindowDays, len(articles))

	html, err := page.Render(articles, now)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output.Path), 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(cfg.Output.Path, []byte(html), 0644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", cfg.Output.Path, err)
	}

	logger.Infof("[main] 已生成 %s", cfg.Output.Path)
	return nil
}

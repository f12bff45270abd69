// Package mscl 从联赛统计网站采集球队球员的逐场击球/投球表格
package mscl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"CricketStats/internal/config"
	"CricketStats/internal/interfaces"
	"CricketStats/internal/model"
	"CricketStats/internal/utils/httpclient"
)

const (
	battingTableID = "playerDetailedBattingStats"
	bowlingTableID = "playerDetailedBowlingStats"
)

var (
	playerHrefRe = regexp.MustCompile(`/playerprofile/([a-f0-9]+)`)
	opponentRe   = regexp.MustCompile(`vs\s(.+)$`)
)

// 表头别名，按顺序取第一个存在的列
var (
	colDate       = []string{"Date", "Match Date"}
	colOpposition = []string{"Opposition", "Opponent"}
	colTournament = []string{"Tournament", "Series", "Competition", "League"}
	colDismissal  = []string{"Dismissal", "How Out"}
	colRuns       = []string{"Runs", "R"}
	colBalls      = []string{"Balls", "B"}
	colFours      = []string{"4s", "Fours"}
	colSixes      = []string{"6s", "Sixes"}
	colDots       = []string{"Dots", "0s"}
	colOvers      = []string{"Overs", "O"}
	colWickets    = []string{"Wickets", "Wkts", "W"}
	colMaidens    = []string{"Maidens", "M"}
)

// Adapter 联赛网站采集器
type Adapter struct {
	cfg        *config.CollectorConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewMsclAdapter 创建采集器
func NewMsclAdapter(cfg *config.CollectorConfig, logger *logrus.Logger) interfaces.StatsCollector {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

func (a *Adapter) GetName() string {
	return "MSCL"
}

// FetchPlayers 解析球队击球统计页上的球员链接，按ID去重并排序
func (a *Adapter) FetchPlayers(ctx context.Context) ([]interfaces.PlayerRef, error) {
	q := url.Values{}
	q.Set("season", a.cfg.Season)
	q.Set("team", a.cfg.Team)
	pageURL := fmt.Sprintf("%s/battingStats?%s", strings.TrimRight(a.cfg.BaseURL, "/"), q.Encode())

	doc, err := a.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("获取球员列表失败: %w", err)
	}

	seen := make(map[string]struct{})
	var players []interfaces.PlayerRef
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "a" {
			return
		}
		href := attr(n, "href")
		if !strings.Contains(href, "/playerprofile/") {
			return
		}
		m := playerHrefRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		if _, ok := seen[m[1]]; ok {
			return
		}
		seen[m[1]] = struct{}{}
		players = append(players, interfaces.PlayerRef{ID: m[1], Name: textOf(n)})
	})
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	a.logger.WithField("players", len(players)).Info("球员列表获取完成")
	return players, nil
}

// FetchBatting 采集单名球员的逐场击球表；页面没有该表时返回空
func (a *Adapter) FetchBatting(ctx context.Context, player interfaces.PlayerRef) ([]model.RawBattingRow, error) {
	t, err := a.fetchTable(ctx, player, "batting", battingTableID)
	if err != nil || t == nil {
		return nil, err
	}
	rows := make([]model.RawBattingRow, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, model.RawBattingRow{
			PlayerName: player.Name,
			Date:       t.get(r, colDate),
			Opponent:   extractOpponent(t.get(r, colOpposition)),
			Tournament: t.get(r, colTournament),
			Dismissal:  t.get(r, colDismissal),
			Runs:       t.get(r, colRuns),
			Balls:      t.get(r, colBalls),
			Fours:      t.get(r, colFours),
			Sixes:      t.get(r, colSixes),
			Dots:       t.get(r, colDots),
		})
	}
	return rows, nil
}

// FetchBowling 采集单名球员的逐场投球表
func (a *Adapter) FetchBowling(ctx context.Context, player interfaces.PlayerRef) ([]model.RawBowlingRow, error) {
	t, err := a.fetchTable(ctx, player, "bowling", bowlingTableID)
	if err != nil || t == nil {
		return nil, err
	}
	hasDots := t.has(colDots)
	rows := make([]model.RawBowlingRow, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, model.RawBowlingRow{
			PlayerName: player.Name,
			Date:       t.get(r, colDate),
			Opponent:   extractOpponent(t.get(r, colOpposition)),
			Overs:      t.get(r, colOvers),
			Wickets:    t.get(r, colWickets),
			Runs:       t.get(r, colRuns),
			Maidens:    t.get(r, colMaidens),
			Dots:       t.get(r, colDots),
			HasDots:    hasDots,
		})
	}
	return rows, nil
}

func (a *Adapter) fetchTable(ctx context.Context, player interfaces.PlayerRef, statType, tableID string) (*statTable, error) {
	q := url.Values{}
	q.Set("statType", statType)
	q.Set("statDetails", statType)
	pageURL := fmt.Sprintf("%s/playerprofile/%s?%s", strings.TrimRight(a.cfg.BaseURL, "/"), url.PathEscape(player.ID), q.Encode())

	doc, err := a.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("获取%s的%s数据失败: %w", player.Name, statType, err)
	}
	node := findTable(doc, tableID)
	if node == nil {
		a.logger.WithFields(logrus.Fields{"player": player.Name, "stat_type": statType}).Debug("页面无逐场统计表，跳过")
		return nil, nil
	}
	return parseTable(node), nil
}

// fetchDocument GET 页面并解析为 DOM；网络错误与 5xx 按配置重试，4xx 不重试
func (a *Adapter) fetchDocument(ctx context.Context, pageURL string) (*html.Node, error) {
	attempts := a.cfg.RetryCount
	if attempts <= 0 {
		attempts = 1
	}
	var doc *html.Node
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := a.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				if err := resp.Body.Close(); err != nil {
					a.logger.WithError(err).Warn("关闭响应体失败")
				}
			}()
			if resp.StatusCode >= 400 {
				statusErr := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, pageURL)
				if resp.StatusCode < 500 {
					return retry.Unrecoverable(statusErr)
				}
				return statusErr
			}
			doc, err = html.Parse(resp.Body)
			return err
		},
		retry.Attempts(uint(attempts)),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.Delay(200*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			a.logger.WithError(err).WithFields(logrus.Fields{"url": pageURL, "attempt": n + 1}).Warn("页面请求失败，重试中")
		}),
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("empty document")
	}
	return doc, nil
}

// extractOpponent 从 "vs Team Name" 形式的对阵文本中取出对手名，无法匹配时为空
func extractOpponent(opposition string) string {
	m := opponentRe.FindStringSubmatch(opposition)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

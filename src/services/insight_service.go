package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"coindash/src/clients/openai"
	"coindash/src/schemas"
	"coindash/src/utils"
	redis_utils "coindash/src/utils/redis"
)

type InsightServiceI interface {
	GenerateInsight(ctx context.Context, userID string) (*schemas.InsightResponse, error)
}

type cachedInsight struct {
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// InsightService produces a short natural-language commentary on the
// user's portfolio. Results are cached per user so repeated dashboard
// loads do not re-spend completion tokens.
type InsightService struct {
	portfolioService PortfolioServiceI
	client           openai.OpenAIServiceClientI

	redis *redis_utils.RedisHandler
	ttl   time.Duration

	mutex sync.Mutex
	local map[string]cachedInsight
}

func NewInsightService(
	portfolioService PortfolioServiceI,
	client openai.OpenAIServiceClientI,
	redis *redis_utils.RedisHandler,
	ttl time.Duration,
) *InsightService {
	return &InsightService{
		portfolioService: portfolioService,
		client:           client,
		redis:            redis,
		ttl:              ttl,
		local:            make(map[string]cachedInsight),
	}
}

func insightCacheKey(userID string) string {
	return "insights:" + userID
}

func (s *InsightService) cached(userID string) (cachedInsight, bool) {
	if s.redis != nil {
		var ci cachedInsight
		if err := s.redis.Get(insightCacheKey(userID), &ci); err == nil && ci.Summary != "" {
			return ci, true
		}
		return cachedInsight{}, false
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	ci, ok := s.local[userID]
	if !ok || time.Since(ci.GeneratedAt) > s.ttl {
		return cachedInsight{}, false
	}
	return ci, true
}

func (s *InsightService) store(userID string, ci cachedInsight) {
	if s.redis != nil {
		_ = s.redis.Set(insightCacheKey(userID), ci, s.ttl)
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.local[userID] = ci
}

func (s *InsightService) GenerateInsight(ctx context.Context, userID string) (*schemas.InsightResponse, error) {
	if ci, ok := s.cached(userID); ok {
		return &schemas.InsightResponse{Summary: ci.Summary, GeneratedAt: ci.GeneratedAt, Cached: true}, nil
	}

	portfolio, err := s.portfolioService.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(portfolio.Positions) == 0 {
		return nil, utils.NotFound("portfolio is empty, nothing to summarize")
	}

	summary, err := s.client.CreateChatCompletion(ctx, []openai.ChatMessage{
		{Role: "system", Content: "You are a concise financial dashboard assistant. Summarize the portfolio in at most three sentences. Do not give investment advice."},
		{Role: "user", Content: buildInsightPrompt(portfolio)},
	})
	if err != nil {
		utils.LoggerFromContext(ctx).WithError(err).Warn("insight generation failed")
		return nil, utils.ServiceUnavailable("insight generation is temporarily unavailable")
	}

	ci := cachedInsight{Summary: summary, GeneratedAt: time.Now().UTC()}
	s.store(userID, ci)
	return &schemas.InsightResponse{Summary: ci.Summary, GeneratedAt: ci.GeneratedAt}, nil
}

func buildInsightPrompt(p *schemas.PortfolioResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Portfolio total value: %s %s, total cost basis: %s, unrealized P&L: %s (%s%%).\n",
		p.Summary.TotalValue.StringFixed(2), p.Summary.Currency,
		p.Summary.TotalCost.StringFixed(2),
		p.Summary.TotalPnL.StringFixed(2), p.Summary.PnLPercent.StringFixed(2))
	b.WriteString("Positions:\n")
	for _, pos := range p.Positions {
		if !pos.Priced {
			fmt.Fprintf(&b, "- %s: %s units, no current price\n", pos.Symbol, pos.Quantity.String())
			continue
		}
		fmt.Fprintf(&b, "- %s: %s units, market value %s, P&L %s (%s%%)\n",
			pos.Symbol, pos.Quantity.String(), pos.MarketValue.StringFixed(2),
			pos.UnrealizedPnL.StringFixed(2), pos.PnLPercent.StringFixed(2))
	}
	return b.String()
}

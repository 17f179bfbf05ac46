package responder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSelectResponseGeneralTopics(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"Can you explain this chart?", ChartResponse},
		{"CHART", ChartResponse},
		{"what does the Graph mean", ChartResponse},
		{"show my portfolio", PortfolioResponse},
		{"What are my HOLDINGS worth", PortfolioResponse},
		{"how does trading work", TradingResponse},
		{"where is my transaction list", TransactionsResponse},
		{"set an alert for AAPL", AlertsResponse},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, SelectResponse(c.query), c.query)
	}
}

func TestSelectResponseGlossary(t *testing.T) {
	assert.Equal(t, BullMarketDefinition, SelectResponse("What is a bull market?"))
	assert.Equal(t, VolatilityDefinition, SelectResponse("what is volatility"))
	assert.Equal(t, LiquidityDefinition, SelectResponse("Explain liquidity please"))
	assert.Equal(t, BearMarketDefinition, SelectResponse("define BEAR MARKET"))
	assert.Equal(t, ETFDefinition, SelectResponse("what's an ETF"))
	assert.Equal(t, StopLossDefinition, SelectResponse("what is a stop-loss"))
}

func TestSelectResponseClarify(t *testing.T) {
	assert.Equal(t, ClarifyResponse, SelectResponse("what is the weather"))
	assert.Equal(t, ClarifyResponse, SelectResponse("explain"))
}

func TestSelectResponseFallback(t *testing.T) {
	assert.Equal(t, FallbackResponse, SelectResponse("hello"))
	assert.Equal(t, FallbackResponse, SelectResponse(""))
	assert.Equal(t, FallbackResponse, SelectResponse("   "))
}

func TestGeneralRulesBeforeGlossary(t *testing.T) {
	res := Default().Match("explain the chart")
	assert.Equal(t, KindRule, res.Kind)
	assert.Equal(t, RuleChart, res.Rule)
	assert.Equal(t, ChartResponse, res.Response)

	res = Default().Match("what is volatility in my portfolio")
	assert.Equal(t, KindRule, res.Kind)
	assert.Equal(t, RulePortfolio, res.Rule)
}

func TestMatchKinds(t *testing.T) {
	res := Default().Match("What is a bull market?")
	assert.Equal(t, KindGlossary, res.Kind)
	assert.Equal(t, "bull market", res.Term)
	assert.Empty(t, res.Rule)

	assert.Equal(t, KindClarify, Default().Match("define something").Kind)
	assert.Equal(t, KindFallback, Default().Match("hello").Kind)
}

func TestDefaultCatalogHasNoOverlap(t *testing.T) {
	// 通用规则的 pattern 不能出现在任何 "what is <术语>" 提问中
	for _, term := range DefaultTerms() {
		res := Default().Match("what is " + term.Name)
		assert.Equal(t, KindGlossary, res.Kind, term.Name)
		assert.Equal(t, term.Definition, res.Response, term.Name)
	}
}

func TestDeterministic(t *testing.T) {
	queries := []string{"", "hello", "chart", "What is a bull market?", "explain xyz"}
	for _, q := range queries {
		first := SelectResponse(q)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, SelectResponse(q))
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	s := Default()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, PortfolioResponse, s.SelectResponse("my portfolio"))
			}
		}()
	}
	wg.Wait()
}

func TestNewNormalizesCatalog(t *testing.T) {
	s := New(
		[]Rule{
			{Name: "empty", Patterns: []string{"  ", ""}, Response: "never"},
			{Name: "upper", Patterns: []string{" GREETING "}, Response: "hi there"},
		},
		Glossary{
			Triggers: []string{"WHAT IS"},
			Terms:    []Term{{Name: " ", Definition: "blank"}, {Name: "APR", Definition: "annual rate"}},
			Clarify:  "which one?",
		},
		"fallback",
	)

	require.Len(t, s.Rules(), 1)
	assert.Equal(t, []string{"greeting"}, s.Rules()[0].Patterns)
	require.Len(t, s.Terms(), 1)
	assert.Equal(t, "apr", s.Terms()[0].Name)

	assert.Equal(t, "hi there", s.SelectResponse("a Greeting for you"))
	assert.Equal(t, "annual rate", s.SelectResponse("What is APR?"))
	assert.Equal(t, "which one?", s.SelectResponse("what is that"))
	assert.Equal(t, "fallback", s.SelectResponse(""))
	assert.Equal(t, "fallback", s.Fallback())
}

func TestRulesReturnsCopy(t *testing.T) {
	s := Default()
	rules := s.Rules()
	rules[0].Patterns[0] = "mutated"
	assert.Equal(t, ChartResponse, s.SelectResponse("chart"))
}

func TestMergeRules(t *testing.T) {
	base := DefaultRules()
	merged := MergeRules(base, []Rule{
		{Name: "Chart", Patterns: []string{"candles"}, Response: "custom chart"},
		{Name: "earnings", Patterns: []string{"earnings"}, Response: "earnings season"},
	})

	require.Len(t, merged, len(base)+1)
	assert.Equal(t, "custom chart", merged[0].Response)
	assert.Equal(t, "earnings", merged[len(merged)-1].Name)
	// 基础目录不被修改
	assert.Equal(t, ChartResponse, base[0].Response)

	s := New(merged, DefaultGlossary(), FallbackResponse)
	assert.Equal(t, "custom chart", s.SelectResponse("show candles"))
	assert.Equal(t, FallbackResponse, s.SelectResponse("graph"))
	assert.Equal(t, "earnings season", s.SelectResponse("earnings"))
}

func TestMergeTerms(t *testing.T) {
	merged := MergeTerms(DefaultTerms(), []Term{
		{Name: "volatility", Definition: "prices move a lot"},
		{Name: "yield curve", Definition: "curve"},
	})
	s := New(DefaultRules(), Glossary{Triggers: DefaultTriggers(), Terms: merged, Clarify: ClarifyResponse}, FallbackResponse)

	assert.Equal(t, "prices move a lot", s.SelectResponse("what is volatility"))
	assert.Equal(t, "curve", s.SelectResponse("explain the yield curve"))
}

func TestShortTermsDoNotMatchInsideWords(t *testing.T) {
	s := Default()

	res := s.Match("what is netflix stock")
	assert.Equal(t, KindClarify, res.Kind)
	assert.Empty(t, res.Term)

	assert.Equal(t, KindClarify, s.Match("explain dispersion").Kind)

	res = s.Match("what's an ETF")
	assert.Equal(t, "etf", res.Term)
	assert.Equal(t, ETFDefinition, res.Response)

	res = s.Match("what is an exchange-traded fund")
	assert.Equal(t, "etf", res.Term)

	res = s.Match("what is the relative strength index")
	assert.Equal(t, "rsi", res.Term)
	assert.Equal(t, RSIDefinition, res.Response)
}

func TestMergeTermsKeepsPatterns(t *testing.T) {
	merged := MergeTerms(DefaultTerms(), []Term{{Name: "ETF", Definition: "a fund"}})
	s := New(DefaultRules(), Glossary{Triggers: DefaultTriggers(), Terms: merged, Clarify: ClarifyResponse}, FallbackResponse)

	assert.Equal(t, "a fund", s.SelectResponse("what is an etf"))
	assert.Equal(t, KindClarify, s.Match("what is netflix stock").Kind)

	for _, term := range s.Terms() {
		if term.Name == "etf" {
			assert.Contains(t, term.Patterns, " etf")
		}
	}
}

package responder

import "sync"

// 内置规则目录. 通用话题的 pattern 不能与术语名重叠,
// 否则 "what is volatility" 之类的提问会被通用规则截走.

const (
	RuleChart        = "chart"
	RulePortfolio    = "portfolio"
	RuleTrading      = "trading"
	RuleTransactions = "transactions"
	RuleAlerts       = "alerts"
)

const (
	ChartResponse = "The chart shows how the price has moved over the selected period. " +
		"Green candles mean the price closed higher than it opened, red candles mean it closed lower. " +
		"Use the range buttons above the chart to switch between 1D, 1W, 1M and 1Y views, and hover over a point to see the exact price and volume."

	PortfolioResponse = "Your portfolio view lists every position you hold with its current value, cost basis and unrealised gain or loss. " +
		"The allocation chart shows how your money is split across asset classes and sectors. " +
		"A well diversified portfolio spreads risk so a drop in one holding has less impact on the total."

	TradingResponse = "To place a trade, open the Trade panel, pick the symbol, choose buy or sell and enter the quantity. " +
		"Market orders fill immediately at the best available price, limit orders only fill at your price or better. " +
		"Review the estimated cost before confirming; this dashboard runs in simulation mode so no real money moves."

	TransactionsResponse = "The Transactions page lists every buy, sell, deposit and dividend in date order. " +
		"You can filter by symbol or type and export the list to CSV for your records."

	AlertsResponse = "Price alerts notify you when a symbol crosses a level you choose. " +
		"Open the Alerts tab, pick the symbol, set the target price and whether it should trigger above or below it."

	ClarifyResponse = "I can explain common financial terms such as bull market, bear market, volatility, liquidity or diversification. " +
		"Which term would you like me to explain?"

	FallbackResponse = "I'm not sure I understood that. Could you tell me a bit more about what you'd like to know? " +
		"You can ask me about charts, your portfolio, trading, transactions or any financial term."
)

// 术语定义
const (
	BullMarketDefinition = "A bull market is a period when prices in a market are rising or expected to rise, " +
		"usually by 20% or more from recent lows. It reflects investor confidence and a strong economy."
	BearMarketDefinition = "A bear market is a period when prices fall 20% or more from recent highs, " +
		"typically accompanied by widespread pessimism and weak investor sentiment."
	VolatilityDefinition = "Volatility measures how much and how quickly an asset's price moves up and down. " +
		"High volatility means large price swings and more risk; low volatility means steadier prices."
	LiquidityDefinition = "Liquidity describes how easily an asset can be bought or sold without affecting its price. " +
		"Cash is the most liquid asset; real estate and collectibles are much less liquid."
	DiversificationDefinition = "Diversification means spreading your investments across different assets, sectors or regions " +
		"so that a loss in one area is offset by others. It reduces risk without necessarily reducing returns."
	MarketCapDefinition = "Market capitalization is the total value of a company's shares: the share price multiplied by the number of shares outstanding. " +
		"It is used to classify companies as large-cap, mid-cap or small-cap."
	PERatioDefinition = "The price-to-earnings (P/E) ratio divides a company's share price by its earnings per share. " +
		"A high P/E can mean investors expect strong growth; a low P/E can signal undervaluation or weak prospects."
	DividendDefinition = "A dividend is a portion of a company's profits paid out to shareholders, usually in cash every quarter. " +
		"The dividend yield is the annual dividend divided by the share price."
	ETFDefinition = "An ETF (exchange-traded fund) is a basket of securities that trades on an exchange like a single stock. " +
		"ETFs often track an index and offer cheap, instant diversification."
	BondDefinition = "A bond is a loan you make to a government or company in exchange for regular interest payments " +
		"and the return of the principal when the bond matures."
	StopLossDefinition = "A stop-loss order automatically sells a position when its price falls to a level you set, " +
		"limiting how much you can lose on a trade."
	MovingAverageDefinition = "A moving average smooths price data by averaging closing prices over a set number of days, such as 50 or 200. " +
		"Traders watch for the price crossing above or below it as a trend signal."
	RSIDefinition = "The Relative Strength Index (RSI) is a momentum indicator from 0 to 100. " +
		"Readings above 70 suggest an asset may be overbought, below 30 that it may be oversold."
	ShortSellingDefinition = "Short selling means borrowing shares and selling them, hoping to buy them back later at a lower price. " +
		"Losses are unlimited if the price keeps rising."
	AssetAllocationDefinition = "Asset allocation is how you divide your portfolio between stocks, bonds, cash and other assets " +
		"based on your goals, time horizon and risk tolerance."
	BlueChipDefinition = "A blue-chip stock belongs to a large, well-established and financially sound company " +
		"with a long record of reliable performance."
)

// DefaultRules 内置通用话题规则, 按优先级排列
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleChart, Patterns: []string{"chart", "graph"}, Response: ChartResponse},
		{Name: RulePortfolio, Patterns: []string{"portfolio", "holdings"}, Response: PortfolioResponse},
		{Name: RuleTrading, Patterns: []string{"trading", "place a trade", "place an order", "buy shares", "sell shares"}, Response: TradingResponse},
		{Name: RuleTransactions, Patterns: []string{"transaction", "order history"}, Response: TransactionsResponse},
		{Name: RuleAlerts, Patterns: []string{"alert", "notify me"}, Response: AlertsResponse},
	}
}

// DefaultTriggers 触发术语解释的短语
func DefaultTriggers() []string {
	return []string{"explain", "what is", "what's", "what are", "define", "meaning of", "translate"}
}

// DefaultTerms 内置术语表. 按顺序扫描, 较长的术语需排在它的子串之前;
// 缩写只匹配以空格开头的形式, "netflix" 不会命中 etf.
func DefaultTerms() []Term {
	return []Term{
		{Name: "bull market", Definition: BullMarketDefinition},
		{Name: "bear market", Definition: BearMarketDefinition},
		{Name: "volatility", Definition: VolatilityDefinition},
		{Name: "liquidity", Definition: LiquidityDefinition},
		{Name: "diversification", Definition: DiversificationDefinition},
		{Name: "market cap", Definition: MarketCapDefinition},
		{Name: "p/e ratio", Definition: PERatioDefinition},
		{Name: "dividend", Definition: DividendDefinition},
		{Name: "etf", Definition: ETFDefinition, Patterns: []string{" etf", "exchange-traded fund", "exchange traded fund"}},
		{Name: "bond", Definition: BondDefinition},
		{Name: "stop loss", Definition: StopLossDefinition},
		{Name: "stop-loss", Definition: StopLossDefinition},
		{Name: "moving average", Definition: MovingAverageDefinition},
		{Name: "rsi", Definition: RSIDefinition, Patterns: []string{" rsi", "relative strength index"}},
		{Name: "short selling", Definition: ShortSellingDefinition},
		{Name: "asset allocation", Definition: AssetAllocationDefinition},
		{Name: "blue chip", Definition: BlueChipDefinition},
		{Name: "blue-chip", Definition: BlueChipDefinition},
	}
}

// DefaultGlossary 内置术语解释子规则
func DefaultGlossary() Glossary {
	return Glossary{
		Triggers: DefaultTriggers(),
		Terms:    DefaultTerms(),
		Clarify:  ClarifyResponse,
	}
}

var (
	defaultOnce     sync.Once
	defaultSelector *Selector
)

// Default 返回使用内置目录的 Selector
func Default() *Selector {
	defaultOnce.Do(func() {
		defaultSelector = New(DefaultRules(), DefaultGlossary(), FallbackResponse)
	})
	return defaultSelector
}

// SelectResponse 使用内置目录匹配查询
func SelectResponse(query string) string {
	return Default().SelectResponse(query)
}

package groq

import "strings"

// FallbackResponse is the offline advisor: deterministic canned answers used
// when no API key is configured or the upstream call fails. Keyed on prompt
// content so repeated questions get stable replies.
func FallbackResponse(prompt string) string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(prompt, "BHP"):
		return fallbackBHP
	case strings.Contains(lower, "market overview"):
		return fallbackMarketOverview
	default:
		return fallbackGeneral
	}
}

const fallbackBHP = `**BHP Group Limited (BHP) Portfolio Analysis**

**Current Position:**
- Current Price: $45.20
- 52-week range: $38.50 - $48.90
- Dividend Yield: 4.2%

**Portfolio Impact:**
- Strong dividend income potential
- Commodity sector diversification
- Large-cap stability

**Risk Assessment:**
- Commodity price volatility
- Global economic conditions
- Environmental regulations

**Portfolio Recommendation:** HOLD
BHP provides solid dividend income and sector diversification. Consider for long-term portfolio stability.

⚠️ **Risk Warning:** This is not financial advice. Always do your own research.`

const fallbackMarketOverview = `**ASX Portfolio Market Overview**

**Major Indices:**
- S&P/ASX 200: +0.8% (7,450 points)
- S&P/ASX 300: +0.7% (7,280 points)

**Sector Performance:**
- Healthcare: +2.1% (led by CSL)
- Financials: +0.5% (banking sector stable)
- Materials: +1.2% (mining stocks up)
- Energy: -0.3% (oil prices down)

**Portfolio Opportunities:**
- Healthcare sector growth potential
- Financial sector stability
- Materials sector recovery

**Risk Factors:**
- Global inflation concerns
- China economic slowdown
- Geopolitical tensions

**Portfolio Strategy:** Consider sector diversification`

const fallbackGeneral = `**Portfolio Investment Advice**

Thank you for your question about ASX portfolio management. Here are some general insights:

**Key Considerations:**
- Always do your own research before making investment decisions
- Consider your risk tolerance and investment time horizon
- Diversify your portfolio across different sectors
- Monitor market conditions and economic indicators
- Keep track of company fundamentals and earnings reports

**Portfolio Management:**
- Rebalance your portfolio periodically
- Don't invest more than you can afford to lose
- Consider dollar-cost averaging for long-term investments
- Stay informed about market news and events

**Remember:** Past performance doesn't guarantee future results. The ASX market can be volatile, so always approach investing with caution.

⚠️ **Risk Warning:** This is not financial advice. Always consult with a qualified financial advisor before making investment decisions.`

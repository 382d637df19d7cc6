package i18n

// Domain vocabulary: one authoritative Chinese text per key. Lookups that
// miss fall back to the untranslated input (statuses, signals, actions) or a
// title-cased default (agent names). Read-only after init.

var statusVocab = map[string]string{
	"Analyzing Graham valuation":                             "正在分析格雷厄姆估值",
	"Analyzing activism potential":                           "正在分析激进投资潜力",
	"Analyzing balance sheet":                                "正在分析资产负债表",
	"Analyzing balance sheet and capital structure":          "正在分析资产负债表与资本结构",
	"Analyzing book value growth":                            "正在分析账面价值增长",
	"Analyzing business predictability":                      "正在分析业务可预测性",
	"Analyzing business quality":                             "正在分析企业质量",
	"Analyzing cash flow":                                    "正在分析现金流",
	"Analyzing cash yield and valuation":                     "正在分析现金收益率与估值",
	"Analyzing competitive moat":                             "正在分析竞争护城河",
	"Analyzing consistency":                                  "正在分析盈利稳定性",
	"Analyzing contrarian sentiment":                         "正在分析逆向情绪",
	"Analyzing disruptive potential":                         "正在分析颠覆式潜力",
	"Analyzing downside protection":                          "正在分析下行保护",
	"Analyzing earnings stability":                           "正在分析盈利稳定性",
	"Analyzing financial health":                             "正在分析财务健康状况",
	"Analyzing financial strength":                           "正在分析财务实力",
	"Analyzing fundamentals":                                 "正在分析基本面",
	"Analyzing growth":                                       "正在分析增长情况",
	"Analyzing growth & momentum":                            "正在分析增长与动量",
	"Analyzing growth & quality":                             "正在分析增长与质量",
	"Analyzing growth and reinvestment":                      "正在分析增长与再投资",
	"Analyzing innovation-driven growth":                     "正在分析创新驱动增长",
	"Analyzing insider activity":                             "正在分析内部交易行为",
	"Analyzing management actions":                           "正在分析管理层动作",
	"Analyzing management efficiency & leverage":             "正在分析管理效率与杠杆",
	"Analyzing management quality":                           "正在分析管理质量",
	"Analyzing margins & stability":                          "正在分析利润率与稳定性",
	"Analyzing moat strength":                                "正在分析护城河强度",
	"Analyzing price data":                                   "正在分析价格数据",
	"Analyzing pricing power":                                "正在分析定价能力",
	"Analyzing profitability":                                "正在分析盈利能力",
	"Analyzing risk profile":                                 "正在分析风险状况",
	"Analyzing risk-reward":                                  "正在分析风险回报",
	"Analyzing sentiment":                                    "正在分析市场情绪",
	"Analyzing trading patterns":                             "正在分析交易模式",
	"Analyzing valuation (Fisher style)":                     "正在进行费雪风格估值分析",
	"Analyzing valuation (focus on PEG)":                     "正在分析估值（重点关注 PEG）",
	"Analyzing valuation ratios":                             "正在分析估值指标",
	"Analyzing value":                                        "正在分析价值",
	"Analyzing volatility":                                   "正在分析波动率",
	"Assessing potential to double":                          "正在评估翻倍潜力",
	"Assessing relative valuation":                           "正在评估相对估值",
	"Calculating Munger-style valuation":                     "正在计算芒格式估值",
	"Calculating WACC and enhanced DCF":                      "正在计算加权资本成本与增强 DCF",
	"Calculating final signal":                               "正在计算最终信号",
	"Calculating intrinsic value":                            "正在计算内在价值",
	"Calculating intrinsic value & margin of safety":         "正在计算内在价值与安全边际",
	"Calculating intrinsic value (DCF)":                      "正在通过 DCF 计算内在价值",
	"Calculating mean reversion":                             "正在计算均值回归",
	"Calculating momentum":                                   "正在计算动量指标",
	"Calculating trend signals":                              "正在计算趋势信号",
	"Calculating valuation & high-growth scenario":           "正在估算估值与高增长情景",
	"Calculating volatility- and correlation-adjusted limits": "正在计算波动率与相关性调整限额",
	"Combining signals":                                      "正在综合分析师信号",
	"Done":                                                   "完成",
	"Failed: All valuation methods zero":                     "失败：所有估值方法结果为零",
	"Failed: Insufficient financial line items":              "失败：财务科目数据不足",
	"Failed: Market cap unavailable":                         "失败：未获取到市值数据",
	"Failed: No financial metrics found":                     "失败：未获取到财务指标",
	"Failed: No price data found":                            "失败：未获取到价格数据",
	"Failed: No valid price data":                            "失败：价格数据无效",
	"Fetching company news":                                  "正在获取公司新闻",
	"Fetching financial data":                                "正在获取财务数据",
	"Fetching financial line items":                          "正在获取财务科目",
	"Fetching financial metrics":                             "正在获取财务指标",
	"Fetching insider trades":                                "正在获取内部交易",
	"Fetching line items":                                    "正在获取科目数据",
	"Fetching market cap":                                    "正在获取市值",
	"Fetching price data and calculating volatility":         "正在获取价格并计算波动率",
	"Fetching recent price data for momentum":                "正在获取近期价格数据以计算动量",
	"Gathering comprehensive line items":                     "正在收集完整的财务科目",
	"Gathering financial line items":                         "正在汇总财务科目",
	"Generating Ben Graham analysis":                         "正在生成本·格雷厄姆分析",
	"Generating Bill Ackman analysis":                        "正在生成比尔·阿克曼分析",
	"Generating Cathie Wood analysis":                        "正在生成凯茜·伍德分析",
	"Generating Charlie Munger analysis":                     "正在生成查理·芒格分析",
	"Generating Damodaran analysis":                          "正在生成达莫达兰分析",
	"Generating Jhunjhunwala analysis":                       "正在生成琼君瓦拉分析",
	"Generating LLM output":                                  "正在生成大模型输出",
	"Generating Pabrai analysis":                             "正在生成帕布莱分析",
	"Generating Peter Lynch analysis":                        "正在生成彼得·林奇分析",
	"Generating Phil Fisher-style analysis":                  "正在生成菲利普·费雪风格分析",
	"Generating Stanley Druckenmiller analysis":              "正在生成斯坦利·德鲁肯米勒分析",
	"Generating Warren Buffett analysis":                     "正在生成沃伦·巴菲特分析",
	"Generating trading decisions":                           "正在生成交易决策",
	"Getting market cap":                                     "正在获取市值",
	"Performing Druckenmiller-style valuation":               "正在执行德鲁肯米勒风格估值",
	"Processing analyst signals":                             "正在处理分析师信号",
	"Statistical analysis":                                   "正在进行统计分析",
	"Warning: Insufficient price data":                       "警告：价格数据不足",
	"Warning: No price data found":                           "警告：未找到价格数据",
}

var agentVocab = map[string]string{
	"aswath_damodaran":      "阿斯瓦斯·达莫达兰",
	"ben_graham":            "本·格雷厄姆",
	"bill_ackman":           "比尔·阿克曼",
	"cathie_wood":           "凯茜·伍德",
	"charlie_munger":        "查理·芒格",
	"michael_burry":         "迈克尔·伯里",
	"mohnish_pabrai":        "莫尼什·帕布莱",
	"peter_lynch":           "彼得·林奇",
	"phil_fisher":           "菲利普·费雪",
	"rakesh_jhunjhunwala":   "拉凯什·琼君瓦拉",
	"stanley_druckenmiller": "斯坦利·德鲁肯米勒",
	"warren_buffett":        "沃伦·巴菲特",
	"technical_analyst":     "技术分析师",
	"fundamentals_analyst":  "基本面分析师",
	"sentiment_analyst":     "情绪分析师",
	"valuation_analyst":     "估值分析师",
	"risk_management":       "风险管理",
	"portfolio_manager":     "投资组合经理",
}

var signalVocab = map[string]string{
	"BULLISH": "看多",
	"BEARISH": "看空",
	"NEUTRAL": "中性",
}

var actionVocab = map[string]string{
	"BUY":   "买入",
	"SELL":  "卖出",
	"HOLD":  "观望",
	"SHORT": "做空",
	"COVER": "回补",
}

package ai

import "time"

// Profile 定义 AI 难度参数
type Profile struct {
	// ThinkDelay 各决策阶段之间的"思考"停顿，纯粹是节奏体验，
	// 不影响任何决策结果
	ThinkDelay time.Duration
	// ErrorRate 故意犯错的概率，取值 [0,1]
	ErrorRate float64
	// StrategyDepth 策略深度 1-3，控制出组与收牌的积极程度
	StrategyDepth int
}

// 内置难度预设
var (
	Easy   = Profile{ThinkDelay: 900 * time.Millisecond, ErrorRate: 0.35, StrategyDepth: 1}
	Medium = Profile{ThinkDelay: 600 * time.Millisecond, ErrorRate: 0.15, StrategyDepth: 2}
	Hard   = Profile{ThinkDelay: 300 * time.Millisecond, ErrorRate: 0.02, StrategyDepth: 3}
)

// profiles 难度名称映射表
var profiles = map[string]Profile{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
}

// ProfileByName 按名称查找难度预设
func ProfileByName(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

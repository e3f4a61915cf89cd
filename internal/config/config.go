package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 对局配置
type Config struct {
	Rules        RulesConfig                 `yaml:"rules"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
}

// RulesConfig 规则参数
type RulesConfig struct {
	FirstMeldMinimum int `yaml:"first_meld_minimum"` // 首次出牌最低分
	DealSize         int `yaml:"deal_size"`          // 起手牌张数
	TurnLimit        int `yaml:"turn_limit"`         // 单回合最大轮数（模拟保险）
}

// DifficultyConfig AI 难度参数
type DifficultyConfig struct {
	ThinkDelayMs  int     `yaml:"think_delay_ms"` // 决策阶段间停顿（毫秒）
	ErrorRate     float64 `yaml:"error_rate"`     // 犯错概率 [0,1]
	StrategyDepth int     `yaml:"strategy_depth"` // 策略深度 1-3
}

// ThinkDelayDuration 返回停顿时长
func (d *DifficultyConfig) ThinkDelayDuration() time.Duration {
	return time.Duration(d.ThinkDelayMs) * time.Millisecond
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 设置默认值
	if cfg.Rules.FirstMeldMinimum == 0 {
		cfg.Rules.FirstMeldMinimum = 40
	}
	if cfg.Rules.DealSize == 0 {
		cfg.Rules.DealSize = 13
	}
	if cfg.Rules.TurnLimit == 0 {
		cfg.Rules.TurnLimit = 200
	}
	if cfg.Difficulties == nil {
		cfg.Difficulties = Default().Difficulties
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			FirstMeldMinimum: 40,
			DealSize:         13,
			TurnLimit:        200,
		},
		Difficulties: map[string]DifficultyConfig{
			"easy":   {ThinkDelayMs: 900, ErrorRate: 0.35, StrategyDepth: 1},
			"medium": {ThinkDelayMs: 600, ErrorRate: 0.15, StrategyDepth: 2},
			"hard":   {ThinkDelayMs: 300, ErrorRate: 0.02, StrategyDepth: 3},
		},
	}
}

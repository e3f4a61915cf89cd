package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jolly-game/jolly/internal/config"
	"github.com/jolly-game/jolly/internal/game/ai"
	"github.com/jolly-game/jolly/internal/game/sim"
	"github.com/jolly-game/jolly/internal/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	seed := flag.Uint64("seed", 1, "随机种子，同一种子完整复现同一批对局")
	rounds := flag.Int("rounds", 100, "模拟局数")
	ai1 := flag.String("ai1", "medium", "玩家 1 难度 (easy/medium/hard)")
	ai2 := flag.String("ai2", "medium", "玩家 2 难度 (easy/medium/hard)")
	verbose := flag.Bool("v", false, "输出决策调试日志")
	flag.Parse()

	if err := logger.Init(*verbose); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Warn("加载配置文件失败，使用默认配置")
		cfg = config.Default()
	}

	profiles := [2]ai.Profile{}
	for i, name := range []string{*ai1, *ai2} {
		p, err := resolveProfile(cfg, name)
		if err != nil {
			log.Fatalf("无效难度 %q: %v", name, err)
		}
		profiles[i] = p
	}

	wins := [2]int{}
	points := [2]int{}
	drawn := 0
	for i := 0; i < *rounds; i++ {
		res, err := sim.Play(context.Background(), sim.Options{
			Seed:             *seed + uint64(i),
			FirstMeldMinimum: cfg.Rules.FirstMeldMinimum,
			DealSize:         cfg.Rules.DealSize,
			TurnLimit:        cfg.Rules.TurnLimit,
			Profiles:         profiles,
		})
		if err != nil {
			logrus.WithError(err).Error("模拟失败")
			os.Exit(1)
		}
		if res.EndedBy >= 0 {
			wins[res.EndedBy]++
		} else {
			drawn++
		}
		points[0] += res.Penalty[0]
		points[1] += res.Penalty[1]
	}

	fmt.Printf("共 %d 局（种子 %d）\n", *rounds, *seed)
	fmt.Printf("玩家 1（%s）：收牌 %d 局，累计罚分 %d\n", *ai1, wins[0], points[0])
	fmt.Printf("玩家 2（%s）：收牌 %d 局，累计罚分 %d\n", *ai2, wins[1], points[1])
	fmt.Printf("流局：%d\n", drawn)
}

// resolveProfile 先查配置文件中的难度，再退回内置预设
func resolveProfile(cfg *config.Config, name string) (ai.Profile, error) {
	if d, ok := cfg.Difficulties[name]; ok {
		return ai.Profile{
			ThinkDelay:    d.ThinkDelayDuration(),
			ErrorRate:     d.ErrorRate,
			StrategyDepth: d.StrategyDepth,
		}, nil
	}
	if p, ok := ai.ProfileByName(name); ok {
		return p, nil
	}
	return ai.Profile{}, fmt.Errorf("未知难度")
}

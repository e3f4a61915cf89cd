// Package sim 提供无界面的 AI 对 AI 回合模拟，
// 用于集成测试、难度平衡和可复现的回放。
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/jolly-game/jolly/internal/game/ai"
	"github.com/jolly-game/jolly/internal/game/card"
	"github.com/jolly-game/jolly/internal/game/rule"
)

// Options 一局模拟的参数
type Options struct {
	Seed             uint64
	FirstMeldMinimum int
	DealSize         int
	TurnLimit        int
	Profiles         [2]ai.Profile
	Log              logrus.FieldLogger
}

// Result 一局模拟的结果
type Result struct {
	// EndedBy 收牌结束回合的玩家，-1 表示轮数耗尽或流局
	EndedBy int
	Turns   int
	// Penalty 双方回合结束时的手牌罚分
	Penalty [2]int
	// TableMelds 桌面上最终的牌组数
	TableMelds int
}

// Play 用同一个种子完整复现一局：发牌、轮流执行 AI 回合、
// 弃牌区回收洗入，直到有人收牌或达到轮数上限。
// 每一轮结束后校验 60 张牌一张不多一张不少。
func Play(ctx context.Context, opts Options) (Result, error) {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed<<1|1))

	deck := card.NewDeck(rng)
	discard := &card.DiscardRow{}
	table := &rule.Table{}

	hands := [2]*card.Hand{card.NewHand(), card.NewHand()}
	players := [2]*ai.Strategy{}
	for p := 0; p < 2; p++ {
		for i := 0; i < opts.DealSize; i++ {
			c, err := deck.Draw()
			if err != nil {
				return Result{}, fmt.Errorf("发牌失败: %w", err)
			}
			hands[p].Add(c)
		}
		hands[p].Sort()
		players[p] = ai.New(p, hands[p], opts.Profiles[p], opts.FirstMeldMinimum, rng)
		players[p].SetPacer(ai.Immediate)
		players[p].SetLogger(opts.Log)
	}

	res := Result{EndedBy: -1}
	hasMelded := [2]bool{}

	for turn := 0; turn < opts.TurnLimit; turn++ {
		p := turn % 2

		// 牌堆摸空时回收弃牌区（顶牌保留）重新洗入
		if deck.Empty() {
			below := discard.TakeAllBelowTop()
			if len(below) == 0 {
				opts.Log.WithField("turn", turn).Info("draw pile and discard row exhausted, round drawn")
				break
			}
			deck.PutBack(below)
			opts.Log.WithField("cards", len(below)).Debug("reshuffled discard row into deck")
		}

		turnRes, err := players[p].TakeTurn(ctx, deck, discard, table, hasMelded[p])
		if err != nil {
			return Result{}, fmt.Errorf("玩家 %d 第 %d 轮执行失败: %w", p, turn, err)
		}
		if len(turnRes.MeldsLaid) > 0 {
			hasMelded[p] = true
		}

		res.Turns = turn + 1
		if err := verifyConservation(deck, hands, discard, table, turnRes); err != nil {
			return Result{}, err
		}

		if turnRes.Action == ai.ActionEndRound {
			res.EndedBy = p
			break
		}
		discard.Push(turnRes.Card)
	}

	res.Penalty[0] = rule.HandPoints(hands[0].Cards())
	res.Penalty[1] = rule.HandPoints(hands[1].Cards())
	res.TableMelds = table.Len()
	return res, nil
}

// verifyConservation 校验全部区域的牌数总和恒为 60。
// 弃牌动作此刻尚未落地，弃出的那张牌单独计入。
func verifyConservation(deck *card.Deck, hands [2]*card.Hand, discard *card.DiscardRow, table *rule.Table, turnRes ai.TurnResult) error {
	total := deck.Len() + hands[0].Len() + hands[1].Len() + discard.Len() + len(table.Cards())
	if turnRes.Action == ai.ActionDiscard {
		total++
	}
	if total != card.DeckSize {
		return fmt.Errorf("牌数不守恒: 共 %d 张，应为 %d 张", total, card.DeckSize)
	}
	return nil
}

package ai

import (
	"context"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/jolly-game/jolly/internal/game/card"
	"github.com/jolly-game/jolly/internal/game/rule"
)

// Action 定义一次回合的收尾动作
type Action int

const (
	ActionDiscard  Action = iota // 弃一张牌
	ActionEndRound               // 收牌结束回合（Zudrehen）
)

func (a Action) String() string {
	if a == ActionEndRound {
		return "EndRound"
	}
	return "Discard"
}

// TurnResult 一次回合的决策结果，由控制器负责落地：
// 弃牌入弃牌区、翻转回合标记、结算收牌。
type TurnResult struct {
	Action    Action
	Card      card.Card // 弃出的牌，EndRound 时为零值
	MeldsLaid []rule.Meld
}

// Strategy 定义一名 AI 玩家的回合决策管线。
//
// 管线分四个阶段：摸牌来源、出组、收牌判定、弃牌，单趟执行，
// 阶段之间不回溯。各阶段之间通过 Pacer 停顿，停顿期间调用方
// 必须保证没有其他人改动共享的牌堆/桌面/弃牌区。
// 随机源显式注入，同一种子的决策序列完全可复现。
type Strategy struct {
	Player       int
	Profile      Profile
	FirstMeldMin int

	hand  *card.Hand
	rng   *rand.Rand
	pacer Pacer
	log   logrus.FieldLogger
}

// New 创建 AI 策略。rng 不可为 nil；停顿时长取自难度参数。
func New(player int, hand *card.Hand, profile Profile, firstMeldMin int, rng *rand.Rand) *Strategy {
	return &Strategy{
		Player:       player,
		Profile:      profile,
		FirstMeldMin: firstMeldMin,
		hand:         hand,
		rng:          rng,
		pacer:        NewPacer(profile.ThinkDelay),
		log:          logrus.StandardLogger().WithField("player", player),
	}
}

// SetPacer 替换停顿实现，测试与模拟传入 Immediate
func (s *Strategy) SetPacer(p Pacer) {
	s.pacer = p
}

// SetLogger 替换日志输出
func (s *Strategy) SetLogger(log logrus.FieldLogger) {
	s.log = log.WithField("player", s.Player)
}

// Hand 返回该玩家的手牌
func (s *Strategy) Hand() *card.Hand {
	return s.hand
}

// TakeTurn 执行一个完整回合。摸进的牌直接进入手牌，打出的
// 牌组直接上桌；弃牌与收牌通过 TurnResult 交由控制器落地。
// 整个回合期间调用方必须独占共享的对局状态。
func (s *Strategy) TakeTurn(ctx context.Context, deck *card.Deck, discard *card.DiscardRow, table *rule.Table, hasMelded bool) (TurnResult, error) {
	// 阶段一：摸牌
	if err := s.pacer.Wait(ctx); err != nil {
		return TurnResult{}, err
	}
	if err := s.draw(deck, discard, hasMelded); err != nil {
		return TurnResult{}, err
	}

	// 阶段二：出组
	if err := s.pacer.Wait(ctx); err != nil {
		return TurnResult{}, err
	}
	laid := s.layMelds(table, hasMelded)

	// 阶段三：收牌判定
	if s.canEndRound(table) {
		s.log.WithField("held", s.hand.String()).Debug("ending round")
		return TurnResult{Action: ActionEndRound, MeldsLaid: laid}, nil
	}

	// 阶段四：弃牌
	if err := s.pacer.Wait(ctx); err != nil {
		return TurnResult{}, err
	}
	out := s.chooseDiscard()
	s.hand.Remove(out)
	s.log.WithField("card", out.String()).Debug("discarding")
	return TurnResult{Action: ActionDiscard, Card: out, MeldsLaid: laid}, nil
}

// draw 决定摸牌来源并摸牌。未出过组的玩家只能摸牌堆；出过组
// 后，按错误率随机选择来源，否则仅当弃牌区顶牌能严格增加可发
// 现的牌组数时才摸弃牌区。
func (s *Strategy) draw(deck *card.Deck, discard *card.DiscardRow, hasMelded bool) error {
	fromDiscard := false
	if hasMelded && discard.Len() > 0 {
		if s.rng.Float64() < s.Profile.ErrorRate {
			fromDiscard = s.rng.IntN(2) == 0
		} else {
			top, _ := discard.Top()
			withTop := append(s.hand.Cards(), top)
			fromDiscard = len(rule.FindMelds(withTop)) > len(rule.FindMelds(s.hand.Cards()))
		}
	}

	if fromDiscard {
		c, _ := discard.TakeTop()
		s.hand.Add(c)
		s.log.WithField("card", c.String()).Debug("drew from discard row")
		return nil
	}
	c, err := deck.Draw()
	if err != nil {
		return err
	}
	s.hand.Add(c)
	s.log.Debug("drew from deck")
	return nil
}

// layMelds 出组决策。未出过组时寻找达到首次出牌门槛的最小
// 牌组子集；出过组后，策略深度 ≥2 才会把发现的牌组全部打出。
func (s *Strategy) layMelds(table *rule.Table, hasMelded bool) []rule.Meld {
	found := rule.FindMelds(s.hand.Cards())
	if len(found) == 0 {
		return nil
	}

	var lay []rule.Meld
	if !hasMelded {
		lay = firstMeldSubset(found, s.FirstMeldMin)
	} else if s.Profile.StrategyDepth >= 2 {
		lay = found
	}

	for i := range lay {
		lay[i].Owner = s.Player
		for _, c := range lay[i].Cards {
			s.hand.Remove(c)
		}
		table.Add(lay[i])
		s.log.WithField("meld", lay[i].String()).Debug("laying meld")
	}
	return lay
}

// firstMeldSubset 按子集大小递增搜索第一个总分达标的牌组子集。
// 牌组数量最多只有手牌张数的三分之一，组合数很小。
func firstMeldSubset(melds []rule.Meld, minimum int) []rule.Meld {
	for k := 1; k <= len(melds); k++ {
		if subset := pickSubset(melds, nil, 0, k, minimum); subset != nil {
			return subset
		}
	}
	return nil
}

// pickSubset 递归枚举大小为 k 的组合，返回第一个达标的
func pickSubset(melds, chosen []rule.Meld, start, k, minimum int) []rule.Meld {
	if k == 0 {
		if rule.MeetsFirstMeld(chosen, minimum) {
			out := make([]rule.Meld, len(chosen))
			copy(out, chosen)
			return out
		}
		return nil
	}
	for i := start; i <= len(melds)-k; i++ {
		if subset := pickSubset(melds, append(chosen, melds[i]), i+1, k-1, minimum); subset != nil {
			return subset
		}
	}
	return nil
}

// canEndRound 收牌判定：策略深度 ≥2，手里恰好剩一张非 Jolly，
// 且这张牌续不进桌面上任何牌组（包括自己刚打出的）。
// 手牌全部打空也视为回合结束。
func (s *Strategy) canEndRound(table *rule.Table) bool {
	if s.hand.Len() == 0 {
		return true
	}
	if s.Profile.StrategyDepth < 2 {
		return false
	}
	if s.hand.Len() != 1 {
		return false
	}
	last := s.hand.At(0)
	if last.Joker {
		return false
	}
	for _, m := range table.Melds() {
		if rule.CanExtendMeld(*m, last) {
			return false
		}
	}
	return true
}

// chooseDiscard 弃牌决策：按错误率随机弃牌，否则交给规则引擎推荐
func (s *Strategy) chooseDiscard() card.Card {
	if s.rng.Float64() < s.Profile.ErrorRate {
		return s.hand.At(s.rng.IntN(s.hand.Len()))
	}
	return rule.SuggestDiscard(s.hand.Cards())
}

package rule

import (
	"slices"

	"github.com/jolly-game/jolly/internal/game/card"
)

// 本包实现规则引擎：全部为无状态纯函数，只读取传入的牌，
// 不持有任何内部状态，可以安全地重复调用。

const (
	minSetSize      = 3
	maxSetSize      = 4 // 同一点数最多 4 种花色
	minSequenceSize = 3

	lowAceValue  = 1
	highAceValue = 14
)

// rankValue 返回顺子判定用的点数值，highAce 时 A 按 14 计
func rankValue(c card.Card, highAce bool) int {
	if highAce && c.Rank == card.RankA {
		return highAceValue
	}
	return c.Value()
}

// IsValidSet 判断是否为合法的同点数组：3-4 张，至少一张非 Jolly，
// 所有非 Jolly 点数相同。花色允许重复（规则变体决定，见 DESIGN.md）。
func IsValidSet(cards []card.Card) bool {
	if len(cards) < minSetSize || len(cards) > maxSetSize {
		return false
	}
	rank := card.NoRank
	nonJokers := 0
	for _, c := range cards {
		if c.Joker {
			continue
		}
		nonJokers++
		if rank == card.NoRank {
			rank = c.Rank
		} else if c.Rank != rank {
			return false
		}
	}
	return nonJokers > 0
}

// IsValidSequence 判断是否为合法顺子：≥3 张，至少一张非 Jolly，
// 非 Jolly 同花色、点数值互不重复，且 Jolly 张数足以填满相邻
// 点数值之间的空档。A 可按 1 或 14 计，任一解释成立即合法。
func IsValidSequence(cards []card.Card) bool {
	return sequenceFits(cards, false) || sequenceFits(cards, true)
}

// sequenceFits 在给定的 A 解释下检查顺子
func sequenceFits(cards []card.Card, highAce bool) bool {
	if len(cards) < minSequenceSize {
		return false
	}

	jokers := 0
	suit := card.NoSuit
	var values []int
	for _, c := range cards {
		if c.Joker {
			jokers++
			continue
		}
		if suit == card.NoSuit {
			suit = c.Suit
		} else if c.Suit != suit {
			return false
		}
		values = append(values, rankValue(c, highAce))
	}
	if len(values) == 0 {
		return false
	}

	slices.Sort(values)
	gaps := 0
	for i := 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		if d == 0 {
			return false
		}
		gaps += d - 1
	}
	return jokers >= gaps
}

// IsPureSequence 判断是否为不含 Jolly 的纯顺
func IsPureSequence(cards []card.Card) bool {
	return countJokers(cards) == 0 && IsValidSequence(cards)
}

// IsHighAceSequence 启发式判断顺子是否按高 A 计分：
// 非 Jolly 中同时有 A 和 K 且没有 2。只用于计分消歧，不做完整校验。
func IsHighAceSequence(cards []card.Card) bool {
	hasAce, hasKing, hasTwo := false, false, false
	for _, c := range cards {
		switch c.Rank {
		case card.RankA:
			hasAce = true
		case card.RankK:
			hasKing = true
		case card.Rank2:
			hasTwo = true
		}
	}
	return hasAce && hasKing && !hasTwo
}

// CanExtendMeld 判断往牌组续上 c 之后是否仍然合法
func CanExtendMeld(m Meld, c card.Card) bool {
	extended := make([]card.Card, 0, len(m.Cards)+1)
	extended = append(extended, m.Cards...)
	extended = append(extended, c)

	switch m.Kind {
	case Set:
		return IsValidSet(extended)
	case Sequence:
		return IsValidSequence(extended)
	}
	return false
}

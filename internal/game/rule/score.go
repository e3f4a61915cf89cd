package rule

import (
	"math"

	"github.com/jolly-game/jolly/internal/game/card"
)

// 两套互不相干的分值表：牌组分用于首次出牌门槛，
// 手牌分用于回合结束时的罚分。不要混用。
const (
	meldPointLow  = 5  // 2-9 以及低位 A
	meldPointHigh = 10 // 10/J/Q/K 以及高位 A
	threeAceBonus = 25 // 纯三 A 组固定加成

	handPointLow   = 5  // 2-9
	handPointMid   = 10 // 10/J/Q/K
	handPointAce   = 15 // A
	handPointJoker = 25 // Jolly
)

// DefaultFirstMeldMinimum 首次出牌的默认最低分
const DefaultFirstMeldMinimum = 40

// meldCardPoints 返回单张牌在牌组中的分值，Jolly 另行估算
func meldCardPoints(c card.Card, highAce bool) int {
	if c.Rank == card.RankA {
		if highAce {
			return meldPointHigh
		}
		return meldPointLow
	}
	if c.Value() >= 10 {
		return meldPointHigh
	}
	return meldPointLow
}

// estimateJokerValue 估算 Jolly 在牌组中的分值：
// 非 Jolly 牌分值的平均数，四舍五入
func estimateJokerValue(cards []card.Card, highAce bool) int {
	sum, n := 0, 0
	for _, c := range cards {
		if c.Joker {
			continue
		}
		sum += meldCardPoints(c, highAce)
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// MeldPoints 计算牌组的分值。纯三 A 组固定记 threeAceBonus，
// 高 A 顺中的 A 按高分计，Jolly 按其余牌的平均分估算。
func MeldPoints(m Meld) int {
	if isThreeAceSet(m) {
		return threeAceBonus
	}

	highAce := m.Kind == Sequence && IsHighAceSequence(m.Cards)
	jokerValue := estimateJokerValue(m.Cards, highAce)

	points := 0
	for _, c := range m.Cards {
		if c.Joker {
			points += jokerValue
			continue
		}
		points += meldCardPoints(c, highAce)
	}
	return points
}

// isThreeAceSet 判断是否为不含 Jolly 的三张 A 组
func isThreeAceSet(m Meld) bool {
	if m.Kind != Set || len(m.Cards) != 3 {
		return false
	}
	for _, c := range m.Cards {
		if c.Joker || c.Rank != card.RankA {
			return false
		}
	}
	return true
}

// MeetsFirstMeld 判断一批牌组的总分是否达到首次出牌门槛
func MeetsFirstMeld(melds []Meld, minimum int) bool {
	total := 0
	for _, m := range melds {
		total += MeldPoints(m)
	}
	return total >= minimum
}

// HandCardPoints 返回单张牌的罚分
func HandCardPoints(c card.Card) int {
	switch {
	case c.Joker:
		return handPointJoker
	case c.Rank == card.RankA:
		return handPointAce
	case c.Value() >= 10:
		return handPointMid
	default:
		return handPointLow
	}
}

// HandPoints 计算回合结束时留在手里的牌的总罚分
func HandPoints(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += HandCardPoints(c)
	}
	return total
}

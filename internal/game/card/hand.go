package card

import (
	"slices"
	"strings"
)

// Hand 定义一名玩家的手牌。规则上无序，界面上保持插入顺序，
// 可随时调用 Sort 重新整理。
type Hand struct {
	cards []Card
}

// NewHand 创建手牌
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, 16)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add 加入一张牌
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Remove 按实体身份移除一张牌，不在手牌中时返回 false
func (h *Hand) Remove(c Card) bool {
	for i := range h.cards {
		if h.cards[i].Same(c) {
			h.cards = slices.Delete(h.cards, i, i+1)
			return true
		}
	}
	return false
}

// Contains 手牌中是否有这张牌
func (h *Hand) Contains(c Card) bool {
	for i := range h.cards {
		if h.cards[i].Same(c) {
			return true
		}
	}
	return false
}

// Cards 返回手牌快照
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// At 返回第 i 张牌
func (h *Hand) At(i int) Card {
	return h.cards[i]
}

// Len 返回手牌张数
func (h *Hand) Len() int {
	return len(h.cards)
}

// Sort 整理手牌：按花色优先级，再按点数，Jolly 排在最后
func (h *Hand) Sort() {
	slices.SortStableFunc(h.cards, func(a, b Card) int {
		if a.Joker != b.Joker {
			if a.Joker {
				return 1
			}
			return -1
		}
		if a.Suit != b.Suit {
			return int(a.Suit) - int(b.Suit)
		}
		return a.Value() - b.Value()
	})
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

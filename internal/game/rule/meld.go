package rule

import (
	"strings"

	"github.com/jolly-game/jolly/internal/game/card"
)

// Kind 定义牌组类型
type Kind int

const (
	Set      Kind = iota // 同点数组（3-4 张）
	Sequence             // 同花色顺子（≥3 张）
)

// kindNames 牌组类型名称映射表
var kindNames = map[Kind]string{
	Set:      "Set",
	Sequence: "Sequence",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// Meld 定义一个已成型的牌组。放上桌后归属于打出它的玩家，
// 但双方都可以往上续牌；牌组一旦上桌不会再被拆散。
type Meld struct {
	Kind  Kind
	Cards []card.Card
	Owner int
	Pure  bool // 仅对 Sequence 有意义：不含 Jolly 的纯顺
}

// NewMeld 创建牌组并计算 Pure 标记
func NewMeld(kind Kind, cards []card.Card, owner int) Meld {
	m := Meld{Kind: kind, Cards: cards, Owner: owner}
	m.Pure = kind == Sequence && countJokers(cards) == 0
	return m
}

// Extend 往牌组末尾续一张牌。调用方需先用 CanExtendMeld 校验。
func (m *Meld) Extend(c card.Card) {
	m.Cards = append(m.Cards, c)
	if c.Joker {
		m.Pure = false
	}
}

// Size 返回牌组张数
func (m *Meld) Size() int {
	return len(m.Cards)
}

func (m Meld) String() string {
	parts := make([]string, len(m.Cards))
	for i, c := range m.Cards {
		parts[i] = c.String()
	}
	return m.Kind.String() + "[" + strings.Join(parts, " ") + "]"
}

// Table 定义桌面上的公共牌组区。只增不减：
// 新牌组追加，已有牌组只能原地续牌。
type Table struct {
	melds []*Meld
}

// Add 将牌组放上桌，返回上桌后的引用
func (t *Table) Add(m Meld) *Meld {
	placed := &m
	t.melds = append(t.melds, placed)
	return placed
}

// Melds 返回桌面上的全部牌组
func (t *Table) Melds() []*Meld {
	return t.melds
}

// Len 返回桌面牌组数
func (t *Table) Len() int {
	return len(t.melds)
}

// Cards 返回桌面上所有牌的快照，仅用于完整性校验
func (t *Table) Cards() []card.Card {
	var out []card.Card
	for _, m := range t.melds {
		out = append(out, m.Cards...)
	}
	return out
}

// countJokers 统计 Jolly 张数
func countJokers(cards []card.Card) int {
	n := 0
	for _, c := range cards {
		if c.Joker {
			n++
		}
	}
	return n
}

package card

import (
	"strconv"

	"github.com/google/uuid"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

const (
	Spades Suit = iota // 黑桃
	Hearts             // 红心
	Diamonds           // 方块
	Clubs              // 梅花
	NoSuit             // Jolly 无花色
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	NoSuit:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	NoRank Rank = iota // Jolly 无点数
	RankA
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankA:  "A",
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card 定义一张牌。每张实体牌都有唯一 ID，因此八张 Jolly 也互相可区分。
// Card 创建后不可变。
type Card struct {
	ID    uuid.UUID
	Suit  Suit
	Rank  Rank
	Joker bool
}

// NewCard 创建一张普通牌
func NewCard(suit Suit, rank Rank) Card {
	return Card{ID: uuid.New(), Suit: suit, Rank: rank}
}

// NewJoker 创建一张 Jolly（百搭牌）
func NewJoker() Card {
	return Card{ID: uuid.New(), Suit: NoSuit, Rank: NoRank, Joker: true}
}

// Same 按实体身份比较两张牌，同点数同花色的两张实体牌不相等
func (c Card) Same(other Card) bool {
	return c.ID == other.ID
}

// Value 返回点数值：A=1，J=11，Q=12，K=13，Jolly 为 0
func (c Card) Value() int {
	return int(c.Rank)
}

func (c Card) String() string {
	if c.Joker {
		return "JOLLY"
	}
	return c.Rank.String() + c.Suit.String()
}

package card

import (
	"errors"
	"math/rand/v2"
)

// DeckSize 一副牌的总张数：52 张普通牌 + 8 张 Jolly
const DeckSize = 60

// ErrEmptyDeck 牌堆已摸空
var ErrEmptyDeck = errors.New("牌堆已空")

// Deck 定义一副牌。洗牌使用显式注入的随机源，
// 同一种子的对局可以完整复现。
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck 构建完整的 60 张牌并洗牌
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for s := Spades; s <= Clubs; s++ {
		for r := RankA; r <= RankK; r++ {
			cards = append(cards, NewCard(s, r))
		}
	}
	for i := 0; i < 8; i++ {
		cards = append(cards, NewJoker())
	}

	d := &Deck{cards: cards, rng: rng}
	d.Shuffle()
	return d
}

// NewDeckFrom 按给定顺序构建牌堆，不洗牌，供测试和残局复原使用
func NewDeckFrom(rng *rand.Rand, cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards)), rng: rng}
	copy(d.cards, cards)
	return d
}

// Shuffle 无偏洗牌（Fisher–Yates）
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw 从牌堆顶摸一张牌（移除并返回最后一张）
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// PutBack 将一批牌放回牌堆并重新洗牌，用于弃牌区回收
func (d *Deck) PutBack(cards []Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// Len 返回剩余张数
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty 牌堆是否已空
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards 返回牌堆快照，仅用于完整性校验
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

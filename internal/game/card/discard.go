package card

// DiscardRow 定义弃牌区。弃牌区是一排可见的牌，
// 最顶端（最后弃出）的一张可以被摸走。
type DiscardRow struct {
	cards []Card
}

// Push 弃出一张牌，成为新的顶牌
func (r *DiscardRow) Push(c Card) {
	r.cards = append(r.cards, c)
}

// Top 查看顶牌
func (r *DiscardRow) Top() (Card, bool) {
	if len(r.cards) == 0 {
		return Card{}, false
	}
	return r.cards[len(r.cards)-1], true
}

// TakeTop 摸走顶牌
func (r *DiscardRow) TakeTop() (Card, bool) {
	if len(r.cards) == 0 {
		return Card{}, false
	}
	top := r.cards[len(r.cards)-1]
	r.cards = r.cards[:len(r.cards)-1]
	return top, true
}

// TakeAllBelowTop 取走顶牌以下的全部弃牌，用于牌堆摸空后的回收洗入。
// 顶牌保留在弃牌区。
func (r *DiscardRow) TakeAllBelowTop() []Card {
	if len(r.cards) <= 1 {
		return nil
	}
	below := make([]Card, len(r.cards)-1)
	copy(below, r.cards[:len(r.cards)-1])
	r.cards = r.cards[len(r.cards)-1:]
	return below
}

// Len 返回弃牌区张数
func (r *DiscardRow) Len() int {
	return len(r.cards)
}

// Cards 返回弃牌区快照
func (r *DiscardRow) Cards() []Card {
	out := make([]Card, len(r.cards))
	copy(out, r.cards)
	return out
}

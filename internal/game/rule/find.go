package rule

import (
	"slices"

	"github.com/google/uuid"

	"github.com/jolly-game/jolly/internal/game/card"
)

// candidate 一个候选牌组。layout 中零值 Card（ID 为 Nil）表示
// 该位置需要一张 Jolly 补位，具体由哪张 Jolly 补在接受时才确定。
type candidate struct {
	kind   Kind
	layout []card.Card
}

func (c candidate) size() int {
	return len(c.layout)
}

// FindMelds 在一副手牌中发现互不重叠的牌组。
//
// 贪心覆盖：候选牌组按张数从大到小枚举，张数相同时顺子优先于
// 同点数组，所有牌都未被占用的候选才被接受。结果是极大覆盖而
// 非全局最优覆盖，枚举顺序固定，因此结果确定。
//
// 候选生成不枚举手牌的幂集：同点数组按点数分组后在组内（至多
// 4 张）取组合，顺子按花色逐值扫描窗口并跟踪 Jolly 预算，
// 整体接近线性。
func FindMelds(cards []card.Card) []Meld {
	var jokers []card.Card
	for _, c := range cards {
		if c.Joker {
			jokers = append(jokers, c)
		}
	}

	cands := sequenceCandidates(cards, len(jokers))
	cands = append(cands, setCandidates(cards, len(jokers))...)

	// 张数降序，同张数时顺子在前，其余保持生成顺序
	slices.SortStableFunc(cands, func(a, b candidate) int {
		if a.size() != b.size() {
			return b.size() - a.size()
		}
		if a.kind != b.kind {
			if a.kind == Sequence {
				return -1
			}
			return 1
		}
		return 0
	})

	claimed := make(map[uuid.UUID]bool)
	var melds []Meld
	for _, cand := range cands {
		if m, ok := accept(cand, claimed, &jokers); ok {
			melds = append(melds, m)
		}
	}
	return melds
}

// accept 尝试接受一个候选。顺子候选中已被占用的牌可以临时改由
// Jolly 顶替；同点数组的占用冲突直接放弃（组内组合另有候选）。
// 成功时把用到的牌标记为已占用并消耗相应的 Jolly。
func accept(cand candidate, claimed map[uuid.UUID]bool, jokers *[]card.Card) (Meld, bool) {
	jokersNeeded := 0
	naturals := 0
	for _, c := range cand.layout {
		switch {
		case c.ID == uuid.Nil:
			jokersNeeded++
		case claimed[c.ID]:
			if cand.kind == Set {
				return Meld{}, false
			}
			jokersNeeded++
		default:
			naturals++
		}
	}
	if naturals == 0 || jokersNeeded > len(*jokers) {
		return Meld{}, false
	}

	meldCards := make([]card.Card, 0, cand.size())
	for _, c := range cand.layout {
		if c.ID == uuid.Nil || claimed[c.ID] {
			meldCards = append(meldCards, (*jokers)[0])
			*jokers = (*jokers)[1:]
			continue
		}
		claimed[c.ID] = true
		meldCards = append(meldCards, c)
	}
	return NewMeld(cand.kind, meldCards, 0), true
}

// sequenceCandidates 按花色扫描窗口生成所有顺子候选。
// A 作 1 和作 14 各参与一遍，值 14 的窗口只在高 A 下出现，
// 避免重复候选。
func sequenceCandidates(cards []card.Card, jokerBudget int) []candidate {
	var cands []candidate
	for suit := card.Spades; suit <= card.Clubs; suit++ {
		byValue := make(map[int]card.Card)
		for _, c := range cards {
			if c.Joker || c.Suit != suit {
				continue
			}
			byValue[c.Value()] = c
			if c.Rank == card.RankA {
				byValue[highAceValue] = c
			}
		}
		if len(byValue) == 0 {
			continue
		}

		for start := lowAceValue; start <= highAceValue-minSequenceSize+1; start++ {
			for end := start + minSequenceSize - 1; end <= highAceValue; end++ {
				// A 不能同时按 1 和 14 计入同一个窗口
				if start == lowAceValue && end == highAceValue {
					continue
				}
				layout := make([]card.Card, 0, end-start+1)
				present := 0
				for v := start; v <= end; v++ {
					if c, ok := byValue[v]; ok {
						layout = append(layout, c)
						present++
					} else {
						layout = append(layout, card.Card{})
					}
				}
				missing := len(layout) - present
				if present == 0 || missing > jokerBudget {
					continue
				}
				cands = append(cands, candidate{kind: Sequence, layout: layout})
			}
		}
	}
	return cands
}

// setCandidates 按点数分组生成同点数组候选。每个点数组内最多
// 4 张牌，组合数极小；实牌多的组合先生成，贪心因此优先用实牌。
func setCandidates(cards []card.Card, jokerBudget int) []candidate {
	byRank := make(map[card.Rank][]card.Card)
	for _, c := range cards {
		if c.Joker {
			continue
		}
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}

	var cands []candidate
	for rank := card.RankA; rank <= card.RankK; rank++ {
		group := byRank[rank]
		if len(group) == 0 {
			continue
		}
		slices.SortStableFunc(group, func(a, b card.Card) int {
			return int(a.Suit) - int(b.Suit)
		})
		for size := maxSetSize; size >= minSetSize; size-- {
			for use := min(len(group), size); use >= 1; use-- {
				need := size - use
				if need > jokerBudget {
					continue
				}
				for _, combo := range combinations(group, use) {
					layout := make([]card.Card, 0, size)
					layout = append(layout, combo...)
					for i := 0; i < need; i++ {
						layout = append(layout, card.Card{})
					}
					cands = append(cands, candidate{kind: Set, layout: layout})
				}
			}
		}
	}
	return cands
}

// combinations 返回 group 中所有大小为 k 的组合，保持元素顺序
func combinations(group []card.Card, k int) [][]card.Card {
	if k <= 0 || k > len(group) {
		return nil
	}
	var out [][]card.Card
	var rec func(start int, chosen []card.Card)
	rec = func(start int, chosen []card.Card) {
		if len(chosen) == k {
			combo := make([]card.Card, k)
			copy(combo, chosen)
			out = append(out, combo)
			return
		}
		for i := start; i <= len(group)-(k-len(chosen)); i++ {
			rec(i+1, append(chosen, group[i]))
		}
	}
	rec(0, nil)
	return out
}

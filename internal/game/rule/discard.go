package rule

import (
	"github.com/google/uuid"

	"github.com/jolly-game/jolly/internal/game/card"
)

// SuggestDiscard 推荐一张弃牌。先找出未被任何已发现牌组覆盖的
// 牌，弃其中罚分最高的非 Jolly（Jolly 尽量留在手里）；若手牌已
// 全部成组，则牺牲最小牌组的第一张。cards 至少要有一张牌。
func SuggestDiscard(cards []card.Card) card.Card {
	melds := FindMelds(cards)

	covered := make(map[uuid.UUID]bool)
	for _, m := range melds {
		for _, c := range m.Cards {
			covered[c.ID] = true
		}
	}

	var uncovered []card.Card
	for _, c := range cards {
		if !covered[c.ID] {
			uncovered = append(uncovered, c)
		}
	}

	// 未成组的牌中弃罚分最高的非 Jolly
	best := -1
	for i, c := range uncovered {
		if c.Joker {
			continue
		}
		if best < 0 || HandCardPoints(c) > HandCardPoints(uncovered[best]) {
			best = i
		}
	}
	if best >= 0 {
		return uncovered[best]
	}

	// 手牌全部成组（或只剩 Jolly 散牌）：牺牲最小牌组的第一张
	smallest := -1
	for i, m := range melds {
		if smallest < 0 || m.Size() < melds[smallest].Size() {
			smallest = i
		}
	}
	if smallest >= 0 {
		return melds[smallest].Cards[0]
	}

	// 手里只有 Jolly，没有任何牌组可弃：只能弃 Jolly
	return uncovered[0]
}

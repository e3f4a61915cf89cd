package rule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jolly-game/jolly/internal/game/card"
)

// assertNoOverlap 校验发现的牌组之间没有共享任何一张实体牌
func assertNoOverlap(t *testing.T, melds []Meld) {
	t.Helper()
	seen := make(map[uuid.UUID]bool)
	for _, m := range melds {
		for _, c := range m.Cards {
			assert.False(t, seen[c.ID], "card %s appears in two melds", c)
			seen[c.ID] = true
		}
	}
}

func TestFindMeldsEmptyHand(t *testing.T) {
	t.Parallel()
	assert.Empty(t, FindMelds(nil))
	assert.Empty(t, FindMelds([]card.Card{mk(card.Rank5, card.Spades), mk(card.Rank9, card.Hearts)}))
}

func TestFindMeldsPrefersSequenceOverSet(t *testing.T) {
	t.Parallel()

	seven := mk(card.Rank7, card.Spades)
	hand := []card.Card{
		seven,
		mk(card.Rank8, card.Spades),
		mk(card.Rank9, card.Spades),
		mk(card.Rank7, card.Hearts),
		mk(card.Rank7, card.Diamonds),
	}

	melds := FindMelds(hand)
	require.Len(t, melds, 1)
	assert.Equal(t, Sequence, melds[0].Kind)
	assert.True(t, melds[0].Cards[0].Same(seven), "the shared card goes to the sequence")
	assertNoOverlap(t, melds)
}

func TestFindMeldsNonOverlappingCover(t *testing.T) {
	t.Parallel()

	// 5♠ 同时是顺子和同点数组的材料，顺子拿走它之后
	// 剩下的三张 5 仍然要被发现
	hand := []card.Card{
		mk(card.Rank4, card.Spades),
		mk(card.Rank5, card.Spades),
		mk(card.Rank6, card.Spades),
		mk(card.Rank7, card.Spades),
		mk(card.Rank5, card.Hearts),
		mk(card.Rank5, card.Diamonds),
		mk(card.Rank5, card.Clubs),
	}

	melds := FindMelds(hand)
	require.Len(t, melds, 2)
	assert.Equal(t, Sequence, melds[0].Kind)
	assert.Equal(t, 4, melds[0].Size())
	assert.Equal(t, Set, melds[1].Kind)
	assert.Equal(t, 3, melds[1].Size())
	assertNoOverlap(t, melds)
}

func TestFindMeldsDescendingSize(t *testing.T) {
	t.Parallel()

	// 四张 9 的同点数组比三张顺子大，优先被接受，
	// 顺子失去 9♠ 后无法成型
	hand := []card.Card{
		mk(card.Rank9, card.Spades),
		mk(card.Rank9, card.Hearts),
		mk(card.Rank9, card.Diamonds),
		mk(card.Rank9, card.Clubs),
		mk(card.Rank7, card.Spades),
		mk(card.Rank8, card.Spades),
	}

	melds := FindMelds(hand)
	require.Len(t, melds, 1)
	assert.Equal(t, Set, melds[0].Kind)
	assert.Equal(t, 4, melds[0].Size())
	assertNoOverlap(t, melds)
}

func TestFindMeldsJokerFillsGap(t *testing.T) {
	t.Parallel()

	hand := []card.Card{
		mk(card.Rank5, card.Spades),
		jolly(),
		mk(card.Rank7, card.Spades),
	}

	melds := FindMelds(hand)
	require.Len(t, melds, 1)
	require.Equal(t, Sequence, melds[0].Kind)
	require.Equal(t, 3, melds[0].Size())
	// Jolly 补在空档位置
	assert.False(t, melds[0].Cards[0].Joker)
	assert.True(t, melds[0].Cards[1].Joker)
	assert.False(t, melds[0].Cards[2].Joker)
	assert.False(t, melds[0].Pure)
}

func TestFindMeldsJokerBudgetRespected(t *testing.T) {
	t.Parallel()

	// 空档为 3，一张 Jolly 不够
	hand := []card.Card{
		mk(card.Rank5, card.Spades),
		jolly(),
		mk(card.Rank9, card.Spades),
	}
	assert.Empty(t, FindMelds(hand))
}

func TestFindMeldsHighAceWindow(t *testing.T) {
	t.Parallel()

	hand := []card.Card{
		mk(card.RankQ, card.Hearts),
		mk(card.RankK, card.Hearts),
		mk(card.RankA, card.Hearts),
	}

	melds := FindMelds(hand)
	require.Len(t, melds, 1)
	assert.Equal(t, Sequence, melds[0].Kind)
	assert.True(t, IsHighAceSequence(melds[0].Cards))
}

func TestFindMeldsAceNotBothEnds(t *testing.T) {
	t.Parallel()

	// 同一张 A 不能同时按 1 和 14 用进两个牌组
	ace := mk(card.RankA, card.Spades)
	hand := []card.Card{
		ace,
		mk(card.Rank2, card.Spades),
		mk(card.Rank3, card.Spades),
		mk(card.RankQ, card.Spades),
		mk(card.RankK, card.Spades),
	}

	melds := FindMelds(hand)
	assertNoOverlap(t, melds)
	aceUses := 0
	for _, m := range melds {
		for _, c := range m.Cards {
			if c.Same(ace) {
				aceUses++
			}
		}
	}
	assert.LessOrEqual(t, aceUses, 1)
}

func TestFindMeldsDeterministic(t *testing.T) {
	t.Parallel()

	hand := []card.Card{
		mk(card.Rank4, card.Spades),
		mk(card.Rank5, card.Spades),
		mk(card.Rank6, card.Spades),
		mk(card.Rank6, card.Hearts),
		mk(card.Rank6, card.Diamonds),
		mk(card.RankJ, card.Clubs),
		jolly(),
	}

	first := FindMelds(hand)
	for i := 0; i < 10; i++ {
		again := FindMelds(hand)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].Kind, again[j].Kind)
			require.Equal(t, first[j].Size(), again[j].Size())
			for k := range first[j].Cards {
				assert.True(t, first[j].Cards[k].Same(again[j].Cards[k]))
			}
		}
	}
}

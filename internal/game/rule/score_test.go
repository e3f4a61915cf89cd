package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jolly-game/jolly/internal/game/card"
)

func TestMeldPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		meld     Meld
		expected int
	}{
		{
			name: "Low ace run scores low tier",
			meld: NewMeld(Sequence, []card.Card{
				mk(card.RankA, card.Spades),
				mk(card.Rank2, card.Spades),
				mk(card.Rank3, card.Spades),
			}, 0),
			expected: 15,
		},
		{
			name: "High ace run scores high tier",
			meld: NewMeld(Sequence, []card.Card{
				mk(card.RankQ, card.Spades),
				mk(card.RankK, card.Spades),
				mk(card.RankA, card.Spades),
			}, 0),
			expected: 30,
		},
		{
			name: "Three pure aces score the flat bonus",
			meld: NewMeld(Set, []card.Card{
				mk(card.RankA, card.Spades),
				mk(card.RankA, card.Hearts),
				mk(card.RankA, card.Diamonds),
			}, 0),
			expected: 25,
		},
		{
			name: "Ace set with joker is not the bonus case",
			meld: NewMeld(Set, []card.Card{
				mk(card.RankA, card.Spades),
				mk(card.RankA, card.Hearts),
				jolly(),
			}, 0),
			expected: 15,
		},
		{
			name: "Mixed tier run",
			meld: NewMeld(Sequence, []card.Card{
				mk(card.Rank8, card.Hearts),
				mk(card.Rank9, card.Hearts),
				mk(card.Rank10, card.Hearts),
			}, 0),
			expected: 20,
		},
		{
			name: "Joker estimated as rounded average",
			meld: NewMeld(Sequence, []card.Card{
				mk(card.Rank9, card.Spades),
				mk(card.Rank10, card.Spades),
				jolly(),
			}, 0),
			// 5 + 10 + round(7.5) = 23
			expected: 23,
		},
		{
			name: "Face card set",
			meld: NewMeld(Set, []card.Card{
				mk(card.RankK, card.Spades),
				mk(card.RankK, card.Hearts),
				mk(card.RankK, card.Diamonds),
			}, 0),
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MeldPoints(tt.meld))
		})
	}
}

func TestMeetsFirstMeld(t *testing.T) {
	t.Parallel()

	highRun := NewMeld(Sequence, []card.Card{
		mk(card.RankQ, card.Spades),
		mk(card.RankK, card.Spades),
		mk(card.RankA, card.Spades),
	}, 0)
	lowRun := NewMeld(Sequence, []card.Card{
		mk(card.Rank4, card.Hearts),
		mk(card.Rank5, card.Hearts),
		mk(card.Rank6, card.Hearts),
	}, 0)

	assert.False(t, MeetsFirstMeld([]Meld{lowRun}, DefaultFirstMeldMinimum))
	assert.False(t, MeetsFirstMeld([]Meld{highRun}, DefaultFirstMeldMinimum))
	assert.True(t, MeetsFirstMeld([]Meld{highRun, lowRun}, DefaultFirstMeldMinimum))
	assert.True(t, MeetsFirstMeld([]Meld{highRun}, 30))
}

func TestHandPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []card.Card
		expected int
	}{
		{
			name:     "Lone seven is low tier",
			cards:    []card.Card{mk(card.Rank7, card.Clubs)},
			expected: 5,
		},
		{
			name:     "Face cards are mid tier",
			cards:    []card.Card{mk(card.Rank10, card.Clubs), mk(card.RankJ, card.Clubs), mk(card.RankK, card.Clubs)},
			expected: 30,
		},
		{
			name:     "Ace is its own tier",
			cards:    []card.Card{mk(card.RankA, card.Clubs)},
			expected: 15,
		},
		{
			name:     "Joker is the most expensive",
			cards:    []card.Card{jolly()},
			expected: 25,
		},
		{
			name: "Mixed hand",
			cards: []card.Card{
				mk(card.Rank2, card.Spades),
				mk(card.RankQ, card.Hearts),
				mk(card.RankA, card.Diamonds),
				jolly(),
			},
			expected: 55,
		},
		{
			name:     "Empty hand",
			cards:    nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, HandPoints(tt.cards))
		})
	}
}

package fields_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facet/fields"
)

func hand() []Card {
	return []Card{
		{Rank: 2, Suit: "hearts"},
		{Rank: 9, Suit: "spades"},
		{Rank: 5, Suit: "hearts"},
	}
}

func TestExtract(t *testing.T) {
	cards := hand()

	assert.Equal(t, []int{2, 9, 5}, fields.Extract(cards, rank))
	assert.Equal(t, []string{"hearts", "spades", "hearts"}, fields.Extract(cards, suit))
	assert.Equal(t, []int{}, fields.Extract(nil, rank))
}

func TestExtractLinked(t *testing.T) {
	cards := hand()
	links := fields.ExtractLinked(cards, rank)
	require.Len(t, links, 3)

	t.Run("links point into the slice", func(t *testing.T) {
		assert.Same(t, &cards[0], links[0].Parent())
		assert.Same(t, &cards[2], links[2].Parent())
	})

	t.Run("commit writes through", func(t *testing.T) {
		links[1].SetValue(10)
		links[1].Commit()
		assert.Equal(t, 10, cards[1].Rank)
	})

	t.Run("immediate commit is a no-op", func(t *testing.T) {
		before := hand()
		for _, l := range fields.ExtractLinked(before, rank) {
			l.Commit()
		}
		assert.Equal(t, hand(), before)
	})

	t.Run("restore discards staged values", func(t *testing.T) {
		cards := hand()
		links := fields.ExtractLinked(cards, rank)
		for _, l := range links {
			l.SetValue(0)
			l.Restore()
		}
		assert.Equal(t, hand(), cards)
		assert.Equal(t, 2, links[0].Value())
	})
}

func TestExtractTransform(t *testing.T) {
	cards := hand()
	got := fields.ExtractTransform(cards, rank, func(r int) string {
		return fmt.Sprintf("#%d", r)
	})
	assert.Equal(t, []string{"#2", "#9", "#5"}, got)
}

func TestExtractOperate(t *testing.T) {
	cards := hand()
	got := fields.ExtractOperate(cards, rank, 10, func(r, bonus int) int {
		return r + bonus
	})

	assert.Equal(t, []int{12, 19, 15}, got)
	assert.Equal(t, hand(), cards, "copy variant must not touch the elements")
}

func TestExtractOperateInPlace(t *testing.T) {
	cards := hand()
	got := fields.ExtractOperateInPlace(cards, rank, 2, func(r, factor int) int {
		return r * factor
	})

	assert.Equal(t, []int{4, 18, 10}, got)
	assert.Equal(t, []int{4, 18, 10}, fields.Extract(cards, rank), "computed values are written back")
	assert.Equal(t, []string{"hearts", "spades", "hearts"}, fields.Extract(cards, suit))
}

func TestExtractOperateTransform(t *testing.T) {
	cards := hand()
	got := fields.ExtractOperateTransform(cards, rank, 2.0, func(r int, d float64) float64 {
		return float64(r) / d
	})

	assert.Equal(t, []float64{1, 4.5, 2.5}, got)
	assert.Equal(t, hand(), cards)
}

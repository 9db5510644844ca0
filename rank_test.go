package skim_test

import (
	"testing"

	"github.com/fwojciec/skim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSentences(t *testing.T) {
	t.Parallel()

	tok := skim.NewTokenizer(nil)
	table := skim.FrequencyTable{"cats": 2, "great": 3}

	scored := skim.ScoreSentences(tok, []string{" Cats are great. ", "Birds sing."}, table)

	require.Len(t, scored, 2)
	assert.Equal(t, skim.ScoredSentence{Text: "Cats are great.", Score: 5, Position: 0}, scored[0])
	assert.Equal(t, skim.ScoredSentence{Text: "Birds sing.", Score: 0, Position: 1}, scored[1])
}

func TestRank(t *testing.T) {
	t.Parallel()

	tok := skim.NewTokenizer(nil)

	t.Run("orders sentences by descending score", func(t *testing.T) {
		t.Parallel()

		doc := "Cats are great. Dogs are great too. Cats and dogs are both great pets that people love."
		sentences := skim.NewSegmenter("").Segment(doc)
		table := skim.BuildFrequencyTable(tok, doc)

		ranked := skim.Rank(tok, sentences, table, 2)

		assert.Equal(t, []string{
			"Cats and dogs are both great pets that people love.",
			"Cats are great.",
		}, ranked)
	})

	t.Run("keeps document order for equal scores", func(t *testing.T) {
		t.Parallel()

		sentences := []string{"Red apples grow.", " Blue sky.", " Apples grow red!"}
		table := skim.BuildFrequencyTable(tok, "Red apples grow. Blue sky. Apples grow red!")

		ranked := skim.Rank(tok, sentences, table, 2)

		assert.Equal(t, []string{"Red apples grow.", "Apples grow red!"}, ranked)
	})

	t.Run("ranks stopword-only sentences last", func(t *testing.T) {
		t.Parallel()

		doc := "It is what it is. Rockets launch daily."
		sentences := skim.NewSegmenter("").Segment(doc)
		table := skim.BuildFrequencyTable(tok, doc)

		scored := skim.ScoreSentences(tok, sentences, table)
		ranked := skim.Rank(tok, sentences, table, 2)

		assert.Equal(t, 0, scored[0].Score)
		assert.Equal(t, []string{"Rockets launch daily.", "It is what it is."}, ranked)
	})

	t.Run("keeps original order when the table is empty", func(t *testing.T) {
		t.Parallel()

		sentences := []string{"Third.", "First.", "Second."}

		ranked := skim.Rank(tok, sentences, skim.FrequencyTable{}, 3)

		assert.Equal(t, []string{"Third.", "First.", "Second."}, ranked)
	})

	t.Run("returns all sentences when fewer than topN", func(t *testing.T) {
		t.Parallel()

		sentences := []string{"Alpha beta.", "Gamma."}
		table := skim.FrequencyTable{"gamma": 4, "alpha": 1}

		ranked := skim.Rank(tok, sentences, table, 10)

		assert.Equal(t, []string{"Gamma.", "Alpha beta."}, ranked)
	})

	t.Run("uses the default when topN is not positive", func(t *testing.T) {
		t.Parallel()

		sentences := []string{"A.", "B.", "C.", "D.", "E."}

		ranked := skim.Rank(tok, sentences, skim.FrequencyTable{}, 0)

		assert.Len(t, ranked, skim.DefaultTopN)
	})
}

func TestSelectTop_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	scored := []skim.ScoredSentence{
		{Text: "low", Score: 1, Position: 0},
		{Text: "high", Score: 9, Position: 1},
	}

	top := skim.SelectTop(scored, 1)

	require.Len(t, top, 1)
	assert.Equal(t, "high", top[0].Text)
	assert.Equal(t, "low", scored[0].Text)
}

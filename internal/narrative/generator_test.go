package narrative

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimael92/lol-survival-party/internal/domain"
)

func newGen() *TableGenerator {
	return NewTableGenerator(rand.New(rand.NewSource(1)))
}

func TestDrawStoryPersonalizesIntro(t *testing.T) {
	gen := newGen()

	story := gen.DrawStory([]string{"Alice", "Bob", "Carol"})

	assert.NotContains(t, story.Intro, "{players}")
	assert.Contains(t, story.Intro, "Alice, Bob, and Carol")
	assert.NotEmpty(t, story.Scenario)
	assert.NotEmpty(t, story.Crisis)
	require.NotEmpty(t, story.Items)
}

func TestDrawStoryCopiesItems(t *testing.T) {
	gen := newGen()

	story := gen.DrawStory([]string{"Alice"})
	story.Items[0] = "mutated"

	// A later draw of the same table entry must not see the mutation
	for i := 0; i < 20; i++ {
		again := gen.DrawStory([]string{"Alice"})
		assert.NotContains(t, again.Items, "mutated")
	}
}

func TestResolutionNamesEveryAction(t *testing.T) {
	gen := newGen()
	subs := []domain.Submission{
		{PlayerName: "Alice", Item: "kazoo", Text: "hum a distracting tune"},
		{PlayerName: "Bob", Item: "slinky", Text: "bounce down the stairs"},
	}

	text := gen.Resolution(subs, "The vampire is getting hungry!")

	assert.Contains(t, text, "Alice used kazoo to hum a distracting tune")
	assert.Contains(t, text, "Bob used slinky to bounce down the stairs")
	assert.NotContains(t, text, "{actions}")
	assert.NotContains(t, text, "{crisis}")
}

func TestDeathMessageFillsTemplate(t *testing.T) {
	gen := newGen()

	for i := 0; i < 30; i++ {
		text := gen.DeathMessage("Bob", "bounce down the stairs", "slinky")
		assert.Contains(t, text, "Bob")
		assert.NotContains(t, text, "{player}")
		assert.NotContains(t, text, "{action}")
		assert.NotContains(t, text, "{item}")
	}
}

func TestContinuationNamesSurvivors(t *testing.T) {
	gen := newGen()

	for i := 0; i < 30; i++ {
		text := gen.Continuation([]string{"Alice", "Carol"}, "Bob")
		assert.Contains(t, text, "Alice and Carol")
		assert.Contains(t, text, "Bob")
	}
}

func TestRecapWalksRounds(t *testing.T) {
	gen := newGen()
	rounds := []domain.RoundRecord{
		{
			Number: 1,
			Submissions: []domain.Submission{
				{PlayerName: "Alice", Item: "kazoo", Text: "hum loudly"},
				{PlayerName: "Bob", Item: "slinky", Text: "bounce away"},
			},
			Eliminated: "Bob",
		},
		{
			Number: 2,
			Submissions: []domain.Submission{
				{PlayerName: "Alice", Item: "air horn", Text: "honk twice"},
			},
		},
	}

	recap := gen.Recap("Once upon a time...", rounds, "Alice")

	assert.Contains(t, recap, "Once upon a time...")
	assert.Contains(t, recap, "Alice used kazoo to hum loudly")
	assert.Contains(t, recap, "Bob used slinky to bounce away and was left behind")
	assert.Contains(t, recap, "Alice used air horn to honk twice")
	assert.Contains(t, recap, "Alice emerged victorious")
}

func TestRecapWithoutWinner(t *testing.T) {
	gen := newGen()

	recap := gen.Recap("intro", nil, "")
	assert.Contains(t, recap, "EPILOGUE")
}

func TestJoinNames(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"Alice"}, "Alice"},
		{[]string{"Alice", "Bob"}, "Alice and Bob"},
		{[]string{"Alice", "Bob", "Carol"}, "Alice, Bob, and Carol"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, joinNames(tt.names))
	}
}

func TestTablesHaveNoEmptyEntries(t *testing.T) {
	for _, story := range storyTable {
		assert.NotEmpty(t, story.Intro)
		assert.NotEmpty(t, story.Scenario)
		assert.NotEmpty(t, story.Crisis)
		assert.NotEmpty(t, story.Items)
		assert.Contains(t, story.Intro, "{players}")
	}

	for _, table := range [][]string{crisisTable, resolutionTable, deathTable, continuationTable, noEliminationTable, victoryTable, defeatTable, disconnectTable} {
		require.NotEmpty(t, table)
		for _, entry := range table {
			assert.NotEmpty(t, strings.TrimSpace(entry))
		}
	}
}

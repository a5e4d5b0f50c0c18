// Package narrative produces the flavor text the game broadcasts: scenarios,
// crises, resolutions, death messages and recaps. The Generator interface
// keeps sessions independent of the concrete random tables so tests can
// substitute a deterministic implementation.
package narrative

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/abimael92/lol-survival-party/internal/domain"
)

// Generator is the narrative capability a session depends on
type Generator interface {
	// DrawStory picks a fresh story and personalizes its introduction with
	// the full participant name list.
	DrawStory(playerNames []string) domain.Story

	// NextCrisis returns an escalated crisis for rounds after the first
	NextCrisis(round int) string

	// Resolution combines all submitted actions into one resolution text
	Resolution(submissions []domain.Submission, crisis string) string

	// DeathMessage narrates the elimination of a participant
	DeathMessage(name, action, item string) string

	// Continuation teases the next round, naming the remaining participants
	Continuation(remaining []string, eliminated string) string

	// NoElimination narrates a round where nobody was voted out
	NoElimination(remaining []string) string

	// Victory narrates the sole survivor's win
	Victory(winner string) string

	// Defeat narrates a game where nobody survived
	Defeat() string

	// Recap walks every archived round into a full adventure summary
	Recap(intro string, rounds []domain.RoundRecord, winner string) string

	// DisconnectFlavor explains a participant's sudden departure
	DisconnectFlavor(name string) string
}

// TableGenerator implements Generator from fixed random tables. One
// generator is shared by all sessions, so picks are mutex-guarded.
type TableGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTableGenerator creates a table-backed generator using the given rand
// source. Pass a seeded source for reproducible output.
func NewTableGenerator(rnd *rand.Rand) *TableGenerator {
	return &TableGenerator{rnd: rnd}
}

func (g *TableGenerator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

func (g *TableGenerator) DrawStory(playerNames []string) domain.Story {
	story := storyTable[g.intn(len(storyTable))]
	items := make([]string, len(story.Items))
	copy(items, story.Items)

	return domain.Story{
		Intro:    strings.ReplaceAll(story.Intro, "{players}", joinNames(playerNames)),
		Scenario: story.Scenario,
		Crisis:   story.Crisis,
		Items:    items,
	}
}

func (g *TableGenerator) NextCrisis(round int) string {
	return crisisTable[g.intn(len(crisisTable))]
}

func (g *TableGenerator) Resolution(submissions []domain.Submission, crisis string) string {
	actions := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		actions = append(actions, fmt.Sprintf("%s used %s to %s", sub.PlayerName, sub.Item, sub.Text))
	}
	joined := strings.Join(actions, ", ")

	tmpl := resolutionTable[g.intn(len(resolutionTable))]
	text := strings.ReplaceAll(tmpl, "{actions}", joined)
	return strings.ReplaceAll(text, "{crisis}", strings.ToLower(crisis))
}

func (g *TableGenerator) DeathMessage(name, action, item string) string {
	tmpl := deathTable[g.intn(len(deathTable))]
	text := strings.ReplaceAll(tmpl, "{player}", name)
	text = strings.ReplaceAll(text, "{action}", action)
	return strings.ReplaceAll(text, "{item}", item)
}

func (g *TableGenerator) Continuation(remaining []string, eliminated string) string {
	tmpl := continuationTable[g.intn(len(continuationTable))]
	text := strings.ReplaceAll(tmpl, "{remaining}", joinNames(remaining))
	return strings.ReplaceAll(text, "{eliminated}", eliminated)
}

func (g *TableGenerator) NoElimination(remaining []string) string {
	tmpl := noEliminationTable[g.intn(len(noEliminationTable))]
	return strings.ReplaceAll(tmpl, "{remaining}", joinNames(remaining))
}

func (g *TableGenerator) Victory(winner string) string {
	tmpl := victoryTable[g.intn(len(victoryTable))]
	return strings.ReplaceAll(tmpl, "{winner}", winner)
}

func (g *TableGenerator) Defeat() string {
	return defeatTable[g.intn(len(defeatTable))]
}

func (g *TableGenerator) Recap(intro string, rounds []domain.RoundRecord, winner string) string {
	var b strings.Builder
	b.WriteString("COMPLETE ADVENTURE RECAP:\n\n")
	b.WriteString("Our story began: " + intro + "\n\n")

	b.WriteString("THE JOURNEY:\n")
	for _, round := range rounds {
		for _, sub := range round.Submissions {
			fmt.Fprintf(&b, "- %s used %s to %s", sub.PlayerName, sub.Item, sub.Text)
			if sub.PlayerName == round.Eliminated {
				b.WriteString(" and was left behind")
			}
			b.WriteString("\n")
		}
	}

	if winner != "" {
		fmt.Fprintf(&b, "\nFINAL OUTCOME: %s emerged victorious!\n", winner)
	} else {
		b.WriteString("\nEPILOGUE: Everyone was eliminated in this comedy of errors!\n")
	}

	return b.String()
}

func (g *TableGenerator) DisconnectFlavor(name string) string {
	tmpl := disconnectTable[g.intn(len(disconnectTable))]
	return strings.ReplaceAll(tmpl, "{player}", name)
}

// joinNames formats a name list the way a sentence reads: "A", "A and B",
// "A, B, and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

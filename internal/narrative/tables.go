package narrative

import "github.com/abimael92/lol-survival-party/internal/domain"

// storyTable holds the starting scenarios. Intro templates contain a
// {players} marker replaced with the personalized name list.
var storyTable = []domain.Story{
	{
		Intro:    "It was a perfectly normal day when {players} decided to go on an adventure together. Little did they know, their outing would take a bizarre turn...",
		Scenario: "You find yourselves trapped in a vampire's mansion! The vampire is allergic to silly things, and various items slide out of a secret passage.",
		Crisis:   "The vampire is getting hungry! How do you use your item to buy more time?",
		Items:    []string{"rubber chicken", "whoopee cushion", "giant foam finger", "kazoo", "silly putty", "joy buzzer", "rainbow wig", "oversized sunglasses"},
	},
	{
		Intro:    "{players} were just minding their own business when suddenly, adventure found them!",
		Scenario: "You're being chased by a zombie horde through a shopping mall! You find a room full of unusual items.",
		Crisis:   "The zombies are closing in! How do you use your item to survive?",
		Items:    []string{"tennis racket", "roll of duct tape", "whoopee cushion", "rubber chicken", "super soaker", "fidget spinner", "yo-yo", "bubble wand"},
	},
	{
		Intro:    "What started as a normal day for {players} quickly spiraled into chaos...",
		Scenario: "You wake up on a spaceship with a hostile alien! The only unusual items in the room are various novelty items.",
		Crisis:   "The alien is about to break through the door! How do you use your item to stop it?",
		Items:    []string{"whoopee cushion", "rubber chicken", "joy buzzer", "fake mustache", "rainbow wig", "giant foam finger", "kazoo", "silly string"},
	},
	{
		Intro:    "{players} were enjoying a peaceful picnic when suddenly...",
		Scenario: "A giant mutant squirrel army is attacking the city! You find yourselves in a novelty shop with strange items.",
		Crisis:   "The squirrels are organizing into formation! How do you use your item to disrupt their plans?",
		Items:    []string{"squeaky toy", "bubble wand", "slinky", "magnifying glass", "whoopee cushion", "fake dog poop", "air horn", "groucho marx glasses"},
	},
	{
		Intro:    "During a routine office meeting, {players} suddenly found themselves in an unexpected situation...",
		Scenario: "You've been transported to a dimension where everything is made of pudding! The only weapons are office supplies with strange properties.",
		Crisis:   "The pudding monsters are starting to melt together into a giant blob! How do you use your item to stop them?",
		Items:    []string{"stapler", "paperclip necklace", "coffee mug", "stress ball", "rubber band ball", "post-it notes", "whiteboard marker", "desktop zen garden"},
	},
}

var crisisTable = []string{
	"A new threat emerges! The situation has escalated dramatically. How do you use your item to handle this development?",
	"Just when you thought it was safe! Another problem arises that requires immediate attention. How do you use your item to address this?",
	"Plot twist! The circumstances have changed completely. How do you use your item to adapt to this new situation?",
	"Unexpected development! Things just got even more complicated. How do you use your item to navigate this turn of events?",
	"The stakes have been raised! A fresh challenge presents itself. How do you use your item to overcome this obstacle?",
	"Complication alert! The situation has evolved in unpredictable ways. How do you use your item to manage this new reality?",
	"Surprise! The adventure takes an unexpected turn. How do you use your item to deal with this revelation?",
	"The drama continues! A new crisis demands your attention. How do you use your item to resolve this issue?",
}

var resolutionTable = []string{
	"In a stunning display of teamwork (or lack thereof), {actions}. The combined effect was so absurd that it actually worked! The crisis was averted through the power of sheer ridiculousness.",
	"Through a series of increasingly bizarre events: {actions}. Miraculously, this chaotic combination somehow resolved the {crisis}!",
	"What followed can only be described as organized chaos: {actions}. Against all odds, this ridiculous plan actually worked!",
	"In a moment of pure insanity: {actions}. Somehow, this combination of terrible ideas created a perfect solution to the {crisis}!",
	"Through a comedy of errors that would make a clown proud: {actions}. Astonishingly, this series of mishaps somehow resolved the situation!",
}

var deathTable = []string{
	"{player} tried to use the {item} to {action}. It was so embarrassing that everyone decided it was better to continue without them.",
	"{player}'s idea to {action} with the {item} backfired spectacularly. The group voted unanimously to leave them behind.",
	"When {player} attempted to {action}, it confused everyone so much that the group decided they were better off without that kind of \"help.\"",
	"{player}'s plan to {action} was so bad the group decided some risks weren't worth taking. They were left behind for everyone's safety.",
	"The {item} seemed like a good idea to {player}, but their attempt to {action} resulted in the group making a quick unanimous decision to continue without them.",
	"{player} used the {item} to {action} with such enthusiasm that they accidentally volunteered themselves as the sacrifice.",
	"After {player}'s attempt to {action} with the {item}, the group decided they were clearly too powerful to keep around and had to be left behind for balance.",
	"{player}'s {action} technique with the {item} was so advanced that no one else could understand it. They were left behind for being too much of a genius.",
}

var continuationTable = []string{
	"With {eliminated} now busy exploring alternative career options, {remaining} pressed on with the mission. Little did they know, a new challenge awaited...",
	"The group made the tough but necessary decision to continue without {eliminated}. {remaining} took a deep breath and advanced to the next challenge.",
	"As {eliminated} became distracted by something shiny, {remaining} seized the opportunity to move forward. The adventure continued!",
	"{remaining} gave a respectful nod to {eliminated} before continuing the adventure without them. The story wasn't over yet...",
	"With {eliminated} now pursuing their true calling as a professional potato, {remaining} ventured forth into the next phase of their journey.",
}

var noEliminationTable = []string{
	"Nobody could agree on who to leave behind, so {remaining} shrugged and pressed on together. The adventure continued, awkwardly.",
	"The vote ended in stunned silence. {remaining} exchanged glances and quietly moved on to the next challenge.",
	"For once, the group showed mercy. {remaining} continued the journey with everyone still aboard... for now.",
}

var victoryTable = []string{
	"After a series of increasingly absurd challenges, {winner} emerged victorious! Their clever use of various items throughout the adventure proved that sometimes the weirdest ideas are the most effective.",
	"{winner} stood alone at the end, having outlasted everyone else through a combination of creativity and other people's terrible decisions. The adventure was complete!",
	"In the final moments, {winner}'s persistence paid off. While others fell to their own ridiculous plans, {winner} managed to navigate the chaos and emerge as the winner.",
	"Through luck, timing, and the strategic use of questionable items, {winner} proved that surviving absurdity is its own form of victory.",
	"{winner} triumphed! Not through strength or wisdom, but through the ancient art of being slightly less ridiculous than everyone else.",
	"Against all odds, {winner} emerged as the sole survivor of this comedy of errors. Their prize: bragging rights and probably some therapy.",
}

var defeatTable = []string{
	"One by one, every adventurer fell to their own questionable decisions. The crisis won. The items did not help.",
	"Nobody survived the adventure. Somewhere, a rubber chicken squeaks mournfully in their memory.",
	"The group eliminated each other with impressive efficiency. The monsters never even had to try.",
}

var disconnectTable = []string{
	"{player} spontaneously combusted due to a lack of creativity.",
	"{player} was abducted by aliens who needed better story ideas.",
	"{player} tripped over their own imagination and fell out of reality.",
	"{player} decided to become a professional hermit instead.",
	"{player} was voted off the island of creativity.",
	"{player} discovered the meaning of life and decided this game wasn't it.",
	"{player} was called away on urgent business - something about a missing rubber chicken.",
}

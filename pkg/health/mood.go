package health

import "fmt"

// MoodFor maps the ledger's raw balance and savings rate to one of five
// ordered qualitative states, evaluated top-down with first match winning.
// The gap figures in the relaxed and thoughtful messages are computed from
// the live rate on every call, never cached.
func MoodFor(rawBalance, savingsRate float64) Mood {
	if rawBalance < 0 {
		return Mood{
			State:   MoodStressed,
			Emoji:   "😰",
			Title:   "Your finances are stressed",
			Message: "You spend more than you earn. Your wallet needs a break, urgently.",
		}
	}

	if savingsRate >= 0.20 {
		return Mood{
			State:   MoodThriving,
			Emoji:   "🤩",
			Title:   "Your wallet feels great!",
			Message: "You are in expert mode. An extra-healthy month!",
		}
	}

	if savingsRate >= 0.10 {
		gapTo20 := (0.20 - savingsRate) * 100
		return Mood{
			State:   MoodRelaxed,
			Emoji:   "😌",
			Title:   "Your wallet is relaxed today",
			Message: fmt.Sprintf("You are on the right track. Only %.1f%% away from an extra-healthy month.", gapTo20),
		}
	}

	if savingsRate > 0 {
		gapTo10 := (0.10 - savingsRate) * 100
		return Mood{
			State:   MoodThoughtful,
			Emoji:   "🤔",
			Title:   "Your finances are thoughtful",
			Message: fmt.Sprintf("You save a little, but could do better. You are %.1f%% away from a relaxed state.", gapTo10),
		}
	}

	return Mood{
		State:   MoodAtTheEdge,
		Emoji:   "😐",
		Title:   "Your finances are at the edge",
		Message: "You make it to the end of the month, but with no margin for error. Careful!",
	}
}

package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodFor_StressedOnNegativeBalance(t *testing.T) {
	// overspending wins over any savings rate
	mood := MoodFor(-500, 0.30)

	assert.Equal(t, MoodStressed, mood.State)
}

func TestMoodFor_Thriving(t *testing.T) {
	mood := MoodFor(700, 0.20)

	assert.Equal(t, MoodThriving, mood.State)
}

func TestMoodFor_RelaxedInterpolatesGap(t *testing.T) {
	mood := MoodFor(120, 0.12)

	assert.Equal(t, MoodRelaxed, mood.State)
	assert.Contains(t, mood.Message, "8.0%")
}

func TestMoodFor_ThoughtfulInterpolatesGap(t *testing.T) {
	mood := MoodFor(45, 0.045)

	assert.Equal(t, MoodThoughtful, mood.State)
	assert.Contains(t, mood.Message, "5.5%")
}

func TestMoodFor_AtTheEdgeOnExactBreakEven(t *testing.T) {
	mood := MoodFor(0, 0)

	assert.Equal(t, MoodAtTheEdge, mood.State)
}

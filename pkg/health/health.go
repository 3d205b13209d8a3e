package health

// Classification is the 50/30/20 partition of a period's ledger. Ratios are
// kept unclamped so threshold checks still detect overshoot past 100% of
// income; clamping to [0,1] happens only at the display boundary.
type Classification struct {
	Needs float64
	Wants float64
	// NeedsRatio, WantsRatio and SavingsAllocationRatio are fractions of
	// income, 0 when income is 0.
	NeedsRatio             float64
	WantsRatio             float64
	SavingsAllocationRatio float64
}

type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityDanger  AlertSeverity = "danger"
)

type Alert struct {
	Message  string
	Severity AlertSeverity
}

// MoodState labels the five ordered qualitative states of the ledger.
type MoodState string

const (
	MoodStressed   MoodState = "stressed"
	MoodThriving   MoodState = "thriving"
	MoodRelaxed    MoodState = "relaxed"
	MoodThoughtful MoodState = "thoughtful"
	MoodAtTheEdge  MoodState = "at_the_edge"
)

type Mood struct {
	State   MoodState
	Emoji   string
	Title   string
	Message string
}

// Status is the qualitative health label derived from the savings rate.
type Status struct {
	Label       string
	Description string
}

// Projection extrapolates the current monthly savings capacity forward.
type Projection struct {
	OneYear   float64
	FiveYears float64
}

// Clamp01 bounds a ratio into [0,1] for display purposes.
func Clamp01(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

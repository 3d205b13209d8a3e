package advice

// Context is the summarized ledger snapshot handed to the model. It carries
// derived figures only, never raw transactions.
type Context struct {
	Period             string
	TotalIncome        float64
	TotalExpenses      float64
	SavingsRate        float64
	ExpensesByCategory map[string]float64
	ColombianMode      bool
	// SmlvCount expresses income in Colombian monthly minimum wages. Only
	// set in Colombian mode; display context for the prompt, never scoring.
	SmlvCount          float64
	TransportAllowance float64
}

type PredictionResult struct {
	PredictedTotal   float64 `json:"predictedTotal"`
	PercentageChange float64 `json:"percentageChange"`
	RiskyCategory    string  `json:"riskyCategory"`
	RiskReason       string  `json:"riskReason"`
	CutCategory      string  `json:"cutCategory"`
	CutSuggestion    string  `json:"cutSuggestion"`
}

type GoalSuggestion struct {
	Name            string  `json:"name"`
	TargetAmount    float64 `json:"targetAmount"`
	Reason          string  `json:"reason"`
	Emoji           string  `json:"emoji"`
	EstimatedMonths int     `json:"estimatedMonths"`
}

type ScoreAnalysis struct {
	Reason string   `json:"reason"`
	Tips   []string `json:"tips"`
}

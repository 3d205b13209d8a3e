package advice

import (
	"encoding/json"
	"fmt"
	"strings"
)

func regionBlock(c Context) string {
	if !c.ColombianMode {
		return "Context: general personal finance (global, USD)."
	}
	return fmt.Sprintf(`COLOMBIAN MODE:
- Currency: Colombian pesos (COP).
- Income in minimum wages: the user earns roughly %.1f SMLV (monthly legal minimum wages).
- The legal transport allowance is %.0f COP per month.
- Economic context: account for local inflation, cost of living (rent, utilities by estrato, public transport), and quincena pay cycles.
- Use natural local phrasing where it fits, but stay professional.
- Rent and groceries are critical priorities.`, c.SmlvCount, c.TransportAllowance)
}

func coachPrompt(c Context) string {
	breakdown, _ := json.Marshal(c.ExpensesByCategory)

	var b strings.Builder
	b.WriteString("Act as \"BudgetMate Coach\", an expert in behavioral finance.\n")
	b.WriteString(regionBlock(c))
	b.WriteString(fmt.Sprintf(`

User context (%s view):
- Total income: %.2f
- Total expenses: %.2f
- Savings rate: %.1f%%
- Expense breakdown: %s

Produce a Markdown analysis with these sections:
### Behavioral Analysis
Explain what this spending says about the user's priorities.
### Detected Patterns
Identify two trends, each tied to a concrete figure above.
### The Coach's Challenge
Three specific actions for this week.

Tone: empathetic, motivating, direct.`,
		c.Period, c.TotalIncome, c.TotalExpenses, c.SavingsRate*100, breakdown))
	return b.String()
}

const strictJSONRules = `Return ONLY valid raw JSON.
Do NOT wrap the response in code fences.
Do NOT use Markdown.`

func predictionPrompt(c Context) string {
	breakdown, _ := json.Marshal(c.ExpensesByCategory)

	region := "General (USD)."
	if c.ColombianMode {
		region = "Colombia (COP). Consider local inflation and seasonality (prima in June/December, school expenses in January/February)."
	}
	return fmt.Sprintf(`Expense prediction for next month.
Context: %s
Current expenses by category: %s
Current total: %.2f

Return a JSON object with exactly these fields:
{"predictedTotal": number, "percentageChange": number, "riskyCategory": string, "riskReason": string, "cutCategory": string, "cutSuggestion": string}
Keep riskReason and cutSuggestion very short (max 10 words).
%s`, region, breakdown, c.TotalExpenses, strictJSONRules)
}

func goalsPrompt(c Context) string {
	region := "General."
	if c.ColombianMode {
		region = "Colombia. Suggest local goals (a Santa Marta getaway, a VIS apartment down payment, a new motorbike, paying off a credit card). Amounts in Colombian pesos."
	}
	return fmt.Sprintf(`Generate 3 smart savings goals.
Context: %s
Savings rate: %.1f%%.

Return a JSON array of objects with exactly these fields:
[{"name": string, "targetAmount": number, "reason": string, "emoji": string, "estimatedMonths": number}]
%s`, region, c.SavingsRate*100, strictJSONRules)
}

func scorePrompt(score, previousScore int, colombian bool) string {
	region := "General."
	if colombian {
		region = "Colombia. If the score is low, mention over-indebtedness risk (gota a gota lending). If high, suggest CDTs or real estate."
	}
	return fmt.Sprintf(`Analyze a change in a 0-100 financial health score.
Context: %s
Score: %d (previous: %d).

Return a JSON object with exactly these fields:
{"reason": string, "tips": [string]}
%s`, region, score, previousScore, strictJSONRules)
}

// Package insight turns a finished analysis into role-specific, actionable
// guidance (chef vs manager) via the same text-completion gateway.
package insight

import (
	"context"
	"fmt"
	"log"
	"strings"

	"menulens/internal/analysis"
	"menulens/internal/llm"
	"menulens/internal/util/jsonutil"
)

const (
	insightTemperature = 0.4
	insightMaxTokens   = 2000
)

// Role selects the stakeholder the insights are written for.
type Role string

const (
	RoleChef    Role = "chef"
	RoleManager Role = "manager"
)

// Recommendation is one prioritized action item.
type Recommendation struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
	Evidence string `json:"evidence"`
}

// Insights is the generated guidance for one role.
type Insights struct {
	Summary         string           `json:"summary"`
	Strengths       []string         `json:"strengths"`
	Concerns        []string         `json:"concerns"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Generator produces insights from an analysis Result.
type Generator struct {
	LLM    llm.Client
	Logger *log.Logger
}

// Generate builds role-specific insights. Gateway or decode failures never
// propagate: a deterministic fallback structure is returned instead so the
// report stage always has something to render.
func (g *Generator) Generate(ctx context.Context, res analysis.Result, role Role, restaurant string) (Insights, error) {
	logger := g.Logger
	if logger == nil {
		logger = log.Default()
	}
	prompt, err := buildPrompt(res, role, restaurant)
	if err != nil {
		return fallback(role), err
	}
	raw, err := g.LLM.Generate(ctx, llm.Request{
		Prompt:          prompt,
		Temperature:     insightTemperature,
		MaxOutputTokens: insightMaxTokens,
	})
	if err != nil {
		logger.Printf("insight: generation failed (%s): %v", role, err)
		return fallback(role), nil
	}
	cleaned := analysis.StripFences(raw)
	var out Insights
	if err := jsonutil.UnmarshalFlex([]byte(cleaned), &out); err != nil {
		logger.Printf("insight: decode failed (%s): %v", role, err)
		return fallback(role), nil
	}
	return out, nil
}

func buildPrompt(res analysis.Result, role Role, restaurant string) (string, error) {
	if restaurant == "" {
		restaurant = "the restaurant"
	}
	data, err := jsonutil.MarshalNoEscapeIndent(res, "", "  ")
	if err != nil {
		return "", err
	}

	var consultant, focus, scope string
	switch role {
	case RoleChef:
		consultant = "expert culinary consultant"
		focus = `- Food quality and taste
- Menu items (what's working, what's not)
- Ingredient quality and freshness
- Presentation and portion sizes
- Recipe consistency and kitchen execution`
		scope = `- DO focus on: food, ingredients, recipes, menu, taste, presentation
- DON'T focus on: service speed, wait times, staffing, decor (that's for manager)`
	case RoleManager:
		consultant = "expert restaurant operations consultant"
		focus = `- Service quality and speed
- Staff performance and training needs
- Wait times, customer experience and satisfaction
- Ambience, value for money, cleanliness`
		scope = `- DO focus on: service, operations, staff, experience, efficiency
- DON'T focus on: specific recipes, ingredient quality, plating (that's for chef)`
	default:
		return "", fmt.Errorf("insight: unknown role %q", role)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an %s analyzing customer feedback for %s.\n\n", consultant, restaurant)
	fmt.Fprintf(&sb, "ANALYSIS DATA:\n%s\n\n", data)
	fmt.Fprintf(&sb, "YOUR TASK:\nGenerate actionable insights for the %s. Focus on:\n%s\n\n", strings.ToUpper(string(role)), focus)
	fmt.Fprintf(&sb, "CRITICAL:\n%s\n\n", scope)
	sb.WriteString(`OUTPUT FORMAT (STRICT JSON):
{
  "summary": "2-3 sentence executive summary",
  "strengths": ["specific strength with evidence"],
  "concerns": ["specific concern with evidence"],
  "recommendations": [
    {"priority": "high/medium/low", "action": "...", "reason": "...", "evidence": "..."}
  ]
}

Generate the insights now:`)
	return sb.String(), nil
}

func fallback(role Role) Insights {
	return Insights{
		Summary:   fmt.Sprintf("Unable to generate %s insights at this time.", role),
		Strengths: []string{"Analysis data available for review"},
		Concerns:  []string{"Insight generation encountered an error"},
		Recommendations: []Recommendation{{
			Priority: "high",
			Action:   "Retry insight generation",
			Reason:   "Complete analysis requires insights",
			Evidence: "System error",
		}},
	}
}

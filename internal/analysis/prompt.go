package analysis

import (
	"fmt"
	"strings"
)

// Mode selects which entity kinds a prompt asks the model to extract.
type Mode int

const (
	// ModeUnified extracts menu items, drinks and aspects in one pass.
	ModeUnified Mode = iota
	// ModeMenu extracts food items and drinks only.
	ModeMenu
	// ModeAspects extracts customer-care aspects only.
	ModeAspects
)

const sentimentScale = `SENTIMENT SCALE (IMPORTANT):
- Positive (0.6 to 1.0): customer clearly enjoyed/praised this item or aspect
- Neutral (0.0 to 0.59): mixed feelings, okay but not exceptional, or mentioned without strong opinion
- Negative (-1.0 to -0.01): customer complained, criticized, or expressed disappointment

Examples:
- "The pasta was absolutely divine!" -> 0.85 (Positive)
- "The pasta was decent, nothing special" -> 0.3 (Neutral)
- "The pasta was undercooked and bland" -> -0.6 (Negative)`

const menuRules = `MENU ITEMS:
- Specific items only: "salmon sushi", "miso soup", "sake" (never bare "food" or "dish")
- "salmon sushi" and "salmon roll" are different items; keep them separate
- Separate food from drinks
- Lowercase names
- Score sentiment per item using the scale above`

const aspectRules = `ASPECTS:
- Discover what customers actually discuss: "service speed", "food quality", "ambience", "value"
- Be specific: "service speed" not just "service"; never generic terms like "experience"
- Cuisine-specific aspects welcome: "freshness", "authenticity", "presentation"
- Lowercase names
- Score sentiment per aspect using the scale above`

const linkingRules = `REVIEW LINKING:
- For EACH entry, list the reviews that mention it in "related_reviews"
- "review_index" MUST be the absolute number shown in [Review N]
- "sentiment_context" is a short phrase quoting why the sentiment was chosen
- DO NOT echo full review text back`

// BuildPrompt renders one extraction prompt for a batch of reviews. Each
// review is prefixed by its absolute index so the model can cite it back.
// Pure data transformation; no side effects.
func BuildPrompt(b Batch, restaurant string, mode Mode) string {
	if restaurant == "" {
		restaurant = "the restaurant"
	}
	numbered := make([]string, 0, len(b.Reviews))
	for i, r := range b.Reviews {
		numbered = append(numbered, fmt.Sprintf("[Review %d]: %s", b.Start+i, r))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are analyzing customer reviews for %s. %s\n\n", restaurant, taskLine(mode))
	sb.WriteString("REVIEWS:\n")
	sb.WriteString(strings.Join(numbered, "\n\n"))
	sb.WriteString("\n\n")
	sb.WriteString(sentimentScale)
	sb.WriteString("\n\nRULES:\n\n")
	if mode == ModeUnified || mode == ModeMenu {
		sb.WriteString(menuRules)
		sb.WriteString("\n\n")
	}
	if mode == ModeUnified || mode == ModeAspects {
		sb.WriteString(aspectRules)
		sb.WriteString("\n\n")
	}
	sb.WriteString(linkingRules)
	sb.WriteString("\n\nOUTPUT (STRICT JSON ONLY):\n")
	sb.WriteString(outputShape(mode))
	sb.WriteString("\n\nCRITICAL:\n")
	sb.WriteString("- Output ONLY valid JSON, no other text\n")
	sb.WriteString("- Use the sentiment scale: >= 0.6 positive, 0-0.59 neutral, < 0 negative\n")
	sb.WriteString("\nExtract everything:")
	return sb.String()
}

func taskLine(mode Mode) string {
	switch mode {
	case ModeMenu:
		return "Extract every MENU ITEM (food & drinks) with sentiment."
	case ModeAspects:
		return "Discover the ASPECTS customers care about, with sentiment."
	default:
		return "Extract BOTH menu items AND aspects in ONE PASS."
	}
}

func outputShape(mode Mode) string {
	food := `  "food_items": [
    {"name": "salmon aburi sushi", "mention_count": 2, "sentiment": 0.85, "category": "sushi",
     "related_reviews": [{"review_index": 0, "sentiment_context": "absolutely divine"}]}
  ],
  "drinks": [
    {"name": "sake", "mention_count": 1, "sentiment": 0.7, "category": "alcohol",
     "related_reviews": [{"review_index": 3, "sentiment_context": "great selection"}]}
  ]`
	aspects := `  "aspects": [
    {"name": "service speed", "mention_count": 3, "sentiment": 0.65, "description": "how quickly food arrives",
     "related_reviews": [{"review_index": 1, "sentiment_context": "food came fast"}]}
  ]`
	switch mode {
	case ModeMenu:
		return "{\n" + food + "\n}"
	case ModeAspects:
		return "{\n" + aspects + "\n}"
	default:
		return "{\n" + food + ",\n" + aspects + "\n}"
	}
}

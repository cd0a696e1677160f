package services

import (
	"fmt"

	"vibecheck/internal/models/request_models"
)

// sentimentSystemPrompt is the fixed grading rubric handed to the model. The
// weighting is guidance for the model, not a local formula; the service never
// computes a score itself.
const sentimentSystemPrompt = `You are an expert psychologist and sentiment analyst specializing in mood assessment and emotional intelligence.

Your task is to analyze user mood data and generate a comprehensive sentiment rating out of 100.

Consider these factors in your analysis:
1. **Mood**: The user's emotional state (sad, angry, happy, good, excited)
2. **Energy Level**: Physical and mental energy on a 1-5 scale
3. **Complexity**: How challenging their current situation is (easy, medium, hard, very_hard)
4. **Satisfaction**: Their satisfaction level on a 1-10 scale
5. **Summary**: Context about their current situation

**Rating Scale Guidelines:**
- 0-20: Very negative sentiment (sad/angry mood, low energy, high complexity, low satisfaction)
- 21-40: Negative sentiment (mixed negative factors)
- 41-60: Neutral sentiment (balanced or conflicting factors)
- 61-80: Positive sentiment (generally positive factors)
- 81-100: Very positive sentiment (happy/excited mood, high energy, manageable complexity, high satisfaction)

**Analysis Approach:**
- Weight satisfaction and mood most heavily (40% each)
- Energy level contributes 15%
- Complexity contributes 5% (inverse relationship - higher complexity lowers sentiment)
- Use the summary to provide context and fine-tune the rating

Be precise and consistent in your analysis. The rating should reflect the overall emotional and psychological state of the user.`

// buildSentimentUserPrompt renders the per-call user message embedding all
// six fields of the validated snapshot. Pure function of its input.
func buildSentimentUserPrompt(input request_models.MoodSnapshot) string {
	return fmt.Sprintf(`Please analyze the following user data and provide a sentiment rating:

**User ID:** %d
**Summary:** %q
**Current Mood:** %s
**Energy Level:** %d/5
**Situation Complexity:** %s
**Satisfaction Level:** %g/10

Based on this information, generate a comprehensive sentiment rating out of 100 that reflects the user's overall emotional and psychological state.`,
		input.UserID,
		input.Summary,
		input.Mood,
		input.EnergyLevel,
		input.Complexity,
		input.Satisfaction,
	)
}

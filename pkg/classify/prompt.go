package classify

import "fmt"

const systemInstruction = `
You are an intelligent voice routing agent for Voice OS.
Your goal is to classify user voice input into one of five categories and extract structured data.

INTENT CATEGORIES:
1. REMINDER: Time-based or future-oriented intentions.
2. FORM: Intent to collect specific data points or create a data structure.
3. LIST: Task-oriented speech, items to do, or shopping lists.
4. JOURNAL: Reflective, emotional, or personal check-in speech.
5. IDEA: General thoughts, brainstorming, or capture of information (Default fallback).

SCORING: If multiple intents are present, choose the most relevant one.

FOR REMINDERS: Parse dates and times.
FOR FORMS: Generate form fields: label and type (text, email, number, rating, longtext).
FOR LISTS: Split items into discrete lines.
FOR JOURNALS: Extract emotional tone.
FOR IDEAS: Provide a summary, core idea, and tags.

IMPORTANT: If the user has already selected a specific tool (passed in context), prioritize that classification.

OUTPUT FORMAT: JSON only.
`

func contextMessage(preferred string) string {
	if preferred == "" {
		return "Analyze this audio and route it to the correct suite tool."
	}
	return fmt.Sprintf("The user is specifically using the %s tool. Try to structure the output as that type unless it clearly makes no sense.", preferred)
}

// responseSchema constrains the model to the Result wire shape.
func responseSchema() map[string]any {
	text := map[string]any{"type": "STRING"}
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "STRING",
				"description": "One of REMINDER, FORM, LIST, JOURNAL, IDEA",
			},
			"structuredData": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"transcript": text,
					"summary":    text,
					"coreIdea":   text,
					"tags": map[string]any{
						"type":  "ARRAY",
						"items": text,
					},
					"title": text,
					"items": map[string]any{
						"type": "ARRAY",
						"items": map[string]any{
							"type":       "OBJECT",
							"properties": map[string]any{"text": text},
						},
					},
					"fields": map[string]any{
						"type": "ARRAY",
						"items": map[string]any{
							"type": "OBJECT",
							"properties": map[string]any{
								"label": text,
								"type":  text,
							},
						},
					},
					"text":          text,
					"triggerTime":   text,
					"emotionalTone": text,
				},
			},
		},
		"required": []string{"type", "structuredData"},
	}
}

// Package gemini implements summarizer.Generator on top of the Google GenAI
// SDK (Gemini API backend).
package gemini

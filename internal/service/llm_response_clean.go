package service

import (
	"regexp"
	"strings"
)

// cleanLLMJSONResponse quita fences ```json ... ``` y BOM, dejando el contenido usable.
// El modelo recibe la orden de no usar markdown, pero igual lo hace a veces.
func cleanLLMJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// BOM (por si acaso)
	s = strings.TrimPrefix(s, "\uFEFF")

	// Quitar fences tipo ```json ... ``` o ``` ... ```
	reStart := regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	reEnd := regexp.MustCompile("(?is)\\s*```\\s*$")
	s = reStart.ReplaceAllString(s, "")
	s = reEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

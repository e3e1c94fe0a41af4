package service

import "strings"

// extractFirstJSONObject devuelve el primer objeto JSON balanceado dentro de
// input, o "" si no hay ninguno. Sirve cuando el modelo rodea el JSON con
// comentarios a pesar de las instrucciones. Respeta strings con escapes para
// no contar llaves que estan dentro de un literal.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escape := false

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}

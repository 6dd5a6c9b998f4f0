package letter

import "regexp"

var tokenRegex = regexp.MustCompile(`\{\{\s*([a-z_]+)\s*\}\}`)

// RenderBody substitutes {{field}} tokens in a letter body with values
// from data. Tokens without a value render as empty strings so a partially
// filled letter still produces a readable document.
func RenderBody(body string, data map[string]string) string {
	return tokenRegex.ReplaceAllStringFunc(body, func(token string) string {
		name := tokenRegex.FindStringSubmatch(token)[1]
		return data[name]
	})
}

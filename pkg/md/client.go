// client.go embeds the browser runtime and stylesheet for rendered directives.
package md

import (
	_ "embed"
	"strings"
)

//go:embed client.js
var clientScript string

//go:embed client.css
var stylesheet string

// ClientScript returns the delegated event listener that reveals hidden
// content, colors folding summaries and drives tooltip visibility.
func ClientScript() string {
	return clientScript
}

// Stylesheet returns the base CSS for directive widgets.
func Stylesheet() string {
	return stylesheet
}

// StandalonePage wraps rendered body HTML in a complete document with the
// stylesheet and client script inlined.
func StandalonePage(title, body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	sb.WriteString(escape(title))
	sb.WriteString("</title>\n<style>\n")
	sb.WriteString(stylesheet)
	sb.WriteString("</style>\n</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("<script>\n")
	sb.WriteString(clientScript)
	sb.WriteString("</script>\n</body>\n</html>\n")
	return sb.String()
}

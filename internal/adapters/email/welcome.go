package email

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output. Raw
// HTML in markdown input is escaped (WithUnsafe is NOT set), so a malicious
// email address cannot inject markup into the rendered body.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

const welcomeTemplate = `# Welcome to your video library

Your account **%s** is ready.

Save videos to watch later, like the ones you come back to, and your liked
list will always show the current title and channel straight from the source.

Happy watching.`

// WelcomeHTML renders the welcome email body for a new account.
// The body is authored in markdown and rendered to HTML.
func WelcomeHTML(accountEmail string) string {
	md := fmt.Sprintf(welcomeTemplate, accountEmail)
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		// Fall back to the raw markdown; plain text still reads fine.
		return md
	}
	return buf.String()
}

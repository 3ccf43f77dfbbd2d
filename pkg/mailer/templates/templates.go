package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

// Welcome is the template name used for the post-registration email.
const Welcome = "welcome"

const welcomeSubject = "Welcome to DevConnector"

const welcomeText = `Hi {{.Name}},

Your DevConnector account is ready. Sign in and create your developer profile
to show up in the directory.
`

const welcomeHTML = `<html><body>
<p>Hi {{.Name}},</p>
<p>Your DevConnector account is ready. Sign in and create your developer
profile to show up in the directory.</p>
</body></html>`

var (
	welcomeTextTpl = texttpl.Must(texttpl.New("welcome_text").Parse(welcomeText))
	welcomeHTMLTpl = htmltpl.Must(htmltpl.New("welcome_html").Parse(welcomeHTML))
)

// Render produces subject, text, and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var tb, hb bytes.Buffer
		if err = welcomeTextTpl.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		if err = welcomeHTMLTpl.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		return welcomeSubject, tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}

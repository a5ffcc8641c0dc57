package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const documentHead = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>`

const stylesheet = `  <style>
    body { font-family: system-ui, sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
    nav a { margin-right: 1rem; }
    .flash { background: #fde8e8; border: 1px solid #f5b5b5; padding: .5rem 1rem; border-radius: 4px; }
    label { display: block; margin-top: .75rem; }
    input, textarea { width: 100%; padding: .4rem; box-sizing: border-box; }
    table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
    th, td { text-align: left; border-bottom: 1px solid #ddd; padding: .4rem; }
    img.invite { max-width: 100%; margin: 1rem 0; }
  </style>
`

const adminNav = `  <nav>
    <a href="/admin_dashboard">Dashboard</a>
    <a href="/create_invite">Create invite</a>
    <a href="/logout">Log out</a>
  </nav>
`

// Layout is the document shell shared by every page. The page body is the
// component's children, set with templ.WithChildren.
func Layout(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		var b strings.Builder
		b.WriteString(documentHead)
		b.WriteString(templ.EscapeString(page.Title))
		b.WriteString("</title>\n")
		b.WriteString(stylesheet)
		b.WriteString("</head>\n<body>\n")
		if page.Admin {
			b.WriteString(adminNav)
		}
		if page.Flash != "" {
			b.WriteString(`  <p class="flash" role="alert">`)
			b.WriteString(templ.EscapeString(page.Flash))
			b.WriteString("</p>\n")
		}
		b.WriteString("  <main>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "  </main>\n</body>\n</html>\n")
		return err
	})
}

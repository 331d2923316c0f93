// Package pages holds the site's page components.
package pages

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

// HomePage renders the landing page with a live demo against /api/qr.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		card := twmerge.Merge("rounded-lg border border-gray-200 p-6", "bg-white shadow-sm")
		_, err := fmt.Fprintf(w, homeHTML, card)
		return err
	})
}

const homeHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>qrpaint</title>
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 text-gray-900">
  <main class="mx-auto max-w-2xl px-4 py-12">
    <h1 class="text-3xl font-bold">qrpaint</h1>
    <p class="mt-2 text-gray-600">QR codes with colored rounded eyes, dot modules and embedded logos.</p>
    <div class="mt-8 %s">
      <img src="/api/qr?url=https://qrpaint.dev&amp;size=260&amp;eyeRadius=12&amp;style=dots" alt="demo QR code" width="284" height="284"/>
      <pre class="mt-4 overflow-x-auto text-sm text-gray-700">GET /api/qr?url=https://qrpaint.dev&amp;size=260&amp;eyeRadius=12&amp;style=dots</pre>
    </div>
  </main>
</body>
</html>
`

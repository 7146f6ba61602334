package static

import "embed"

//go:embed styles.css app.js
var FS embed.FS

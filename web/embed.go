package web

import "embed"

// TemplatesFS plantillas HTML renderizadas en el servidor.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

package shapely

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Renderer turns an Explanation into one message language. All renderers
// share the same structural inputs; none reconstructs paths.
type Renderer interface {
	Render(e *Explanation) string
}

type RenderConfig struct {
	Renderer Renderer
	Color    bool
}

type RenderOpt func(*RenderConfig)

func RenderLang(r Renderer) RenderOpt {
	return func(c *RenderConfig) { c.Renderer = r }
}
func RenderColor(v bool) RenderOpt {
	return func(c *RenderConfig) { c.Color = v }
}

// RenderExplanation renders e with the configured language (English by
// default), coloring the embedded schema and value renderings when stdout
// is a terminal or when forced with RenderColor.
func RenderExplanation(e *Explanation, opts ...RenderOpt) string {
	cfg := &RenderConfig{
		Renderer: EnglishRenderer(),
		Color:    isatty.IsTerminal(os.Stdout.Fd()),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	msg := cfg.Renderer.Render(e)
	if !cfg.Color {
		return msg
	}
	msg = strings.ReplaceAll(msg, e.Spec.Render(), specColor(e.Spec.Render()))
	msg = strings.ReplaceAll(msg, e.Value.Render(), valueColor(e.Value.Render()))
	return msg
}

var (
	specColor  = color.New(color.FgCyan).SprintFunc()
	valueColor = color.New(color.FgYellow).SprintFunc()
)

// EnglishRenderer renders explanations in English.
func EnglishRenderer() Renderer {
	return english{}
}

type english struct{}

func (english) Render(e *Explanation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "it%s should be a %s, but got %s\n",
		e.DataPath, e.Spec.Render(), e.Value.Render())
	fmt.Fprintf(&sb, "reason: %s\n", e.Reason)
	fmt.Fprintf(&sb, "spec path: %s\n", e.SpecPath)
	fmt.Fprintf(&sb, "data path: %s\n", e.DataPath)
	return sb.String()
}

// SpanishRenderer renders explanations in Spanish.
func SpanishRenderer() Renderer {
	return spanish{}
}

type spanish struct{}

var spanishReasons = map[Reason]string{
	TypeMismatch:    "tipo incorrecto",
	ConstMismatch:   "constante incorrecta",
	LengthMismatch:  "longitud incorrecta",
	ExtraField:      "campo de más",
	MissingField:    "campo ausente",
	PredicateFailed: "predicado no satisfecho",
	NoAlternative:   "ninguna alternativa",
	UnknownRef:      "referencia desconocida",
}

func (spanish) Render(e *Explanation) string {
	reason, ok := spanishReasons[e.Reason]
	if !ok {
		reason = e.Reason.String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "el valor%s debería ser %s, pero es %s\n",
		e.DataPath, e.Spec.Render(), e.Value.Render())
	fmt.Fprintf(&sb, "motivo: %s\n", reason)
	fmt.Fprintf(&sb, "ruta del esquema: %s\n", e.SpecPath)
	fmt.Fprintf(&sb, "ruta del dato: %s\n", e.DataPath)
	return sb.String()
}

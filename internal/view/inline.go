package view

import (
	"fmt"
	"strings"
)

// htmlEscaper mirrors the replacements html/template applies to text content,
// so both engines emit identical bytes for the same input.
var htmlEscaper = strings.NewReplacer(
	"\x00", "\uFFFD",
	`"`, "&#34;",
	"&", "&amp;",
	"'", "&#39;",
	"+", "&#43;",
	"<", "&lt;",
	">", "&gt;",
)

// inlineRenderer builds the fragments directly in code.
type inlineRenderer struct{}

// NewInline returns a Renderer that formats HTML fragments in code.
// Interpolated values are HTML-escaped.
func NewInline() Renderer {
	return inlineRenderer{}
}

func (inlineRenderer) Index(userAgent string) (string, error) {
	return fmt.Sprintf("<h1>Hello World!</h1><p>Your browser is %s</p>", htmlEscaper.Replace(userAgent)), nil
}

func (inlineRenderer) User(name string) (string, error) {
	return fmt.Sprintf("<p>Hello, %s!</p>", htmlEscaper.Replace(name)), nil
}

func (inlineRenderer) Home() (string, error) {
	return "", ErrNoTemplate
}

func (inlineRenderer) HasHome() bool { return false }

func (inlineRenderer) Name() string { return EngineInline }

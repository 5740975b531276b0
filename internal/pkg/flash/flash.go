// Package flash implements one-shot user messages for the HTML interface on
// top of a plain cookie: set on redirect, consumed on the next render.
package flash

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "catalogo_flash"

type Message struct {
	Kind string // "success" or "error"
	Text string
}

// Set stores a message to be shown by the page after the next redirect. The
// cookie holds a single message, so a later Set within the same request
// replaces the earlier one. Handlers that render directly append to the
// page's flash slice instead; a cookie written here is only readable on the
// following request.
func Set(c *gin.Context, kind, text string) {
	v := url.QueryEscape(kind + "|" + text)
	c.SetCookie(cookieName, v, 60, "/", "", false, true)
}

// Pop returns the pending message, if any, and clears it.
func Pop(c *gin.Context) []Message {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, text, ok := strings.Cut(decoded, "|")
	if !ok {
		return nil
	}
	return []Message{{Kind: kind, Text: text}}
}

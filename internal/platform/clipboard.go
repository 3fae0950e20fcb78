package platform

import (
	"github.com/atotto/clipboard"

	"dostext/internal/logger"
)

// SystemClipboard talks to the OS clipboard directly instead of going through
// the window. Failures are logged and read as an empty clipboard.
type SystemClipboard struct {
	logger logger.Logger
}

func NewSystemClipboard(log logger.Logger) *SystemClipboard {
	return &SystemClipboard{logger: log}
}

// Available reports whether a clipboard utility was found on this system.
func (c *SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

func (c *SystemClipboard) Content() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		c.logger.Warning("SystemClipboard", "read failed", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return text
}

func (c *SystemClipboard) SetContent(content string) {
	if err := clipboard.WriteAll(content); err != nil {
		c.logger.Warning("SystemClipboard", "write failed", map[string]interface{}{"error": err.Error()})
	}
}

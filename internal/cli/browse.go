package cli

import (
	"apichangeguard/internal/models"
	"apichangeguard/internal/tui"
)

// browse opens the interactive violation browser.
func browse(violations []models.Violation, meta models.Meta) error {
	return tui.Run(violations, meta)
}

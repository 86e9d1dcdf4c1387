// Package bundled embeds the default hardware and cloud registry tables
// shipped inside the binary. It is the bottom layer every registry load
// falls back to when no synced cache copy exists.
package bundled

import "embed"

//go:embed hardware.yaml cloud.yaml
var files embed.FS

// Hardware returns the bytes of the bundled default hardware table.
func Hardware() ([]byte, error) {
	return files.ReadFile("hardware.yaml")
}

// Cloud returns the bytes of the bundled default cloud-offering table.
func Cloud() ([]byte, error) {
	return files.ReadFile("cloud.yaml")
}

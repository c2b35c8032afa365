package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const generatedLayout = "2006-01-02 15:04"

var htmlReplacer = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Escape replaces '<' and '>' with their HTML entities. No other character is touched.
func Escape(s string) string {
	return htmlReplacer.Replace(s)
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

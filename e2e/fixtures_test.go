//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// testConfig is an ASCII-only set of widgets so assertions do not depend on the locale
const testConfig = `
version = 1
fragment_id = "e2e"

[ui]
show_labels = true
history_size = 50

[[widgets]]
id = "level"
label = "Level"
click_mode = "single_select"
selection_visualization = "all_up_to_selected"
default = []
form_id = "survey"
[[widgets.options]]
content = "low"
selected_content = "LOW"
[[widgets.options]]
content = "mid"
selected_content = "MID"
[[widgets.options]]
content = "high"
selected_content = "HIGH"

[[widgets]]
id = "topics"
label = "Topics"
click_mode = "multi_select"
default = [0]
form_id = "survey"
[[widgets.options]]
content = "api"
[[widgets.options]]
content = "cli"
[[widgets.options]]
content = "tui"
`

// CreateTestWorkspace creates an isolated directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes content to name inside the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartWithTestConfig creates a workspace, writes testConfig and starts the app on it
func (tf *TUITestFramework) StartWithTestConfig(extraArgs ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	path, err := tf.WriteConfig("widgets.toml", testConfig)
	if err != nil {
		return err
	}
	return tf.StartApp(append([]string{"--config", path}, extraArgs...)...)
}

// Package output renders engine responses for the CLI.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/flant/vault-ad-client/pkg/activedirectory"
)

// Print writes the data envelope of resp as indented JSON, or a plain
// acknowledgment for the empty-bodied answers of writes and deletes.
func Print(w io.Writer, resp *activedirectory.Response) error {
	if len(resp.Body) == 0 {
		_, err := fmt.Fprintln(w, "Success!")
		return err
	}

	raw := resp.Body
	if data := resp.Data(); data.Exists() {
		raw = []byte(data.Raw)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

package cmdlets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// addrFlag is shared by every action cmdlet that talks to an already
// running Driver Station's HTTP API rather than constructing its own.
var addrFlag string

const defaultAddr = "http://127.0.0.1:8080"

var actionClient = &http.Client{Timeout: 5 * time.Second}

// postAction POSTs body (nil for no body) to path on the Driver
// Station pointed to by addrFlag, and reports a non-2xx response as
// an error.
func postAction(path string, body interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	resp, err := actionClient.Post(addrFlag+path, "application/json", reader)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("ds: %s returned %s", path, resp.Status)
	}
	return nil
}

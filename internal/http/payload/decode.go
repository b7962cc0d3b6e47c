package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Decoder reads JSON request bodies.
type Decoder struct{}

// DecodeJSONPayload decodes the request body into object. An empty body
// leaves object untouched.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	err = json.NewDecoder(r.Body).Decode(object)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

package shared

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"gytax/internal/form"
)

// ErrBadBody reports a request body that is neither a JSON object nor a
// urlencoded form.
var ErrBadBody = errors.New("request body must be a JSON object or a urlencoded form")

var ErrBodyTooLarge = errors.New("request body too large")

// DecodeForm reads the raw calculator form from r. JSON bodies must be a
// single object; anything else is parsed as a urlencoded form. An empty
// body yields empty values, which the engines default.
func DecodeForm(r *http.Request) (form.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, errors.Wrap(ErrBadBody, err.Error())
		}
		return form.FromURL(r.PostForm), nil
	}

	if r.Body == nil {
		return form.Values{}, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, errors.Wrap(err, "read request body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return form.Values{}, nil
	}

	values := form.Values{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrap(ErrBadBody, strings.TrimSpace(err.Error()))
	}
	return values, nil
}

package request

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"resort-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ErrInvalidBody = errs.NewValidation("Invalid request body")

// Body is a loosely shaped request payload. Fields are read through an
// ordered list of accepted keys; the first usable key wins.
type Body map[string]any

// BindBody reads a JSON object or a url-encoded/multipart form. An empty
// body yields an empty Body.
func BindBody(c *gin.Context) (Body, error) {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return Body{}, nil
	}

	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		form := map[string]string{}
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			return nil, ErrInvalidBody
		}
		b := make(Body, len(form))
		for k, v := range form {
			b[k] = v
		}
		return b, nil
	default:
		var b Body
		if err := c.ShouldBindJSON(&b); err != nil {
			if errors.Is(err, io.EOF) {
				return Body{}, nil
			}
			return nil, ErrInvalidBody
		}
		if b == nil {
			b = Body{}
		}
		return b, nil
	}
}

// BodyFromQuery lifts query parameters into a Body, for GET endpoints.
func BodyFromQuery(r *http.Request) Body {
	b := Body{}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			b[k] = vs[0]
		}
	}
	return b
}

// String returns the first key holding a non-empty value, trimmed. Numbers
// and booleans are rendered as text; objects and arrays are skipped.
func (b Body) String(keys ...string) string {
	for _, k := range keys {
		if s := scalarString(b[k]); s != "" {
			return s
		}
	}
	return ""
}

// MaxCount caps guest and room counts. Larger values saturate so that an
// absurd request stays unsatisfiable instead of wrapping around.
const MaxCount = math.MaxInt32

// Int reads the first key that is present and non-null. A value that is not
// a number, or is below floor, yields def; later keys are not consulted.
// Values above MaxCount read as MaxCount.
func (b Body) Int(def, floor int, keys ...string) int {
	for _, k := range keys {
		v, ok := b[k]
		if !ok || v == nil {
			continue
		}
		f, ok := number(v)
		if !ok || math.IsNaN(f) || f < float64(floor) {
			return def
		}
		if f > MaxCount {
			return MaxCount
		}
		return int(f)
	}
	return def
}

// Float reads the first non-empty numeric key, or nil.
func (b Body) Float(keys ...string) *float64 {
	for _, k := range keys {
		v, ok := b[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		if f, ok := number(v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f
		}
		return nil
	}
	return nil
}

// Raw re-encodes the first present key so nested values can be parsed by
// the domain. Missing keys yield nil.
func (b Body) Raw(keys ...string) json.RawMessage {
	for _, k := range keys {
		v, ok := b[k]
		if !ok || v == nil {
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return data
	}
	return nil
}

// Strings reads the first key holding an array or a single string.
func (b Body) Strings(keys ...string) []string {
	for _, k := range keys {
		switch v := b[k].(type) {
		case []any:
			out := make([]string, 0, len(v))
			for _, it := range v {
				if s := scalarString(it); s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return []string{s}
			}
		}
	}
	return nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	case bool:
		if t {
			return 1, true
		}
		return 0, false
	default:
		return 0, false
	}
}

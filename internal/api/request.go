package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/dayview/internal/dateutil"
)

// payload is a decoded JSON object. Keeping raw values lets handlers tell
// an absent field from an explicit null.
type payload map[string]json.RawMessage

// bindPayload decodes the request body, answering 400 itself on failure.
func bindPayload(c *gin.Context) (payload, bool) {
	var p payload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "JSON parse error - "+err.Error())
		return nil, false
	}
	if p == nil {
		p = payload{}
	}
	return p, true
}

// lookup returns the raw value for field. ok is false when the field is
// absent; a present null is reported as an error for non-nullable fields.
func (p payload) lookup(field string, required bool, errs fieldErrors) (json.RawMessage, bool) {
	raw, present := p[field]
	if !present {
		if required {
			errs.add(field, msgRequired)
		}
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// str reads a string field.
func (p payload) str(field string, required bool, errs fieldErrors) *string {
	raw, ok := p.lookup(field, required, errs)
	if !ok {
		return nil
	}
	if isNull(raw) {
		errs.add(field, msgNull)
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.add(field, "Not a valid string.")
		return nil
	}
	return &s
}

// datetime reads an ISO 8601 datetime field. Values without an offset are
// taken as UTC.
func (p payload) datetime(field string, required bool, errs fieldErrors) *time.Time {
	s := p.str(field, required, errs)
	if s == nil {
		return nil
	}
	t, err := dateutil.ParseDateTime(*s)
	if err != nil {
		errs.add(field, msgBadDateTime)
		return nil
	}
	return &t
}

// ref reads a related object given as a hyperlink or a plain id. set is
// true when the field was present; id is nil for an accepted null.
func (p payload) ref(field, resource string, required, nullable bool, errs fieldErrors) (id *int64, set bool) {
	raw, ok := p.lookup(field, required, errs)
	if !ok {
		return nil, false
	}
	if isNull(raw) {
		if !nullable {
			errs.add(field, msgNull)
			return nil, false
		}
		return nil, true
	}
	v, msg := parseRef(raw, resource)
	if msg != "" {
		errs.add(field, msg)
		return nil, false
	}
	return &v, true
}

// refs reads a list of related objects.
func (p payload) refs(field, resource string, required bool, errs fieldErrors) *[]int64 {
	raw, ok := p.lookup(field, required, errs)
	if !ok {
		return nil
	}
	if isNull(raw) {
		errs.add(field, msgNull)
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		errs.add(field, fmt.Sprintf(msgNotList, jsonType(raw)))
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		v, msg := parseRef(item, resource)
		if msg != "" {
			errs.add(field, msg)
			return nil
		}
		ids = append(ids, v)
	}
	return &ids
}

// parseRef accepts 3, "3" or "http://host/api/v1/<resource>/3/".
func parseRef(raw json.RawMessage, resource string) (int64, string) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return validID(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Sprintf("Incorrect type. Expected URL string, received %s.", jsonType(raw))
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return validID(n)
	}

	u, err := url.Parse(s)
	if err != nil {
		return 0, msgBadHyperlink
	}
	prefix := BasePath + "/" + resource + "/"
	path := strings.TrimSuffix(u.Path, "/")
	if !strings.HasPrefix(path, prefix) {
		return 0, msgBadHyperlink
	}
	n, err = strconv.ParseInt(strings.TrimPrefix(path, prefix), 10, 64)
	if err != nil {
		return 0, msgBadHyperlink
	}
	return validID(n)
}

func validID(n int64) (int64, string) {
	if n <= 0 {
		return 0, msgMissingObject
	}
	return n, ""
}

func jsonType(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "empty"
	}
	switch s[0] {
	case '{':
		return "dict"
	case '[':
		return "list"
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	default:
		return "int"
	}
}

// pathID parses the :id route parameter. An unparsable id is a 404.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return id, true
}

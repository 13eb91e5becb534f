// Package idgenerator builds sortable ids: an optional prefix, the epoch millis and a url safe uuid.
package idgenerator

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct {
	now func() time.Time
}

func New() Generator {
	return &IDGenerator{now: time.Now}
}

// NewWithClock is New with a fixed time source.
func NewWithClock(now func() time.Time) Generator {
	return &IDGenerator{now: now}
}

// Generate joins the prefixes with "-" and appends "-<millis><uuid>". Without prefixes the id is
// only "<millis><uuid>".
func (g *IDGenerator) Generate(prefixes ...string) string {
	var sb strings.Builder
	if prefix := strings.Join(prefixes, "-"); prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	sb.WriteString(rawURLEncodedUUID(uuid.New()))
	return sb.String()
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}

package mcpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptsEventStream(t *testing.T) {
	tests := []struct {
		name   string
		accept []string
		want   bool
	}{
		{"event stream", []string{"text/event-stream"}, true},
		{"wildcard", []string{"*/*"}, true},
		{"json then event stream", []string{"application/json, text/event-stream"}, true},
		{"text subtype", []string{"text/html"}, true},
		{"json only", []string{"application/json"}, false},
		{"no accept header", nil, false},
		{"multiple header values", []string{"application/json", "text/event-stream"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			for _, v := range tt.accept {
				header.Add("Accept", v)
			}
			assert.Equal(t, tt.want, acceptsEventStream(header))
		})
	}
}

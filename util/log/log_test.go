//go:build !release

package log

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	tests := []struct {
		name     string
		fn       func()
		expected string
	}{
		{"Print", func() { Print("test print") }, "test print"},
		{"Printf", func() { Printf("resized %d of %d", 3, 7) }, "resized 3 of 7"},
		{"Println", func() { Println("test println") }, "test println"},
		{"Debug", func() { Debug("test debug") }, "[DEBUG] test debug"},
		{"Debugf", func() { Debugf("batch %s", "abc") }, "[DEBUG] batch abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

// NOTE: Fatal* exit the process and are not covered here.

package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename_Sanitiza(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"INV/2024#07", "inv-2024-07.pdf"},
		{"FV-0042", "fv-0042.pdf"},
		{"  FV 0042  ", "fv-0042.pdf"},
		{"", "factura.pdf"},
		{"###", "factura.pdf"},
		{"ñö", "factura.pdf"},
		{"a_b-c", "a_b-c.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Filename(tc.in), "Filename(%q)", tc.in)
	}
}

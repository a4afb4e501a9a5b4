package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDERID", "orderid"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},
		{"", ""},
		{"A", "a"},
		{"order_item-ID", "orderitemid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ID", "id"},
		{"Field", "field"},
		{"SubModel", "sub_model"},
		{"UUIDIri", "uuid_iri"},
		{"DateTime", "date_time"},
		{"sub_model", "sub_model"},
		{"getHTTPResponse", "get_http_response"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"XML", "Parser"}, Tokenize("XMLParser"))
	assert.Equal(t, []string{"order", "ID"}, Tokenize("orderID"))
	assert.Equal(t, []string{"a", "b"}, Tokenize("a.b"))
	assert.Nil(t, Tokenize(""))
}

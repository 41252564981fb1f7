package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Search:   &mockSearchService{},
			Ingest:   &mockIngestService{},
			Document: &mockDocumentService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"valid document URI", "mindvault://documents/doc-1", "doc-1"},
		{"list URI has no ID", "mindvault://documents", ""},
		{"trailing path rejected", "mindvault://documents/doc-1/extra", ""},
		{"wrong scheme", "other://documents/doc-1", ""},
		{"empty ID", "mindvault://documents/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDocumentID(tt.uri))
		})
	}
}

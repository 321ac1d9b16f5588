package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/onetap/internal/client/credential"
	"github.com/dmitrijs2005/onetap/internal/client/models"
)

var chooserAccounts = []models.Account{
	{ID: "1", Email: "ada@example.com"},
	{ID: "2", Name: "Grace"},
}

func TestPromptChooser_PicksByNumber(t *testing.T) {
	var out bytes.Buffer
	c := &promptChooser{reader: readerFromLines("2"), out: &out}

	got, err := c.Choose(context.Background(), "client-1", chooserAccounts)
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)
	assert.Contains(t, out.String(), "Choose an account to continue to client-1:")
	assert.Contains(t, out.String(), "1) ada@example.com")
	assert.Contains(t, out.String(), "2) Grace")
}

func TestPromptChooser_RepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	c := &promptChooser{reader: readerFromLines("abc", "7", "1"), out: &out}

	got, err := c.Choose(context.Background(), "client-1", chooserAccounts)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
	assert.Contains(t, out.String(), `Invalid choice "abc"`)
	assert.Contains(t, out.String(), `Invalid choice "7"`)
}

func TestPromptChooser_Cancel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty answer", "\n"},
		{"end of input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &promptChooser{reader: bufioReader(tt.input), out: &bytes.Buffer{}}
			_, err := c.Choose(context.Background(), "client-1", chooserAccounts)
			require.ErrorIs(t, err, credential.ErrCanceled)
		})
	}
}

func TestPromptChooser_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &promptChooser{reader: readerFromLines("1"), out: &bytes.Buffer{}}

	_, err := c.Choose(ctx, "client-1", chooserAccounts)
	require.ErrorIs(t, err, context.Canceled)
}

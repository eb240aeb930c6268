package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProviderID(t *testing.T) {
	raw := uuid.New()

	parsed, err := ParseProviderID(raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw.String(), parsed.String())
	assert.False(t, parsed.IsNil())
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":    "",
		"garbage":  "not-a-uuid",
		"nil uuid": uuid.Nil.String(),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEventID(raw)
			assert.Error(t, err)
		})
	}
}

func TestZeroIDIsNil(t *testing.T) {
	assert.True(t, ProviderID{}.IsNil())
	assert.True(t, EventID{}.IsNil())
	assert.True(t, ActorID{}.IsNil())
	assert.False(t, ActorID(uuid.New()).IsNil())
}

func TestMarshalText(t *testing.T) {
	raw := uuid.New()
	text, err := CertificateID(raw).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, raw.String(), string(text))
}

package line

import (
	"encoding/base64"
	"testing"

	"github.com/BenWeng0419/gpt-ai-assistant/util"
	"github.com/stretchr/testify/require"
)

func TestVerifySignatureRoundTrip(t *testing.T) {
	for range 50 {
		secret := []byte(util.RandomString(int(util.RandomInt(1, 64))))
		body := util.RandomBytes(int(util.RandomInt(0, 512)))

		require.True(t, VerifySignature(body, Sign(body, secret), secret))
	}
}

func TestVerifySignatureSingleBitMutation(t *testing.T) {
	secret := []byte(util.RandomString(32))
	body := []byte(`{"events":[{"type":"message","id":"1"}]}`)

	decoded, err := base64.StdEncoding.DecodeString(Sign(body, secret))
	require.NoError(t, err)

	for i := range len(decoded) * 8 {
		mutated := make([]byte, len(decoded))
		copy(mutated, decoded)
		mutated[i/8] ^= 1 << (i % 8)

		signature := base64.StdEncoding.EncodeToString(mutated)
		require.False(t, VerifySignature(body, signature, secret), "bit %d", i)
	}
}

func TestVerifySignature(t *testing.T) {
	secret := []byte("channel-secret")
	body := []byte(`{"destination":"U1","events":[]}`)
	valid := Sign(body, secret)

	testCases := []struct {
		name      string
		body      []byte
		signature string
		secret    []byte
		wantErr   error
	}{
		{
			name:      "OK",
			body:      body,
			signature: valid,
			secret:    secret,
		},
		{
			name:      "EmptyBodySigned",
			body:      []byte{},
			signature: Sign([]byte{}, secret),
			secret:    secret,
		},
		{
			name:      "EmptyBodyWrongSignature",
			body:      []byte{},
			signature: valid,
			secret:    secret,
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "MissingHeader",
			body:      body,
			signature: "",
			secret:    secret,
			wantErr:   ErrMissingSignature,
		},
		{
			name:      "MalformedBase64",
			body:      body,
			signature: "***not-base64***",
			secret:    secret,
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "TruncatedSignature",
			body:      body,
			signature: base64.StdEncoding.EncodeToString([]byte("short")),
			secret:    secret,
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "WrongSecret",
			body:      body,
			signature: valid,
			secret:    []byte("other-secret"),
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "EmptySecret",
			body:      body,
			signature: Sign(body, nil),
			secret:    nil,
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "BodyChanged",
			body:      []byte(`{"destination":"U1","events":[] }`),
			signature: valid,
			secret:    secret,
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "OneCharacterAltered",
			body:      body,
			signature: alterFirstChar(valid),
			secret:    secret,
			wantErr:   ErrInvalidSignature,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckSignature(tc.body, tc.signature, tc.secret)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.False(t, VerifySignature(tc.body, tc.signature, tc.secret))
				return
			}

			require.NoError(t, err)
			require.True(t, VerifySignature(tc.body, tc.signature, tc.secret))
		})
	}
}

func alterFirstChar(s string) string {
	b := []byte(s)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}
	return string(b)
}

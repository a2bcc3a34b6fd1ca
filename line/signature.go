package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

// SignatureHeader carries the base64 HMAC-SHA256 of the request body.
const SignatureHeader = "X-Line-Signature"

var (
	ErrMissingSignature = errors.New("missing signature header")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Sign returns the signature the platform would send for rawBody.
func Sign(rawBody []byte, secret []byte) string {
	return base64.StdEncoding.EncodeToString(computeMAC(rawBody, secret))
}

// VerifySignature reports whether signature is the base64 HMAC-SHA256 of rawBody
// under secret. Anything that cannot be checked fails closed.
func VerifySignature(rawBody []byte, signature string, secret []byte) bool {
	return CheckSignature(rawBody, signature, secret) == nil
}

// CheckSignature is VerifySignature with the reason for a rejection.
func CheckSignature(rawBody []byte, signature string, secret []byte) error {
	if signature == "" {
		return ErrMissingSignature
	}

	if len(secret) == 0 {
		return ErrInvalidSignature
	}

	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	if !hmac.Equal(decoded, computeMAC(rawBody, secret)) {
		return ErrInvalidSignature
	}

	return nil
}

func computeMAC(rawBody []byte, secret []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(rawBody)
	return mac.Sum(nil)
}

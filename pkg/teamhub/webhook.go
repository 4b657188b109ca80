package teamhub

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrWebhookSecretRequired    = errors.New("webhook secret required")
	ErrWebhookSignatureMissing  = errors.New("webhook signature missing")
	ErrWebhookSignatureMismatch = errors.New("webhook signature mismatch")
)

// WebhookSignaturePrefix is the scheme prefix on delivery signatures.
const WebhookSignaturePrefix = "sha256="

// WebhookEvent is the payload delivered to a webhook's payload URL.
type WebhookEvent struct {
	ID        int64           `json:"id"        yaml:"id"`
	Kind      string          `json:"kind"      yaml:"kind"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Creator   *Person         `json:"creator,omitempty" yaml:"creator,omitempty"`
	Recording json.RawMessage `json:"recording,omitempty" yaml:"recording,omitempty"`
}

// ParseWebhookEvent decodes a delivery body after its signature has been
// verified with VerifyWebhookSignature.
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("decoding webhook event: %w", err)
	}

	return &event, nil
}

// ComputeWebhookSignature returns the signature header value for a delivery
// body: "sha256=" followed by the hex HMAC-SHA256 of the body under secret.
func ComputeWebhookSignature(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)

	return WebhookSignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature checks a delivery body against the signature
// header sent with it. The comparison is constant time. The "sha256="
// prefix on the header is optional.
func VerifyWebhookSignature(secret, body []byte, signature string) error {
	if len(secret) == 0 {
		return ErrWebhookSecretRequired
	}

	if signature == "" {
		return ErrWebhookSignatureMissing
	}

	signature = strings.TrimPrefix(signature, WebhookSignaturePrefix)

	got, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: malformed hex", ErrWebhookSignatureMismatch)
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)

	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrWebhookSignatureMismatch
	}

	return nil
}

package ingest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/hive-corporation/cwp-forwarder/internal/core/domain"
)

// BuildSignature computes the SharedKey authorization header value for one
// Log Analytics request. Pure function: identical inputs always produce the
// identical signature.
func BuildSignature(customerID, sharedKey, date string, contentLength int, method, contentType, resource string) (string, error) {
	stringToSign := fmt.Sprintf("%s\n%d\n%s\nx-ms-date:%s\n%s",
		method, contentLength, contentType, date, resource)

	key, err := base64.StdEncoding.DecodeString(sharedKey)
	if err != nil {
		return "", &domain.ConfigurationError{Field: "shared key", Err: err}
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(stringToSign))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("SharedKey %s:%s", customerID, signature), nil
}

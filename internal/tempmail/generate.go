package tempmail

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/mixelka/tempmailbot/pkg/models"
)

const (
	localPartLength  = 10
	localPartCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateAddress constructs a fresh address with a random local part.
// With an empty domain one is picked uniformly from available, falling back
// to the default domain when the list is empty. The address is built purely
// locally; the provider learns of it on the first Messages call.
func (c *Client) GenerateAddress(domain string, available []string) (models.Address, error) {
	if domain == "" {
		picked, err := pickDomain(available, c.defaultDomain)
		if err != nil {
			return models.Address{}, err
		}
		domain = picked
	}

	login, err := randomLocalPart(localPartLength)
	if err != nil {
		return models.Address{}, fmt.Errorf("failed to generate local part: %w", err)
	}

	return models.Address{Login: login, Domain: domain}, nil
}

// randomLocalPart generates a cryptographically random lowercase-alphanumeric token
func randomLocalPart(length int) (string, error) {
	part := make([]byte, length)
	for i := range part {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(localPartCharset))))
		if err != nil {
			return "", err
		}
		part[i] = localPartCharset[num.Int64()]
	}
	return string(part), nil
}

func pickDomain(available []string, fallback string) (string, error) {
	if len(available) == 0 {
		return fallback, nil
	}
	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(available))))
	if err != nil {
		return "", fmt.Errorf("failed to pick domain: %w", err)
	}
	return available[num.Int64()], nil
}

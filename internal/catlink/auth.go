package catlink

import (
	"context"
	"errors"
	"fmt"
)

// encryptedPasswordMinLen distinguishes plaintext passwords from already
// vendor-encrypted ones: encrypted passwords are base64 RSA blobs, always
// longer than any plaintext the app accepts.
const encryptedPasswordMinLen = 17

// Login authenticates against the region's login endpoint and installs
// the returned session token on the Client. The password may be plaintext
// or the vendor-encrypted form produced by [EncryptPassword].
func (c *Client) Login(ctx context.Context, phoneIAC, phone, password string) (string, error) {
	encrypted := password
	if len(password) < encryptedPasswordMinLen {
		var err error
		encrypted, err = EncryptPassword(password)
		if err != nil {
			return "", err
		}
	}

	params := map[string]string{
		"platform":          "ANDROID",
		"internationalCode": phoneIAC,
		"mobile":            phone,
		"password":          encrypted,
	}

	// A stale token must not leak into the login signature.
	c.token = ""

	var data struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "login/password", params, &data); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	if data.Token == "" {
		return "", errors.New("catlink: login failed: no token in response")
	}
	c.token = data.Token
	return data.Token, nil
}

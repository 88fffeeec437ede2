package catlink

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
)

// signKey is the shared secret appended to every request signature. It is
// baked into the vendor's Android application.
const signKey = "00109190907746a7ad0e2139b6d09ce47551770157fe4ac5922f3a5454c82712"

// rsaPublicKey is the vendor's DER-encoded login key, base64.
const rsaPublicKey = "MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQCCA9I+iEl2AI8dnhdwwxPxHVK8iNAt6aTq6UhNsLsguWS5qtbLnuGz2RQdfNS" +
	"aKSU2B6D/vE2gb1fM6f1A5cKndqF/riWGWn1EfL3FFQZduOTxoA0RTQzhrTa5LHcJ/an/NuHUwShwIOij0Mf4g8faTe4FT7/HdA" +
	"oK7uW0cG9mZwIDAQAB"

// signParams computes the vendor request signature: an uppercase MD5 hex
// digest over the sorted "k=v" parameter pairs joined with "&", with
// "key=<signKey>" appended last.
func signParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	parts = append(parts, "key="+signKey)

	sum := md5.Sum([]byte(strings.Join(parts, "&")))
	return strings.ToUpper(fmt.Sprintf("%x", sum))
}

// EncryptPassword encrypts a plaintext password for the CatLink login
// endpoint: SHA1(MD5(password)) is RSA-encrypted (PKCS#1 v1.5) with the
// vendor's public key and base64-encoded. The output is replayable, so
// it doubles as the persisted re-authentication secret.
func EncryptPassword(password string) (string, error) {
	md5Hex := fmt.Sprintf("%x", md5.Sum([]byte(password)))
	shaHex := strings.ToUpper(fmt.Sprintf("%x", sha1.Sum([]byte(md5Hex))))

	der, err := base64.StdEncoding.DecodeString(rsaPublicKey)
	if err != nil {
		return "", fmt.Errorf("decode vendor public key: %w", err)
	}
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return "", fmt.Errorf("parse vendor public key: %w", err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return "", fmt.Errorf("vendor public key is %T, expected RSA", parsed)
	}

	enc, err := rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(shaHex))
	if err != nil {
		return "", fmt.Errorf("encrypt password: %w", err)
	}
	return base64.StdEncoding.EncodeToString(enc), nil
}

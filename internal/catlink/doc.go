// Package catlink provides an HTTP client for the CatLink cloud API.
//
// The client wraps [github.com/go-resty/resty/v2] and speaks the vendor's
// signed request protocol: every request carries a millisecond nonce, the
// session token, and an MD5 signature over the sorted parameters.
//
// # Basic Usage
//
//	c := catlink.New("https://app-usa.catlinks.cn/api/",
//	    catlink.WithToken("my-token"),
//	    catlink.WithLanguage("en_GB"),
//	)
//
//	devices, err := c.Devices(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained.
//
// # Response Classification
//
// Vendor responses carry a returnCode. Code 0 is success and the payload
// is decoded; code 1002 maps to [ErrTokenExpired]; any other code maps to
// an [*APIError] carrying the vendor message. Transport errors, unexpected
// HTTP statuses, and malformed bodies are returned as descriptive errors.
// The client never retries on its own; token refresh and the single retry
// on expiry are the session runner's responsibility.
//
// # Validation
//
// Device-type, mode, and action arguments are checked against static
// tables before any request is built, so an invalid command never reaches
// the network. See [ModeCode], [ActionCode], and the ErrUnsupportedDeviceType
// checks on each operation.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library; the interface is signature-compatible
// with resty's Logger, so the same implementation also receives resty's
// transport logs. The default [NoopLogger] discards all log output. Ensure
// your implementation redacts tokens from request and response bodies
// before persisting logs.
package catlink

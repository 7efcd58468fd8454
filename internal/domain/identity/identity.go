// Package identity normalizes provider-specific OAuth attribute payloads
// into one canonical identity shape. It is pure domain logic: no I/O, no
// persistence. The caller projects the result into a local user record.
package identity

import (
	"encoding/json"
	"fmt"
	"strconv"

	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
)

// ExternalIdentity is the canonical, provider-agnostic representation of a
// logged-in person, built fresh on every OAuth callback.
type ExternalIdentity struct {
	Provider            string         // Provider tag, e.g. "google", "github", "naver".
	ProviderID          string         // The provider's unique subject id, always a string.
	DisplayName         string
	Email               string         // Optional; providers may omit it.
	AvatarURL           string         // Optional.
	PrimaryAttributeKey string         // The attribute the provider uses as subject id ("sub", "id", ...).
	RawAttributes       map[string]any // The attribute object lookups were resolved against.
}

// scheme describes where one provider keeps each canonical field.
type scheme struct {
	nameKey   string
	emailKey  string
	avatarKey string
	idKey     string

	// nestedKey, when set, points at a required child object that holds all
	// attributes (naver wraps everything in "response"). forcedPrimaryKey
	// overrides the caller-supplied primary attribute key for such providers.
	nestedKey        string
	forcedPrimaryKey string
}

// schemes is the provider dispatch table. Adding a provider is adding an
// entry here, not editing a conditional chain.
var schemes = map[string]scheme{
	"google": {nameKey: "name", emailKey: "email", avatarKey: "picture", idKey: "sub"},
	"github": {nameKey: "login", emailKey: "email", avatarKey: "avatar_url", idKey: "id"},
	"naver": {
		nameKey: "name", emailKey: "email", avatarKey: "profile_image", idKey: "id",
		nestedKey: "response", forcedPrimaryKey: "id",
	},
}

// defaultScheme is applied to unrecognized provider tags. Treating an unknown
// provider as google-shaped keeps logins working when a deployment registers
// a new OIDC provider, at the cost of silently mis-mapping exotic payloads;
// callers should check Known and log when the fallback kicks in.
var defaultScheme = schemes["google"]

// Known reports whether the provider tag has a dedicated mapping. A false
// return means Normalize will fall back to the default (google-shaped) path.
func Known(provider string) bool {
	_, ok := schemes[provider]

	return ok
}

// Normalize converts a raw provider attribute payload into an
// ExternalIdentity. Missing optional fields (email, avatar) become empty
// strings; a missing required nested object is a hard failure.
func Normalize(provider, primaryAttributeKey string, attributes map[string]any) (*ExternalIdentity, error) {
	sch, ok := schemes[provider]
	if !ok {
		sch = defaultScheme
	}

	attrs := attributes
	if sch.nestedKey != "" {
		nested, ok := attributes[sch.nestedKey].(map[string]any)
		if !ok {
			return nil, domainerrors.ErrMalformedIdentityPayload.WrapMessage(
				fmt.Sprintf("provider %s payload is missing the %q object", provider, sch.nestedKey))
		}
		attrs = nested
	}
	if sch.forcedPrimaryKey != "" {
		primaryAttributeKey = sch.forcedPrimaryKey
	}

	return &ExternalIdentity{
		Provider:            provider,
		ProviderID:          stringAttr(attrs, sch.idKey),
		DisplayName:         stringAttr(attrs, sch.nameKey),
		Email:               stringAttr(attrs, sch.emailKey),
		AvatarURL:           stringAttr(attrs, sch.avatarKey),
		PrimaryAttributeKey: primaryAttributeKey,
		RawAttributes:       attrs,
	}, nil
}

// stringAttr coerces an attribute value to a string. Provider ids are not
// always strings (github sends a JSON number), and JSON numbers decode as
// float64 unless the caller used json.Number, so both need exact formatting.
func stringAttr(attrs map[string]any, key string) string {
	switch v := attrs[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Package contentid resolves free-form user input into one of the three ways
// a gofile resource can be addressed: a content code, a content uuid, or a
// direct download URL.
package contentid

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/glorpus-work/gofile/pkg/errors"
)

// Kind identifies the addressing scheme of a ContentID.
type Kind string

// Supported addressing schemes.
const (
	KindDirectLink Kind = "direct-link"
	KindUniqueID   Kind = "unique-id"
	KindCode       Kind = "code"
)

// ContentID is the resolved form of a user-supplied identifier. Exactly one
// variant is populated, selected by Kind: URL and Filename for a direct link,
// ID for a unique id, Code for a content code.
type ContentID struct {
	Kind     Kind
	URL      *url.URL
	Filename string
	ID       uuid.UUID
	Code     string
}

// canonicalUUIDLen is the length of the hyphenated uuid form; uuid.Parse also
// accepts non-hyphenated and urn forms, which the service never issues.
const canonicalUUIDLen = 36

// Parse resolves input into a ContentID. Resolution is total except for URL
// inputs with an unexpected shape: uuid parsing is tried first, then absolute
// URL parsing, and anything else is taken verbatim as a content code.
func Parse(input string) (ContentID, error) {
	if id, err := parseUUID(input); err == nil {
		return ContentID{Kind: KindUniqueID, ID: id}, nil
	}

	u, err := url.Parse(input)
	if err != nil || !u.IsAbs() {
		return ContentID{Kind: KindCode, Code: input}, nil
	}

	return parseURL(u)
}

func parseURL(u *url.URL) (ContentID, error) {
	if u.Opaque != "" || u.Path == "" || u.Path == "/" {
		return ContentID{}, errors.Wrap(errors.ErrInvalidURL, u.String())
	}

	segs := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	switch segs[0] {
	case "d":
		if len(segs) != 2 {
			return ContentID{}, errors.Wrap(errors.ErrInvalidContentURL, u.String())
		}
		return ContentID{Kind: KindCode, Code: segs[1]}, nil
	case "download":
		if len(segs) != 3 {
			return ContentID{}, errors.Wrap(errors.ErrInvalidDownloadURL, u.String())
		}
		if _, err := parseUUID(segs[1]); err != nil {
			return ContentID{}, errors.Wrap(errors.ErrInvalidDownloadURL, u.String())
		}
		return ContentID{Kind: KindDirectLink, URL: u, Filename: segs[2]}, nil
	default:
		return ContentID{}, errors.Wrap(errors.ErrInvalidURL, u.String())
	}
}

// parseUUID accepts only the canonical hyphenated form.
func parseUUID(s string) (uuid.UUID, error) {
	if len(s) != canonicalUUIDLen {
		return uuid.UUID{}, fmt.Errorf("not a canonical uuid: %q", s)
	}
	return uuid.Parse(s)
}

// String renders the identifier in the form the user supplied it.
func (c ContentID) String() string {
	switch c.Kind {
	case KindDirectLink:
		return c.URL.String()
	case KindUniqueID:
		return c.ID.String()
	default:
		return c.Code
	}
}

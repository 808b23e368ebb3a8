package dataset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	apperrors "autoscatter/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SupportedEncoding reports whether the named encoding can be used in
// the fallback list.
func SupportedEncoding(name string) bool {
	_, err := lookupEncoding(name)
	return err == nil
}

// lookupEncoding maps a configured encoding name to its decoder. Names
// follow the aliases the original data files were written with.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return nil, nil // decoded natively, see decodeBytes
	case "cp932", "shift_jis", "shift-jis", "sjis", "windows-31j":
		return japanese.ShiftJIS, nil
	case "euc-jp", "eucjp":
		return japanese.EUCJP, nil
	case "iso-2022-jp":
		return japanese.ISO2022JP, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp1252", "windows-1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
}

// decodeBytes decodes data under the named encoding, failing when the
// bytes are not valid for it. x/text decoders substitute U+FFFD for
// invalid input instead of erroring, so a replacement rune in the output
// is treated as a decode failure (the raw sources never contain one).
func decodeBytes(data []byte, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	if enc == nil {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid UTF-8 byte sequence")
		}
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", encodingName, err)
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("byte sequence not valid for %s", encodingName)
	}
	return string(decoded), nil
}

// decodeWithFallback tries each configured encoding in priority order and
// returns the first successful decode along with the encoding that won.
func decodeWithFallback(op string, data []byte, encodings []string) (string, string, error) {
	if len(encodings) == 0 {
		encodings = []string{"utf-8"}
	}

	var lastErr error
	for _, name := range encodings {
		text, err := decodeBytes(data, name)
		if err == nil {
			return text, name, nil
		}
		lastErr = err
	}

	return "", "", &apperrors.Error{
		Kind:    apperrors.KindDataLoad,
		Op:      op,
		Message: fmt.Sprintf("no configured encoding decodes the file (tried %s)", strings.Join(encodings, ", ")),
		Err:     lastErr,
	}
}

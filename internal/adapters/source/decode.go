package source

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts raw file bytes to text according to enc.
// A leading byte order mark is never part of the result.
func Decode(data []byte, enc domain.Encoding) (string, error) {
	var decoder transform.Transformer

	switch enc {
	case domain.EncodingAuto, "":
		if hasUTF16BOM(data) {
			decoder = unicode.BOMOverride(unicode.UTF8.NewDecoder())
			break
		}
		// Without a BOM, NUL bytes mean UTF-16 that auto detection cannot place.
		if bytes.IndexByte(data, 0) >= 0 {
			return "", zerr.With(domain.ErrSourceDecodeFailed, "hint", "file contains NUL bytes, set encoding to utf-16le or utf-16be")
		}
		return decodeUTF8(data)
	case domain.EncodingUTF8:
		return decodeUTF8(data)
	case domain.EncodingUTF16:
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case domain.EncodingUTF16LE:
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case domain.EncodingUTF16BE:
		decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		return "", zerr.With(domain.ErrUnsupportedEncoding, "encoding", string(enc))
	}

	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrSourceDecodeFailed.Error())
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

func decodeUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, bomUTF8)
	if !utf8.Valid(data) {
		return "", zerr.With(domain.ErrSourceDecodeFailed, "hint", "file is not valid UTF-8")
	}
	return string(data), nil
}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE)
}

// This file is part of Locutus.
//
// Locutus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Locutus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Locutus.  If not, see <https://www.gnu.org/licenses/>.

package metadata

import (
	"strings"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/logger"
)

// Error patterns.
const (
	TLVTruncated = "metadata: tlv: truncated at offset %d"
)

// the tags of the tag-length-value encoding
const (
	tagName        = 0x00
	tagShortName   = 0x01
	tagAuthor      = 0x02
	tagPublisher   = 0x03
	tagReleaseDate = 0x04
	tagLicense     = 0x05
	tagDescription = 0x06
	tagMisc        = 0x07
	tagGameArtist  = 0x08
	tagMusicBy     = 0x09
	tagSFXBy       = 0x0a
	tagVoicesBy    = 0x0b
	tagDocsBy      = 0x0c
	tagConceptBy   = 0x0d
	tagBoxArtist   = 0x0e
	tagMoreInfo    = 0x0f
)

// build dates and versions have no tag of their own and are stored as misc
// entries with these prefixes
const (
	miscBuildDate = "build_date="
	miscVersion   = "version="
)

// the maximum length of a single value
const maxTLVLength = 255

func packString(tag byte, data []byte, s string) []byte {
	if len(s) > maxTLVLength {
		s = s[:maxTLVLength]
	}
	data = append(data, tag, byte(len(s)))
	return append(data, s...)
}

func packStrings(tag byte, data []byte, v []string) []byte {
	for _, s := range v {
		data = packString(tag, data, s)
	}
	return data
}

// Serialize the descriptive metadata with the tag-length-value encoding used
// by LUIGI files. Compatibility settings are not included.
func (m *Metadata) Serialize() []byte {
	var data []byte

	if m.Name != "" {
		data = packString(tagName, data, m.Name)
	}
	if m.ShortName != "" {
		data = packString(tagShortName, data, m.ShortName)
	}

	data = packStrings(tagAuthor, data, m.Authors)
	data = packStrings(tagGameArtist, data, m.GameArtists)
	data = packStrings(tagMusicBy, data, m.Composers)
	data = packStrings(tagSFXBy, data, m.SFXArtists)
	data = packStrings(tagVoicesBy, data, m.VoiceActors)
	data = packStrings(tagDocsBy, data, m.DocWriters)
	data = packStrings(tagConceptBy, data, m.Conceptualizers)
	data = packStrings(tagBoxArtist, data, m.BoxArtists)
	data = packStrings(tagMoreInfo, data, m.MoreInfo)
	data = packStrings(tagPublisher, data, m.Publishers)

	for _, d := range m.ReleaseDates {
		if d.IsZero() {
			continue
		}
		enc := d.Encode()
		data = append(data, tagReleaseDate, byte(len(enc)))
		data = append(data, enc...)
	}

	data = packStrings(tagLicense, data, m.Licenses)
	data = packStrings(tagDescription, data, m.Descriptions)
	data = packStrings(tagMisc, data, m.Misc)

	for _, d := range m.BuildDates {
		if d.IsZero() {
			continue
		}
		data = packString(tagMisc, data, miscBuildDate+d.String())
	}
	for _, v := range m.Versions {
		data = packString(tagMisc, data, miscVersion+v)
	}

	return data
}

// Deserialize replaces the descriptive metadata with the metadata in the
// tag-length-value encoded data. Unknown tags are skipped. Compatibility
// settings are not changed.
func (m *Metadata) Deserialize(data []byte) error {
	m.Clear()

	for i := 0; i < len(data); {
		if len(data)-i < 2 {
			return curated.Errorf(TLVTruncated, i)
		}

		tag := data[i]
		l := int(data[i+1])
		i += 2

		if len(data)-i < l {
			return curated.Errorf(TLVTruncated, i)
		}

		v := data[i : i+l]
		i += l

		switch tag {
		case tagName:
			m.Name = string(v)
		case tagShortName:
			m.ShortName = string(v)
		case tagAuthor:
			m.Authors = append(m.Authors, string(v))
		case tagGameArtist:
			m.GameArtists = append(m.GameArtists, string(v))
		case tagMusicBy:
			m.Composers = append(m.Composers, string(v))
		case tagSFXBy:
			m.SFXArtists = append(m.SFXArtists, string(v))
		case tagVoicesBy:
			m.VoiceActors = append(m.VoiceActors, string(v))
		case tagDocsBy:
			m.DocWriters = append(m.DocWriters, string(v))
		case tagConceptBy:
			m.Conceptualizers = append(m.Conceptualizers, string(v))
		case tagBoxArtist:
			m.BoxArtists = append(m.BoxArtists, string(v))
		case tagMoreInfo:
			m.MoreInfo = append(m.MoreInfo, string(v))
		case tagPublisher:
			m.Publishers = append(m.Publishers, string(v))
		case tagReleaseDate:
			d, err := DecodeDate(v)
			if err != nil {
				logger.Logf(logger.Allow, "metadata", "release date ignored: %v", err)
				continue
			}
			m.ReleaseDates = append(m.ReleaseDates, d)
		case tagLicense:
			m.Licenses = append(m.Licenses, string(v))
		case tagDescription:
			m.Descriptions = append(m.Descriptions, string(v))
		case tagMisc:
			m.unpackMisc(string(v))
		default:
			logger.Logf(logger.Allow, "metadata", "unknown tag %#02x skipped", tag)
		}
	}

	return nil
}

func (m *Metadata) unpackMisc(s string) {
	if v, ok := strings.CutPrefix(s, miscBuildDate); ok {
		if d, ok := ParseDate(v); ok {
			m.BuildDates = append(m.BuildDates, d)
			return
		}
	}
	if v, ok := strings.CutPrefix(s, miscVersion); ok {
		m.Versions = append(m.Versions, v)
		return
	}
	m.Misc = append(m.Misc, s)
}


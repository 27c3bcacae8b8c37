// Package ustar reads and writes USTAR-format tar headers: fixed
// 512-byte records with octal-or-base-256 numeric fields, a checksum
// over the whole record, and the padding/end-of-archive conventions a
// tar stream depends on. Ported from pgBackRest's storage/tar.c.
package ustar

import "github.com/pgbackrest/corert/errkit"

// HeaderSize is the fixed size of a USTAR header record.
const HeaderSize = 512

// Field byte ranges within a header record, laid out exactly as
// TarHeaderData in tar.c (including the linkname/prefix fields that
// pgBackRest's own tar.h leaves undocumented in prose but which are
// required to make the struct add up to 512 bytes).
const (
	offName     = 0
	sizeName    = 100
	offMode     = offName + sizeName
	sizeMode    = 8
	offUID      = offMode + sizeMode
	sizeUID     = 8
	offGID      = offUID + sizeUID
	sizeGID     = 8
	offSize     = offGID + sizeGID
	sizeSize    = 12
	offMtime    = offSize + sizeSize
	sizeMtime   = 12
	offChksum   = offMtime + sizeMtime
	sizeChksum  = 8
	offTypeflag = offChksum + sizeChksum
	offLinkname = offTypeflag + 1
	sizeLink    = 100
	offMagic    = offLinkname + sizeLink
	sizeMagic   = 6
	offVersion  = offMagic + sizeMagic
	sizeVersion = 2
	offUname    = offVersion + sizeVersion
	sizeUname   = 32
	offGname    = offUname + sizeUname
	sizeGname   = 32
	offDevmajor = offGname + sizeGname
	sizeDev     = 8
	offDevminor = offDevmajor + sizeDev
	offPrefix   = offDevminor + sizeDev
	sizePrefix  = 155
)

const (
	typeflagFile = '0'
	magic        = "ustar"
	version      = "00"
)

// Header describes the fields needed to build or read back a regular
// file's USTAR record. devmajor/devminor are always 0, matching
// pgBackRest's tar writer: this package targets backup archives, not
// general device-file portability.
type Header struct {
	Name    string
	Mode    uint32
	UID     uint32
	GID     uint32
	Size    uint64
	Mtime   int64
	Uname   string
	Gname   string
}

// Build renders h as a 512-byte USTAR header record, including a
// correct checksum. It throws FormatError if name, Uname or Gname
// exceed their field's capacity.
func Build(h Header) [HeaderSize]byte {
	var data [HeaderSize]byte

	putString(data[offName:offName+sizeName], h.Name, "file name")
	writeOctalOrBase256(data[offMode:offMode+sizeMode], uint64(h.Mode&07777))
	writeOctalOrBase256(data[offUID:offUID+sizeUID], uint64(h.UID))
	writeOctalOrBase256(data[offGID:offGID+sizeGID], uint64(h.GID))
	writeOctalOrBase256(data[offSize:offSize+sizeSize], h.Size)
	writeOctalOrBase256(data[offMtime:offMtime+sizeMtime], uint64(h.Mtime))

	if h.Uname != "" {
		putString(data[offUname:offUname+sizeUname], h.Uname, "user")
	}
	if h.Gname != "" {
		putString(data[offGname:offGname+sizeGname], h.Gname, "group")
	}

	data[offTypeflag] = typeflagFile
	copy(data[offMagic:offMagic+sizeMagic], magic)
	copy(data[offVersion:offVersion+sizeVersion], version)

	writeOctalOrBase256(data[offDevmajor:offDevmajor+sizeDev], 0)
	writeOctalOrBase256(data[offDevminor:offDevminor+sizeDev], 0)

	writeChecksumField(data[offChksum:offChksum+sizeChksum], checksum(data[:]))

	return data
}

func putString(field []byte, s string, what string) {
	if len(s) >= len(field) {
		errkit.Throwf(errkit.FormatError, "%s '%s' is too long for the tar format", what, s)
	}
	copy(field, s)
}

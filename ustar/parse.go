package ustar

import "strings"

// Parse decodes a 512-byte USTAR header back into its fields. It does
// not validate the checksum; call Valid for that.
func Parse(data [HeaderSize]byte) Header {
	return Header{
		Name:  trimField(data[offName : offName+sizeName]),
		Mode:  uint32(readOctalOrBase256(data[offMode : offMode+sizeMode])),
		UID:   uint32(readOctalOrBase256(data[offUID : offUID+sizeUID])),
		GID:   uint32(readOctalOrBase256(data[offGID : offGID+sizeGID])),
		Size:  readOctalOrBase256(data[offSize : offSize+sizeSize]),
		Mtime: int64(readOctalOrBase256(data[offMtime : offMtime+sizeMtime])),
		Uname: trimField(data[offUname : offUname+sizeUname]),
		Gname: trimField(data[offGname : offGname+sizeGname]),
	}
}

// Valid reports whether data's stored checksum matches a recomputation
// with the checksum field treated as spaces.
func Valid(data [HeaderSize]byte) bool {
	stored := readChecksumField(data[offChksum : offChksum+sizeChksum])
	return stored == checksum(data[:])
}

func trimField(field []byte) string {
	i := 0
	for i < len(field) && field[i] != 0 {
		i++
	}
	return strings.TrimRight(string(field[:i]), " ")
}

// Package va holds the VA-API side of the translation boundary: buffer type
// identifiers, the API version the driver negotiates, and the VP9 decode
// parameter buffers whose packed flag words are unpacked here.
package va

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a VA-API version triple.
type Version struct {
	Major, Minor, Micro int
}

// APIVersion is the VA-API level this driver is built against.
var APIVersion = Version{Major: 1, Minor: 22, Micro: 0}

// AtLeast reports whether v is the same as or newer than o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor > o.Minor
	}
	return v.Micro >= o.Micro
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// ParseVersion parses "major.minor[.micro]". Each part must be a
// non-negative decimal number with nothing trailing.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid VA-API version %q", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.HasPrefix(p, "+") {
			return Version{}, fmt.Errorf("invalid VA-API version %q", s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Micro: nums[2]}, nil
}

// BufferType is VABufferType.
type BufferType int32

const (
	PictureParameterBufferType     BufferType = 0
	IQMatrixBufferType             BufferType = 1
	BitPlaneBufferType             BufferType = 2
	SliceGroupMapBufferType        BufferType = 3
	SliceParameterBufferType       BufferType = 4
	SliceDataBufferType            BufferType = 5
	MacroblockParameterBufferType  BufferType = 6
	ResidualDataBufferType         BufferType = 7
	DeblockingParameterBufferType  BufferType = 8
	ImageBufferType                BufferType = 9
	ProtectedSliceDataBufferType   BufferType = 10
	QMatrixBufferType              BufferType = 11
	EncCodedBufferType             BufferType = 21
	EncSequenceParameterBufferType BufferType = 22
	EncPictureParameterBufferType  BufferType = 23
	EncSliceParameterBufferType    BufferType = 24
	EncMiscParameterBufferType     BufferType = 27
)

// FourCC values used for surface and image formats.
const (
	FourCCNV12 uint32 = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	FourCCYV12 uint32 = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24
	FourCCIYUV uint32 = 'I' | 'Y'<<8 | 'U'<<16 | 'V'<<24
	FourCCBGRA uint32 = 'B' | 'G'<<8 | 'R'<<16 | 'A'<<24
	FourCCP010 uint32 = 'P' | '0'<<8 | '1'<<16 | '0'<<24
)

// SurfaceID is VASurfaceID.
type SurfaceID uint32

// InvalidSurface is VA_INVALID_SURFACE.
const InvalidSurface SurfaceID = 0xFFFFFFFF

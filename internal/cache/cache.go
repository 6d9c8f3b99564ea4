// Package cache persists the face pattern table and the corner arrangement
// arrays as binary blobs so later runs skip the precomputation.
//
// FaceTable.dat is the raw table: 10,077,696 little-endian 16-bit ids.
// Corners.dat is the even-parity array followed by the odd-parity array,
// 102 bytes per arrangement (54 sticker bytes, six 32-bit face indexes, six
// 32-bit next-distinct pointers), all little-endian.
package cache

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seamusw/scramblesearch/internal/corners"
	"github.com/seamusw/scramblesearch/internal/cube"
	"github.com/seamusw/scramblesearch/internal/face"
)

const (
	// FaceTableFile and CornersFile are the cache file names, created in
	// the working directory.
	FaceTableFile = "FaceTable.dat"
	CornersFile   = "Corners.dat"

	// FaceTableSize is the exact byte size of FaceTable.dat.
	FaceTableSize = cube.FaceArrangements * 2

	arrangementSize = cube.Surfaces + cube.Faces*4 + cube.Faces*4

	// CornersSize is the exact byte size of Corners.dat.
	CornersSize = arrangementSize * (corners.EvenArrangements + corners.OddArrangements)
)

// FaceTablePath returns the face table cache path under dir.
func FaceTablePath(dir string) string {
	return filepath.Join(dir, FaceTableFile)
}

// CornersPath returns the corner arrangement cache path under dir.
func CornersPath(dir string) string {
	return filepath.Join(dir, CornersFile)
}

// WriteFaceTable persists the face table to path.
func WriteFaceTable(path string, t *face.Table) error {
	ids := t.IDs()
	buf := make([]byte, len(ids)*2)
	for i, id := range ids {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(id))
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write face table: %w", err)
	}
	return nil
}

// ReadFaceTable loads the face table from path, validating the exact size.
func ReadFaceTable(path string) (*face.Table, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read face table: %w", err)
	}
	if len(buf) != FaceTableSize {
		return nil, fmt.Errorf("face table cache is %d bytes, want %d", len(buf), FaceTableSize)
	}
	ids := make([]face.ID, cube.FaceArrangements)
	for i := range ids {
		ids[i] = face.ID(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return face.FromIDs(ids)
}

// WriteArrangements persists both corner arrangement arrays to path, even
// parity first.
func WriteArrangements(path string, even, odd []corners.Arrangement) error {
	buf := make([]byte, 0, (len(even)+len(odd))*arrangementSize)
	buf = appendArrangements(buf, even)
	buf = appendArrangements(buf, odd)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write corner arrangements: %w", err)
	}
	return nil
}

// ReadArrangements loads both corner arrangement arrays from path,
// validating the exact size fixed by the expected arrangement counts.
func ReadArrangements(path string) (even, odd []corners.Arrangement, err error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read corner arrangements: %w", err)
	}
	if len(buf) != CornersSize {
		return nil, nil, fmt.Errorf("corner arrangement cache is %d bytes, want %d", len(buf), CornersSize)
	}
	even = decodeArrangements(buf, corners.EvenArrangements)
	odd = decodeArrangements(buf[corners.EvenArrangements*arrangementSize:], corners.OddArrangements)
	return even, odd, nil
}

func appendArrangements(buf []byte, arrs []corners.Arrangement) []byte {
	var record [arrangementSize]byte
	for i := range arrs {
		a := &arrs[i]
		copy(record[:], a.Stickers[:])
		off := cube.Surfaces
		for _, v := range a.FaceIndex {
			binary.LittleEndian.PutUint32(record[off:], v)
			off += 4
		}
		for _, v := range a.NextDistinct {
			binary.LittleEndian.PutUint32(record[off:], uint32(v))
			off += 4
		}
		buf = append(buf, record[:]...)
	}
	return buf
}

func decodeArrangements(buf []byte, n int) []corners.Arrangement {
	arrs := make([]corners.Arrangement, n)
	for i := range arrs {
		record := buf[i*arrangementSize:]
		a := &arrs[i]
		copy(a.Stickers[:], record[:cube.Surfaces])
		off := cube.Surfaces
		for f := 0; f < cube.Faces; f++ {
			a.FaceIndex[f] = binary.LittleEndian.Uint32(record[off:])
			off += 4
		}
		for f := 0; f < cube.Faces; f++ {
			a.NextDistinct[f] = int32(binary.LittleEndian.Uint32(record[off:]))
			off += 4
		}
	}
	return arrs
}

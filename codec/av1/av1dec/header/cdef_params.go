/*
DESCRIPTION
  cdef_params.go parses the cdef_params() syntax element of an AV1
  uncompressed frame header (AV1 spec 5.9.19) into the av1dec.CdefParams
  collaborator the driver reads its strength tables from. It reuses
  codec/h264/h264dec/bits.BitReader unmodified, since both are plain
  MSB-first bitstream readers over an io.Reader and the CDEF syntax has no
  dependency on anything H.264-specific in that package.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

// Package header parses the small slice of AV1 frame/sequence header syntax
// the CDEF driver depends on.
package header

import (
	"github.com/pkg/errors"

	"github.com/ausocean/av1/codec/av1/av1dec"
	"github.com/ausocean/av1/codec/h264/h264dec/bits"
)

// ReadCdefParams parses cdef_params() from br given the three header flags
// that gate whether it carries any bits: CodedLossless and AllowIntrabc
// disable CDEF entirely (an all-zero, damping-3 table is returned without
// consuming bits), as does !EnableCdef. numPlanes distinguishes monochrome
// (no UV strength fields) from color.
func ReadCdefParams(br *bits.BitReader, codedLossless, allowIntrabc, enableCdef bool, numPlanes int) (av1dec.CdefParams, error) {
	if codedLossless || allowIntrabc || !enableCdef {
		return av1dec.NewCdefParams(3, [8]uint8{}, [8]uint8{})
	}

	dampingMinus3, err := br.ReadBits(2)
	if err != nil {
		return av1dec.CdefParams{}, errors.Wrap(err, "av1dec/header: cdef_damping_minus_3")
	}
	bitsN, err := br.ReadBits(2)
	if err != nil {
		return av1dec.CdefParams{}, errors.Wrap(err, "av1dec/header: cdef_bits")
	}

	var yStrength, uvStrength [8]uint8
	n := 1 << uint(bitsN)
	for i := 0; i < n; i++ {
		yPri, err := br.ReadBits(4)
		if err != nil {
			return av1dec.CdefParams{}, errors.Wrapf(err, "av1dec/header: cdef_y_pri_strength[%d]", i)
		}
		ySec, err := br.ReadBits(2)
		if err != nil {
			return av1dec.CdefParams{}, errors.Wrapf(err, "av1dec/header: cdef_y_sec_strength[%d]", i)
		}
		// ySec is packed raw (0..3); av1dec.decodeLevel applies the
		// sec==3->4 bump and the bitdepth shift at use time.
		yStrength[i] = uint8(yPri<<2) | uint8(ySec)

		if numPlanes <= 1 {
			continue
		}
		uvPri, err := br.ReadBits(4)
		if err != nil {
			return av1dec.CdefParams{}, errors.Wrapf(err, "av1dec/header: cdef_uv_pri_strength[%d]", i)
		}
		uvSec, err := br.ReadBits(2)
		if err != nil {
			return av1dec.CdefParams{}, errors.Wrapf(err, "av1dec/header: cdef_uv_sec_strength[%d]", i)
		}
		uvStrength[i] = uint8(uvPri<<2) | uint8(uvSec)
	}

	return av1dec.NewCdefParams(uint8(dampingMinus3)+3, yStrength, uvStrength)
}

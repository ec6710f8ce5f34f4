package av1dec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCdefParamsDampingRange(t *testing.T) {
	if _, err := NewCdefParams(2, [8]uint8{}, [8]uint8{}); err == nil {
		t.Error("expected error for damping below range")
	}
	if _, err := NewCdefParams(7, [8]uint8{}, [8]uint8{}); err == nil {
		t.Error("expected error for damping above range")
	}
	if _, err := NewCdefParams(4, [8]uint8{}, [8]uint8{}); err != nil {
		t.Errorf("did not expect error for valid damping: %v", err)
	}
}

func TestFrameSizeResize(t *testing.T) {
	tests := []struct {
		size FrameSize
		want bool
	}{
		{FrameSize{Width: [2]int{640, 640}}, false},
		{FrameSize{Width: [2]int{640, 1280}}, true},
	}

	for i, test := range tests {
		if got := test.size.Resize(); got != test.want {
			t.Errorf("test %d: Resize() = %v, want %v", i, got, test.want)
		}
	}
}

func TestNewParamsValidation(t *testing.T) {
	cdef, err := NewCdefParams(3, [8]uint8{}, [8]uint8{})
	if err != nil {
		t.Fatalf("NewCdefParams: %v", err)
	}

	if _, err := NewParams(cdef, SeqParams{}, FrameSize{}, I420, Depth(9), 16, 16); err == nil {
		t.Error("expected error for invalid depth")
	}
	if _, err := NewParams(cdef, SeqParams{}, FrameSize{}, I420, Depth8, 0, 16); err == nil {
		t.Error("expected error for zero block width")
	}
	if _, err := NewParams(cdef, SeqParams{}, FrameSize{}, I420, Depth8, 16, 16); err != nil {
		t.Errorf("did not expect error for valid params: %v", err)
	}
}

func TestNewParamsReturnsFieldsUnchanged(t *testing.T) {
	cdef, err := NewCdefParams(4, [8]uint8{0: 16}, [8]uint8{1: 12})
	if err != nil {
		t.Fatalf("NewCdefParams: %v", err)
	}
	seq := SeqParams{SB128: true}
	size := FrameSize{Width: [2]int{1280, 1920}}

	got, err := NewParams(cdef, seq, size, I422, Depth10, 32, 20)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	want := Params{
		Cdef: cdef, Seq: seq, Size: size,
		Layout: I422, Depth: Depth10, BW: 32, BH: 20,
	}
	if !cmp.Equal(got, want) {
		t.Errorf("params not equal\nwant: %+v\ngot: %+v", want, got)
	}
}

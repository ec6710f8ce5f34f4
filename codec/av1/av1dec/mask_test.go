package av1dec

import "testing"

func TestNewBlockMaskSb128DefaultsToNoCdef(t *testing.T) {
	m := NewBlockMaskSb128()
	for i := range m.CdefIdx {
		if got := m.LoadCdefIdx(i); got != NoCdef {
			t.Errorf("CdefIdx[%d] = %d, want %d", i, got, NoCdef)
		}
	}
	for i := range m.NoskipMask {
		if got := m.LoadNoskipMask(i); got != 0 {
			t.Errorf("NoskipMask[%d] = %#x, want 0", i, got)
		}
	}
}

func TestBlockMaskSb128PublishLoadRoundtrip(t *testing.T) {
	m := NewBlockMaskSb128()

	m.PublishCdefIdx(2, 5)
	if got := m.LoadCdefIdx(2); got != 5 {
		t.Errorf("LoadCdefIdx(2) = %d, want 5", got)
	}

	m.PublishNoskipHalf(3, 0, 0x00ff)
	m.PublishNoskipHalf(3, 1, 0xff00)
	want := uint32(0xff00)<<16 | 0x00ff
	if got := m.LoadNoskipMask(3); got != want {
		t.Errorf("LoadNoskipMask(3) = %#x, want %#x", got, want)
	}
}

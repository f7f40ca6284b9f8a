package pool

import "testing"

func TestBytesBufferRecycle(t *testing.T) {
	b := GetBytesBuffer()
	b.WriteString("hello\n")

	RecycleBytesBuffer(b)

	b2 := GetBytesBuffer()
	if b2.Len() != 0 {
		t.Errorf("expected recycled buffer to be empty, got %d bytes", b2.Len())
	}
	RecycleBytesBuffer(b2)
}

func TestRecycleNilBuffer(t *testing.T) {
	// Must not panic.
	RecycleBytesBuffer(nil)
}

//go:build !tinygo && cgo

package glctx_test

import (
	"bytes"
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestBufferWriteRead(t *testing.T) {
	ctx := newTestContext(t)
	data := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	buf, err := ctx.Buffer(glctx.BufferConfig{Data: data, Readable: true, Writable: true})
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if buf.Size() != len(data) {
		t.Fatalf("Size() = %d, want %d", buf.Size(), len(data))
	}
	got, err := buf.Read(len(data), 0, nil, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round-trip mismatch: got %v want %v", got, data)
	}

	if err := buf.Write([]byte{99, 98}, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err = buf.Read(len(data), 0, nil, 0)
	if err != nil {
		t.Fatalf("Read after write: %v", err)
	}
	want := []byte{10, 20, 99, 98, 50, 60, 70, 80}
	if !bytes.Equal(got, want) {
		t.Fatalf("after Write: got %v want %v", got, want)
	}
}

func TestBufferReserveString(t *testing.T) {
	ctx := newTestContext(t)
	buf, err := ctx.Buffer(glctx.BufferConfig{Reserve: "1KB"})
	if err != nil {
		t.Fatalf("Buffer with reserve string: %v", err)
	}
	if buf.Size() != 1024 {
		t.Fatalf("Size() = %d, want 1024", buf.Size())
	}
}

func TestBufferDataAndReserveMutuallyExclusive(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Buffer(glctx.BufferConfig{Data: []byte{1}, Reserve: 16})
	if err == nil {
		t.Fatal("expected error when both Data and Reserve are set")
	}
}

func TestBufferChunks(t *testing.T) {
	ctx := newTestContext(t)
	buf, err := ctx.Buffer(glctx.BufferConfig{Reserve: 32, Readable: true, Writable: true})
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	data := make([]byte, 8) // 2 chunks of 4 bytes
	for i := range data {
		data[i] = byte(i + 1)
	}
	if err := buf.WriteChunks(data, 4, 0, 8, 2); err != nil {
		t.Fatalf("WriteChunks: %v", err)
	}
	got, err := buf.ReadChunks(4, 0, 8, 2)
	if err != nil {
		t.Fatalf("ReadChunks: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("chunk round-trip mismatch: got %v want %v", got, data)
	}
}

func TestBufferClear(t *testing.T) {
	ctx := newTestContext(t)
	buf, err := ctx.Buffer(glctx.BufferConfig{Data: bytes.Repeat([]byte{0xff}, 8), Readable: true, Writable: true})
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if err := buf.Clear(8, 0, nil); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := buf.Read(8, 0, nil, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, b := range got {
		if b != 0 {
			t.Fatalf("byte %d = %d after Clear, want 0", i, b)
		}
	}
}

func TestBufferOrphan(t *testing.T) {
	ctx := newTestContext(t)
	buf, err := ctx.Buffer(glctx.BufferConfig{Reserve: 16})
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if err := buf.Orphan(32); err != nil {
		t.Fatalf("Orphan: %v", err)
	}
	if buf.Size() != 32 {
		t.Fatalf("Size() after Orphan(32) = %d, want 32", buf.Size())
	}
}

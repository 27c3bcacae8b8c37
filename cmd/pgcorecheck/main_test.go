package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/pgbackrest/corert/pagechecksum"
	"github.com/pgbackrest/corert/ustar"
)

const testPageSize = 8192

func validPage(blockNo uint32) []byte {
	page := make([]byte, testPageSize)
	// pd_upper nonzero marks the page non-empty, so PageValid computes
	// and checks a checksum instead of taking the new-page exemption.
	binary.LittleEndian.PutUint16(page[14:], uint16(testPageSize))
	sum := pagechecksum.Checksum(page, blockNo, testPageSize)
	binary.LittleEndian.PutUint16(page[8:], sum)
	return page
}

func testFile(t *testing.T, pages int) string {
	t.Helper()
	var buf bytes.Buffer
	for i := 0; i < pages; i++ {
		buf.Write(validPage(uint32(i)))
	}
	path := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestProgramRunAllPagesValid(t *testing.T) {
	prog := &program{
		filePath:        testFile(t, 3),
		pageSize:        testPageSize,
		ignoreWalID:     0xFFFFFFFF,
		ignoreWalOffset: 0xFFFFFFFF,
	}
	if err := prog.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestProgramRunReportsMismatch(t *testing.T) {
	path := testFile(t, 2)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	raw[0] ^= 0xFF
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	prog := &program{
		filePath:        path,
		pageSize:        testPageSize,
		ignoreWalID:     0xFFFFFFFF,
		ignoreWalOffset: 0xFFFFFFFF,
	}
	if err := prog.run(context.Background()); err == nil {
		t.Fatalf("expected a checksum mismatch error")
	}
}

func TestProgramRunSizeNotMultipleOfPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short")
	if err := os.WriteFile(path, make([]byte, 100), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	prog := &program{filePath: path, pageSize: testPageSize}
	if err := prog.run(context.Background()); err == nil {
		t.Fatalf("expected a size-mismatch error")
	}
}

func TestProgramRunWritesTarAndProfile(t *testing.T) {
	dir := t.TempDir()
	prog := &program{
		filePath:   testFile(t, 1),
		pageSize:   testPageSize,
		tarOut:     filepath.Join(dir, "out.tar"),
		memProfile: filepath.Join(dir, "mem.pprof"),
	}
	if err := prog.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	tarData, err := os.ReadFile(prog.tarOut)
	if err != nil {
		t.Fatalf("reading tar output: %v", err)
	}
	if len(tarData) != ustar.HeaderSize+testPageSize+ustar.HeaderSize*2 {
		t.Fatalf("tar output length = %d, want a header, one page, and the end marker", len(tarData))
	}

	if _, err := os.Stat(prog.memProfile); err != nil {
		t.Fatalf("memory profile was not written: %v", err)
	}
}

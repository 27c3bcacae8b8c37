// Command pgcorecheck is a small diagnostic CLI over this module's
// storage primitives: it validates a PostgreSQL data file's page
// checksums, optionally wraps it in a USTAR archive entry the way a
// backup would, and optionally dumps a memory-context allocation
// profile for the run.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/pgbackrest/corert/errkit"
	"github.com/pgbackrest/corert/memctx"
	"github.com/pgbackrest/corert/pagechecksum"
	"github.com/pgbackrest/corert/ustar"
)

var (
	filePath        string
	pageSize        uint
	startBlock      uint32
	ignoreWalID     uint32
	ignoreWalOffset uint32
	tarOut          string
	memProfile      string
)

func init() {
	pflag.StringVar(&filePath, "file", "", "data file to checksum-validate (required)")
	pflag.UintVar(&pageSize, "page-size", 8192, "page size in bytes")
	pflag.Uint32Var(&startBlock, "start-block", 0, "block number of the file's first page")
	pflag.Uint32Var(&ignoreWalID, "ignore-wal-id", 0, "skip pages whose LSN is at or past this xlogid")
	pflag.Uint32Var(&ignoreWalOffset, "ignore-wal-offset", 0, "skip pages whose LSN is at or past this xrecoff")
	pflag.StringVar(&tarOut, "tar-out", "", "write file as a single-entry USTAR archive here")
	pflag.StringVar(&memProfile, "mem-profile", "", "write a memctx allocation profile here")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(errkit.Run(func() error {
		return run(ctx)
	}))
}

func run(ctx context.Context) error {
	pflag.Parse()

	if filePath == "" {
		return fmt.Errorf("--file is required")
	}

	prog := &program{
		filePath:        filePath,
		pageSize:        uint32(pageSize),
		startBlock:      startBlock,
		ignoreWalID:     ignoreWalID,
		ignoreWalOffset: ignoreWalOffset,
		tarOut:          tarOut,
		memProfile:      memProfile,
	}
	return prog.run(ctx)
}

// program holds one invocation's resolved flags, mirroring wzprof's
// command's program struct: flags are parsed once in run() above and
// handed off as plain fields so the actual work is independently
// testable without touching package-level flag state.
type program struct {
	filePath        string
	pageSize        uint32
	startBlock      uint32
	ignoreWalID     uint32
	ignoreWalOffset uint32
	tarOut          string
	memProfile      string
}

func (prog *program) run(ctx context.Context) error {
	raw, err := os.ReadFile(prog.filePath)
	if err != nil {
		return err
	}

	err = memctx.ScopedNew("pgcorecheck.check", func() error {
		addr := memctx.Alloc(len(raw))
		copy(addr.Bytes(), raw)

		return errkit.Block(func() error {
			return prog.check(ctx, addr.Bytes())
		}, errkit.Catch(errkit.FormatError, func(e *errkit.ThrownError) error {
			return fmt.Errorf("%s: %s", e.Type.Name, e.Message)
		}))
	})
	if err != nil {
		return err
	}

	if prog.memProfile != "" {
		if err := memctx.WriteProfile(prog.memProfile, memctx.Snapshot()); err != nil {
			return fmt.Errorf("writing memory profile: %w", err)
		}
	}
	return nil
}

// check validates every page in data and, if requested, archives it.
// It runs under the scoped context prog.run created. A FormatError thrown
// here is caught by the errkit.Block in prog.run and returned as an
// ordinary error; any other thrown error propagates past that Block and
// through ScopedNew's deferred cleanup, which frees the scoped context.
func (prog *program) check(ctx context.Context, data []byte) error {
	if prog.pageSize == 0 || len(data)%int(prog.pageSize) != 0 {
		errkit.Throwf(errkit.FormatError, "file size %d is not a multiple of page size %d", len(data), prog.pageSize)
	}

	pages := len(data) / int(prog.pageSize)
	bad := 0
	for i := 0; i < pages; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		page := data[i*int(prog.pageSize) : (i+1)*int(prog.pageSize)]
		blockNo := prog.startBlock + uint32(i)
		if !pagechecksum.PageValid(page, blockNo, prog.pageSize, prog.ignoreWalID, prog.ignoreWalOffset) {
			bad++
			fmt.Fprintf(os.Stderr, "checksum mismatch: block %d (want %#04x)\n",
				blockNo, pagechecksum.Checksum(page, blockNo, prog.pageSize))
		}
	}
	fmt.Printf("%s: %d pages, %d checksum mismatches\n", prog.filePath, pages, bad)

	if prog.tarOut != "" {
		if err := prog.archive(data); err != nil {
			return err
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d pages failed checksum validation", bad, pages)
	}
	return nil
}

func (prog *program) archive(data []byte) error {
	info, err := os.Stat(prog.filePath)
	if err != nil {
		return err
	}

	out, err := os.Create(prog.tarOut)
	if err != nil {
		return err
	}
	defer out.Close()

	header := ustar.Build(ustar.Header{
		Name:  info.Name(),
		Mode:  0640,
		Size:  uint64(len(data)),
		Mtime: info.ModTime().Unix(),
	})
	if err := ustar.WriteEntry(out, header, data); err != nil {
		return err
	}
	return ustar.WriteEnd(out)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/n3kernel/elfloader/elfload"
)

type inspectResult struct {
	path   string
	binary *elfload.Binary
}

func newInspectCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <elf-file>...",
		Short: "Print header, dynamic, and program header information for ELF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			results := make([]inspectResult, len(args))

			eg := &errgroup.Group{}
			for i, path := range args {
				eg.Go(func() error {
					region, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("failed to read '%s': %w", path, err)
					}

					binary, err := elfload.New(region)
					if err != nil {
						return fmt.Errorf("failed to parse '%s': %w", path, err)
					}

					results[i] = inspectResult{path: path, binary: binary}
					return nil
				})
			}

			if err := eg.Wait(); err != nil {
				return err
			}

			for _, r := range results {
				printInspectResult(opts, r)
			}

			return nil
		},
	}

	return cmd
}

func printInspectResult(opts *rootOptions, r inspectResult) {
	b := r.binary

	fmt.Printf("%s:\n", r.path)
	fmt.Printf("  machine:     %s\n", b.Arch)
	fmt.Printf("  entry:       0x%x\n", b.EntryPoint())
	fmt.Printf("  pie:         %t\n", b.IsPIE())
	fmt.Printf("  align:       0x%x\n", b.LoadableHeaders().RequiredAlignment())

	if interp, ok := b.Interpreter(); ok {
		fmt.Printf("  interpreter: %s\n", interp)
	}

	for _, p := range b.ProgramHeaders() {
		opts.logger.Debug("program header",
			"type", p.Type,
			"vaddr", fmt.Sprintf("0x%x", p.Vaddr),
			"memsz", fmt.Sprintf("0x%x", p.Memsz),
			"flags", p.Flags,
		)
	}
}

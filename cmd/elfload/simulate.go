package main

import (
	"debug/elf"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/n3kernel/elfloader/elfload"
	"github.com/n3kernel/elfloader/internal/simloader"
)

func newSimulateCommand(opts *rootOptions) *cobra.Command {
	var baseFlag string

	cmd := &cobra.Command{
		Use:   "simulate <elf-file>",
		Short: "Drive a binary's load against a recording loader and print every action",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			base := opts.config.Base
			if baseFlag != "" {
				parsed, err := strconv.ParseUint(strings.TrimPrefix(baseFlag, "0x"), 16, 64)
				if err != nil {
					return fmt.Errorf("invalid --base %q: %w", baseFlag, err)
				}
				base = parsed
			}

			region, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read '%s': %w", args[0], err)
			}

			binary, err := elfload.New(region)
			if err != nil {
				return fmt.Errorf("failed to parse '%s': %w", args[0], err)
			}

			recorder := simloader.New(base)
			if err := binary.Load(recorder); err != nil {
				return fmt.Errorf("simulated load failed: %w", err)
			}

			opts.logger.Info("simulated load", "base", fmt.Sprintf("0x%x", base), "actions", len(recorder.Actions))
			for _, action := range recorder.Actions {
				fmt.Println(action)
			}

			for _, p := range binary.File.Progs {
				if p.Type != elf.PT_TLS {
					continue
				}
				image := elfload.TLSImage(p.Open(), p.Memsz, p.Filesz)
				n, err := io.Copy(io.Discard, image)
				if err != nil {
					return fmt.Errorf("failed to assemble TLS image: %w", err)
				}
				opts.logger.Info("tls image assembled", "bytes", n, "align", p.Align)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&baseFlag, "base", "", "Override the load base address (hex), e.g. 0x10000000")

	return cmd
}

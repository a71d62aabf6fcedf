package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/unionfind/equivalence"
	"github.com/katalvlaran/unionfind/internal/config"
	"github.com/katalvlaran/unionfind/internal/problem"
)

func newSolveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more problem files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, v)
		},
	}
	cmd.Flags().Bool("watch", false, "re-solve files whenever they change")
	_ = v.BindPFlag("watch", cmd.Flags().Lookup("watch"))

	return cmd
}

// output is the JSON shape of one solved file.
type output struct {
	File  string       `json:"file"`
	Kind  problem.Kind `json:"kind"`
	Value any          `json:"value"`
}

// runSolve solves every file once. With --watch it then keeps re-solving
// until the context is cancelled; failures from the first pass are still
// reported when watching ends.
func runSolve(cmd *cobra.Command, args []string, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	vlog := verboseLogger(cfg.Verbose)

	var failed int
	for _, path := range args {
		if err := solveFile(w, cfg.Format, path, vlog); err != nil {
			logger.Println(err)
			failed++
		}
	}

	if cfg.Watch {
		if err := watch(cmd.Context(), w, cfg.Format, args, vlog); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func solveFile(w io.Writer, format, path string, vlog *log.Logger) error {
	vlog.Printf("solving %s", path)
	p, err := problem.Load(path)
	if err != nil {
		return err
	}
	res, err := problem.Solve(p)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return render(w, format, output{File: path, Kind: res.Kind, Value: res.Value})
}

func render(w io.Writer, format string, out output) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(out)
	}
	if accounts, ok := out.Value.([]equivalence.Account); ok {
		if _, err := fmt.Fprintf(w, "%s: %s\n", out.File, out.Kind); err != nil {
			return err
		}
		for _, acc := range accounts {
			if _, err := fmt.Fprintf(w, "  %s %v\n", acc.Name, acc.Emails); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%s: %s = %v\n", out.File, out.Kind, out.Value)
	return err
}

// watch re-solves a file each time it is written, until ctx is cancelled.
// Directories are watched rather than files so editors that replace files
// on save are still seen.
func watch(ctx context.Context, w io.Writer, format string, paths []string, vlog *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	wanted := make(map[string]bool, len(paths))
	for _, p := range paths {
		clean := filepath.Clean(p)
		wanted[clean] = true
		if err := watcher.Add(filepath.Dir(clean)); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}
	vlog.Printf("watching %d files", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !wanted[filepath.Clean(event.Name)] || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := solveFile(w, format, event.Name, vlog); err != nil {
				logger.Println(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("watch: %v", err)
		}
	}
}

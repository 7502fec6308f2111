package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

func addApplyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("apply", false, "Write the changes into the workspace")
	cmd.Flags().Bool("force", false, "Apply without asking for confirmation")
}

// finishPatches applies the patch set to the workspace when --apply is set,
// otherwise prints it as JSON.
func finishPatches(cmd *cobra.Command, set *ports.PatchSet) error {
	if apply, _ := cmd.Flags().GetBool("apply"); apply {
		return applyPatchSet(cmd, workspaceRoot(cmd), set)
	}
	return printJSON(cmd.OutOrStdout(), set)
}

// applyPatchSet writes full-content patches into the workspace. Each file is
// staged next to its target and swapped in with a rename, so a reader never
// sees a half-written file.
func applyPatchSet(cmd *cobra.Command, root string, set *ports.PatchSet) error {
	if set.Format != ports.PatchFormatFull {
		return zerr.New("cannot apply patches without full file contents")
	}
	if len(set.Patches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to apply.")
		return nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve workspace root")
	}

	rels := make([]string, 0, len(set.Patches))
	for rel := range set.Patches {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		abs := filepath.Clean(filepath.Join(absRoot, filepath.FromSlash(rel)))
		inside, relErr := filepath.Rel(absRoot, abs)
		if relErr != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
			return zerr.New("patch path escapes the workspace: " + rel)
		}
		targets[rel] = abs
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !confirmApply(cmd, rels) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	for _, rel := range rels {
		if err := writeFileAtomic(targets[rel], []byte(set.Patches[rel])); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", rel)
	}
	return nil
}

// confirmApply lists the files about to change and asks for a y/N answer.
// Anything but an explicit yes, including EOF, declines.
func confirmApply(cmd *cobra.Command, rels []string) bool {
	out := cmd.OutOrStdout()
	for _, rel := range rels {
		fmt.Fprintf(out, "  %s\n", rel)
	}
	fmt.Fprintf(out, "Apply changes to %d file(s)? [y/N] ", len(rels))

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// writeFileAtomic replaces path with data via a temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for "+path)
	}

	tmp, err := os.CreateTemp(dir, ".sema-apply-*")
	if err != nil {
		return zerr.Wrap(err, "failed to stage write for "+path)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return zerr.Wrap(err, "failed to write "+path)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return zerr.Wrap(err, "failed to write "+path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		cleanup()
		return zerr.Wrap(err, "failed to write "+path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return zerr.Wrap(err, "failed to replace "+path)
	}
	return nil
}

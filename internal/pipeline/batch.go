package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/voucherdesk/voucherdesk/constants"
)

// ListDocuments returns the voucher files under dir in name order, which is
// the batch's submission order. Non-voucher files are skipped, not errors.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

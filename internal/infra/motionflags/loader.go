// Package motionflags loads the per-class motion-check overview file
// (exercise_motion_overview.json): a flat JSON object mapping exercise
// class names to whether motion analysis applies to them.
package motionflags

import (
	"encoding/json"
	"os"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.MotionFlagsLoader = (*Loader)(nil)

// LoadFlags reads the flags file. A missing file is a hard error: cleaning
// without motion flags silently skips a whole acceptance criterion.
func (l *Loader) LoadFlags(path string) (map[string]bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "motionflags.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var flags map[string]bool
	if err := json.Unmarshal(b, &flags); err != nil {
		return nil, &domain.OpError{
			Op:   "motionflags.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if flags == nil {
		flags = map[string]bool{}
	}
	return flags, nil
}

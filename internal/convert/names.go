// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/pdiddy/bookshelf/internal/render"
	"github.com/pdiddy/bookshelf/pkg/types"
)

// nameSet tracks filenames handed out during one run. Names compare
// case-insensitively so "Dune.md" and "dune.md" collide on every filesystem.
type nameSet struct {
	policy types.CollisionPolicy
	seen   map[string]string
}

func newNameSet(policy types.CollisionPolicy) *nameSet {
	return &nameSet{policy: policy, seen: make(map[string]string)}
}

// claim returns the filename to write for name under the set's policy.
func (s *nameSet) claim(name string) (string, error) {
	prev, taken := s.seen[strings.ToLower(name)]
	if !taken {
		s.seen[strings.ToLower(name)] = name
		return name, nil
	}

	switch s.policy {
	case types.CollisionFail:
		return "", fmt.Errorf("%s already written this run as %s", name, prev)
	case types.CollisionSuffix:
		stem := strings.TrimSuffix(name, render.Extension)
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s_%d%s", stem, n, render.Extension)
			if _, ok := s.seen[strings.ToLower(candidate)]; !ok {
				s.seen[strings.ToLower(candidate)] = candidate
				return candidate, nil
			}
		}
	default:
		return name, nil
	}
}

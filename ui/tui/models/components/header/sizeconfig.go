// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/toeirei/dashui/ui/tui/models/components/stack"
	"github.com/toeirei/dashui/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// the header needs one line plus its border and is dropped on tiny terminals
func (s *sizeConfig) Calculate(_ util.Model, _ int, totalSize int) int {
	if totalSize >= 10 {
		return 2
	}
	return 0
}

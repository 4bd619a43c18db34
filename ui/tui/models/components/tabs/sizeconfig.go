// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package tabs

import (
	"github.com/toeirei/dashui/ui/tui/models/components/stack"
	"github.com/toeirei/dashui/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate reserves the label row and its bottom border.
func (s *sizeConfig) Calculate(_ util.Model, remainingSize int, _ int) int {
	if remainingSize < 2 {
		return 0
	}
	return 2
}

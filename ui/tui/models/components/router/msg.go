// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/toeirei/dashui/ui/tui/util"
)

// Router invoked messages
// Router -> Model

type InitMsg struct {
	Control Control
}

// Control invoked messages
// Model-Control -> Router

type PushMsg struct {
	rid   int
	Model util.Model
}
type PopMsg struct {
	rid   int
	Count int
}
type ChangeMsg struct {
	rid   int
	Model util.Model
}

func (m InitMsg) routerID() int   { return m.Control.rid }
func (m PushMsg) routerID() int   { return m.rid }
func (m PopMsg) routerID() int    { return m.rid }
func (m ChangeMsg) routerID() int { return m.rid }

type RouterMsg interface {
	routerID() int
}

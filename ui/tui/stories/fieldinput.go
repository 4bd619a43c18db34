// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package stories

import (
	"fmt"
	"slices"

	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/ui/tui/models/components/fieldinput"
	"github.com/toeirei/dashui/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/dashui/ui/tui/models/helpers/form/input"
	"github.com/toeirei/dashui/ui/tui/theme"
	"github.com/toeirei/dashui/ui/tui/util"
)

var inputFieldStories = []Story{
	fieldStory("Default", theme.Light,
		fieldinput.WithLabel("Username"),
		fieldinput.WithPlaceholder("Enter username"),
		fieldinput.WithVariant(fieldinput.Outlined),
	),
	fieldStory("WithHelper", theme.Light,
		fieldinput.WithLabel("Username"),
		fieldinput.WithPlaceholder("Enter username"),
		fieldinput.WithHelperText("This is helper text"),
		fieldinput.WithVariant(fieldinput.Outlined),
	),
	fieldStory("Invalid", theme.Light,
		fieldinput.WithLabel("Email"),
		fieldinput.WithPlaceholder("Enter email"),
		fieldinput.WithType(fieldinput.Email),
		fieldinput.WithInvalid(true),
		fieldinput.WithError("Invalid email address"),
	),
	fieldStory("Disabled", theme.Light,
		fieldinput.WithLabel("Disabled Input"),
		fieldinput.WithPlaceholder("Cannot type here"),
		fieldinput.WithDisabled(true),
	),
	fieldStory("Loading", theme.Light,
		fieldinput.WithLabel("Loading Input"),
		fieldinput.WithPlaceholder("Typing..."),
		fieldinput.WithLoading(true),
		fieldinput.WithClearButton(),
	),
	fieldStory("Password", theme.Light,
		fieldinput.WithLabel("Password"),
		fieldinput.WithPlaceholder("Enter password"),
		fieldinput.WithType(fieldinput.Password),
		fieldinput.WithPasswordToggle(),
	),
	fieldStory("Clearable", theme.Light,
		fieldinput.WithLabel("Clearable Input"),
		fieldinput.WithPlaceholder("Type something..."),
		fieldinput.WithClearButton(),
	),
	gridStory("Variants", theme.Light, []fieldinput.Variant{
		fieldinput.Filled, fieldinput.Outlined, fieldinput.Ghost,
	}, func(v fieldinput.Variant) []fieldinput.NewOpt {
		return []fieldinput.NewOpt{
			fieldinput.WithLabel(fmt.Sprintf("Variant %s", v)),
			fieldinput.WithPlaceholder(string(v)),
			fieldinput.WithVariant(v),
		}
	}),
	gridStory("Sizes", theme.Light, []fieldinput.Size{
		fieldinput.Small, fieldinput.Medium, fieldinput.Large,
	}, func(s fieldinput.Size) []fieldinput.NewOpt {
		return []fieldinput.NewOpt{
			fieldinput.WithLabel(fmt.Sprintf("Size %s", s)),
			fieldinput.WithPlaceholder(string(s)),
			fieldinput.WithVariant(fieldinput.Outlined),
			fieldinput.WithSize(s),
		}
	}),
	fieldStory("DarkMode", theme.Dark,
		fieldinput.WithLabel("Dark Theme Input"),
		fieldinput.WithPlaceholder("Enter text"),
		fieldinput.WithVariant(fieldinput.Filled),
		fieldinput.WithClearButton(),
		fieldinput.WithPasswordToggle(),
	),
}

func fieldStory(name string, mode theme.Mode, opts ...fieldinput.NewOpt) Story {
	return Story{
		Component: "InputField",
		Name:      name,
		Mode:      mode,
		build: func(t theme.Theme) (util.Model, func() string) {
			var value string
			field := fieldinput.New(slices.Concat(opts, []fieldinput.NewOpt{
				fieldinput.WithSize(fieldinput.Medium),
				fieldinput.WithTheme(t),
				fieldinput.WithOnChange(func(v string) { value = v }),
			})...)
			return field, func() string {
				return i18n.T("stories.value", value)
			}
		},
	}
}

// gridStory shows one field per option; tab moves between them.
func gridStory[O any](name string, mode theme.Mode, options []O, optsFor func(O) []fieldinput.NewOpt) Story {
	return Story{
		Component: "InputField",
		Name:      name,
		Mode:      mode,
		build: func(t theme.Theme) (util.Model, func() string) {
			formOpts := make([]form.NewOpt[map[string]string], 0, len(options))
			for i, o := range options {
				formOpts = append(formOpts, form.WithInput[map[string]string](
					fmt.Sprintf("field%d", i),
					forminput.NewField(append(optsFor(o), fieldinput.WithTheme(t))...),
				))
			}
			return form.New(formOpts...), nil
		},
	}
}

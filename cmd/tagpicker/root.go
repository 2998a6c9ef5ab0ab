package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tagpicker/internal/config"
	"tagpicker/internal/debug"
	"tagpicker/internal/domain"
	"tagpicker/internal/tags"
	"tagpicker/internal/ui"
	"tagpicker/internal/ui/theme"
)

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func defaultProgramFactory(app *ui.App) programRunner {
	return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
}

// flagKeys maps each flag onto the config key it overrides.
var flagKeys = map[string]string{
	"theme":         config.KeyTheme,
	"placeholder":   config.KeyPlaceholder,
	"max-height":    config.KeyMaxHeight,
	"width":         config.KeyWidth,
	"class":         config.KeyClassName,
	"items":         config.KeyItemsPath,
	"output-format": config.KeyOutputFormat,
	"debug":         config.KeyDebug,
}

func newRootCmd(factory programFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tagpicker",
		Short:         "Searchable multi-select tag picker",
		Long:          "Pick tags from a searchable list, or type a new name and press enter to create one.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := config.ApplyOverrides(flagOverrides(cmd)); err != nil {
				return fmt.Errorf("apply flags: %w", err)
			}
			if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
				return fmt.Errorf("init debug log: %w", err)
			}
			defer debug.Close()

			appCfg, err := buildAppConfig()
			if err != nil {
				return err
			}
			return runProgram(appCfg, ui.NewApp, factory)
		},
	}

	flags := cmd.Flags()
	flags.String("theme", "", "Color theme ("+fmt.Sprint(theme.Available())+")")
	flags.String("placeholder", config.DefaultPlaceholder, "Text shown when nothing is selected")
	flags.Int("max-height", config.DefaultMaxHeight, "Maximum dropdown height in lines")
	flags.Int("width", config.DefaultWidth, "Picker width in cells")
	flags.StringSlice("class", nil, "Style classes to apply (compact, accent, plain)")
	flags.String("items", "", "TOML file with [[items]] value/label entries")
	flags.String("output-format", "", "Heading markdown style (rich, light, plain)")
	flags.Bool("debug", false, "Write a debug log to ~/.tagpicker/debug.log")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// flagOverrides collects only the flags the user actually set, so config
// files and the environment keep their say over everything else.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}
	flags := cmd.Flags()
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "int":
			v, _ := flags.GetInt(name)
			overrides[key] = v
		case "bool":
			v, _ := flags.GetBool(name)
			overrides[key] = v
		case "stringSlice":
			v, _ := flags.GetStringSlice(name)
			overrides[key] = v
		default:
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

func buildAppConfig() (ui.Config, error) {
	if name := config.GetString(config.KeyTheme); name != "" && !theme.SetTheme(name) {
		debug.Logf("unknown theme %q, keeping %s", name, theme.CurrentName())
	}

	items, err := loadItems(config.GetString(config.KeyItemsPath))
	if err != nil {
		return ui.Config{}, err
	}

	settings := config.PickerSettings()
	return ui.Config{
		Items:        items,
		Placeholder:  settings.Placeholder,
		MaxHeight:    settings.MaxHeight,
		Width:        settings.Width,
		ClassNames:   settings.ClassNames,
		OutputFormat: config.GetString(config.KeyOutputFormat),
		Version:      Version,
	}, nil
}

func loadItems(path string) ([]domain.Item, error) {
	items, err := tags.LoadItems(path)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	return items, nil
}

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

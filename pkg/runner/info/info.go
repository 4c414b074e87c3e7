// Package info reports where medbook keeps its data and what is in it.
package info

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/store"
)

// ConfigPathEnv overrides where the config file is searched for.
const ConfigPathEnv = "MEDBOOK_CONFIG_PATH"

type Info struct {
	Config  store.Config
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Report is the JSON form of the info output.
type Report struct {
	ConfigOverride string      `json:"configOverride,omitempty"`
	DataPath       string      `json:"dataPath"`
	Theme          string      `json:"theme"`
	Summary        app.Summary `json:"summary"`
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Config == nil {
		cfg, err := store.LoadConfig()
		if err != nil {
			return err
		}
		n.Config = cfg
	}
	if n.Service == nil {
		return errors.New("failed to open the record book")
	}
	override := os.Getenv(ConfigPathEnv)
	s := n.Service.Summary()

	if n.JSON {
		b, err := json.Marshal(Report{
			ConfigOverride: override,
			DataPath:       n.Config.BasePath(),
			Theme:          n.Service.Theme("default"),
			Summary:        s,
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	if override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", ConfigPathEnv, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", ConfigPathEnv)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Persons:", s.Persons)
	tbl.AddRow("Appointments:", s.Appointments)
	tbl.AddRow("  upcoming:", s.Upcoming)
	tbl.AddRow("  past:", s.Past)
	tbl.AddRow("Theme:", n.Service.Theme("default"))
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

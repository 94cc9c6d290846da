// Shared helpers for propkit CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/openbim/propkit/pkg/model"
	"github.com/openbim/propkit/pkg/propkit"
	"github.com/openbim/propkit/pkg/types"
)

// Output colors.
var (
	headerColor = color.New(color.FgCyan, color.Bold)
	nameColor   = color.New(color.FgGreen)
	dimColor    = color.New(color.FgHiBlack)
	warnColor   = color.New(color.FgYellow)
)

// openSession loads the model file named by the first argument. The caller
// must defer session.Close().
func openSession(path string) (types.Session, error) {
	session, err := propkit.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	return session, nil
}

// resolveObject finds an object by numeric entity ID or by GlobalId.
func resolveObject(session types.Session, ref string) (*model.Object, error) {
	objects := model.NewObjectAdapter(session)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return objects.ByID(id)
	}
	return objects.ByGUID(ref)
}

// parseID parses a numeric entity ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entity id %q", arg)
	}
	return id, nil
}

// printJSON renders v as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// valueJSON is the JSON shape of a resolved value.
type valueJSON struct {
	Raw    any    `json:"raw"`
	Type   string `json:"type"`
	Unit   string `json:"unit"`
	Prefix string `json:"prefix,omitempty"`
}

func makeValueJSON(v types.Value) valueJSON {
	return valueJSON{
		Raw:    v.Raw(),
		Type:   v.Type().Name(),
		Unit:   string(v.Unit()),
		Prefix: string(v.Prefix()),
	}
}

// flagOrNil returns nil for an unset string flag so the value factory
// infers or defaults instead of failing on "".
func flagOrNil(flag string) any {
	if flag == "" {
		return nil
	}
	return flag
}

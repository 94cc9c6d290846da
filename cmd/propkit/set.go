package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/model"
	"github.com/openbim/propkit/pkg/types"
)

// Value construction flags shared by set and add.
var (
	flagValueType string
	flagUnitType  string
	flagPrefix    string
)

var setCmd = &cobra.Command{
	Use:   "set <file> <prop-id> <value>",
	Short: "Write a value to a property or quantity",
	Long: `Write a value to a property or quantity. The value type is inferred
from the raw argument unless --type names one explicitly; --unit and
--prefix attach a unit category and SI prefix.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer session.Close()

		propID, err := parseID(args[1])
		if err != nil {
			return err
		}
		v, err := types.CreateValue(parseRaw(args[2]),
			flagOrNil(flagValueType), flagOrNil(flagUnitType), flagOrNil(flagPrefix))
		if err != nil {
			return err
		}

		prop, err := model.NewPropAdapter(session).ByID(propID)
		if err != nil {
			return err
		}
		changed, err := prop.SetValue(v)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("Unchanged")
			return nil
		}
		if err := session.Save(""); err != nil {
			return fmt.Errorf("save model: %w", err)
		}
		fmt.Println("Set", prop.Name(), "=", v)
		return nil
	},
}

func init() {
	addValueFlags(setCmd)
}

func addValueFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagValueType, "type", "", "value type token, e.g. IfcReal (default: inferred)")
	cmd.Flags().StringVar(&flagUnitType, "unit", "", "unit category, e.g. LENGTH")
	cmd.Flags().StringVar(&flagPrefix, "prefix", "", "SI prefix, e.g. MILLI")
}

// parseRaw promotes a raw CLI argument to a number when it parses as one,
// so type inference sees the natural scalar shape.
func parseRaw(arg string) any {
	if n, ok := types.AsInt(arg); ok {
		return n
	}
	if f, ok := types.AsFloat(arg); ok {
		return f
	}
	return arg
}

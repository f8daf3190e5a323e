package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/andy/tradebook/internal/parser"
	"github.com/spf13/cobra"
)

// checked is what a field parser accepted
type checked struct {
	canonical string
	display   string
}

// checkers run one field parser over raw input
var checkers = map[string]func(values []string) (checked, error){
	parser.FieldIndex: func(v []string) (checked, error) {
		idx, err := parser.ParseIndex(joined(v))
		if err != nil {
			return checked{}, err
		}
		return checked{strconv.Itoa(idx.OneBased()), fmt.Sprintf("position %d (zero-based %d)", idx.OneBased(), idx.ZeroBased())}, nil
	},
	parser.FieldName: func(v []string) (checked, error) {
		n, err := parser.ParseName(joined(v))
		return checked{n.String(), n.String()}, err
	},
	parser.FieldPhone: func(v []string) (checked, error) {
		p, err := parser.ParsePhone(joined(v))
		return checked{p.String(), p.String()}, err
	},
	parser.FieldEmail: func(v []string) (checked, error) {
		e, err := parser.ParseEmail(joined(v))
		return checked{e.String(), e.String()}, err
	},
	parser.FieldAddress: func(v []string) (checked, error) {
		a, err := parser.ParseAddress(joined(v))
		return checked{a.String(), a.String()}, err
	},
	parser.FieldText: func(v []string) (checked, error) {
		t, err := parser.ParseText(joined(v))
		return checked{t.String(), t.String()}, err
	},
	parser.FieldTag: func(v []string) (checked, error) {
		t, err := parser.ParseTag(joined(v))
		return checked{t.Name(), t.String()}, err
	},
	"tags": func(v []string) (checked, error) {
		tags, err := parser.ParseTags(v)
		if err != nil {
			return checked{}, err
		}
		names := make([]string, len(tags))
		shown := make([]string, len(tags))
		for i, t := range tags {
			names[i] = t.Name()
			shown[i] = t.String()
		}
		return checked{strings.Join(names, ","), strings.Join(shown, " ")}, nil
	},
	parser.FieldGoods: func(v []string) (checked, error) {
		g, err := parser.ParseGoods(joined(v))
		return checked{g.String(), g.String()}, err
	},
	parser.FieldPrice: func(v []string) (checked, error) {
		p, err := parser.ParsePrice(joined(v))
		if err != nil {
			return checked{}, err
		}
		return checked{p.Canonical(), p.String()}, nil
	},
	parser.FieldQuantity: func(v []string) (checked, error) {
		q, err := parser.ParseQuantity(joined(v))
		if err != nil {
			return checked{}, err
		}
		return checked{q.Canonical(), q.String()}, nil
	},
	parser.FieldDate: func(v []string) (checked, error) {
		d, err := parser.ParseDate(joined(v))
		if err != nil {
			return checked{}, err
		}
		return checked{d.Canonical(), d.String()}, nil
	},
	parser.FieldKind: func(v []string) (checked, error) {
		k, err := parser.ParseKind(joined(v))
		return checked{string(k), string(k)}, err
	},
}

func joined(values []string) string {
	return strings.Join(values, " ")
}

func checkFields() []string {
	fields := make([]string, 0, len(checkers))
	for f := range checkers {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

var checkCmd = &cobra.Command{
	Use:   "check [field] [value...]",
	Short: "Check a value the way a command would parse it",
	Long: fmt.Sprintf(`Run one field parser over VALUE without opening the database.

Prints the stored and displayed forms of an accepted value, or the message a
command would show for a rejected one. Fields: %s.`, strings.Join(checkFields(), ", ")),
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: checkFields(),

	// Values such as "-1" must reach the parser, not the flag parser
	DisableFlagParsing: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-h" || args[0] == "--help" {
			return cmd.Help()
		}

		check, ok := checkers[strings.ToLower(args[0])]
		if !ok {
			return fmt.Errorf("unknown field %q, expected one of: %s", args[0], strings.Join(checkFields(), ", "))
		}

		result, err := check(args[1:])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "stored:    %s\n", result.canonical)
		fmt.Fprintf(out, "displayed: %s\n", result.display)
		return nil
	},
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quaylabs/chbridge/internal/value"
)

// parseLiteral reads a command-line literal into a cell. Quoted text is
// always a string; otherwise null, booleans and numbers are recognized
// before falling back to string.
func parseLiteral(s string) value.Cell {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return value.String(s[1 : len(s)-1])
	}
	switch s {
	case "null", "NULL":
		return value.Null{}
	case "true", "TRUE":
		return value.Bool(true)
	case "false", "FALSE":
		return value.Bool(false)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float(f)
	}
	return value.String(s)
}

// parseQual reads a "--where" flag of the form "<column> <op> <literal>".
func parseQual(s string) (value.Qual, error) {
	parts := strings.SplitN(strings.TrimSpace(s), " ", 3)
	if len(parts) != 3 {
		return value.Qual{}, fmt.Errorf("condition %q: want \"<column> <op> <literal>\"", s)
	}
	return value.Qual{
		Column:   parts[0],
		Operator: parts[1],
		Value:    parseLiteral(parts[2]),
	}, nil
}

// parseQuals reads every --where flag.
func parseQuals(conds []string) ([]value.Qual, error) {
	quals := make([]value.Qual, 0, len(conds))
	for _, c := range conds {
		q, err := parseQual(c)
		if err != nil {
			return nil, err
		}
		quals = append(quals, q)
	}
	return quals, nil
}

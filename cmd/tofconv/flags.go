package main

import (
	"fmt"
	"strings"

	"github.com/bft-labs/tofconv/pkg/tofconv"
)

// quantityFlag is a pflag.Value holding a "<VALUE> <UNIT>" pair. Both
// tokens are kept as raw text; parsing them is the converter's job.
type quantityFlag struct {
	in tofconv.Input
}

func (q *quantityFlag) String() string {
	if q.in.Value == "" && q.in.Unit == "" {
		return ""
	}
	return q.in.Value + " " + q.in.Unit
}

func (q *quantityFlag) Set(s string) error {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return fmt.Errorf("expected <VALUE> <UNIT>, got %q", s)
	}
	q.in = tofconv.Input{Value: fields[0], Unit: fields[1]}
	return nil
}

func (q *quantityFlag) Type() string { return "quantity" }

// joinPairArgs folds "--flag VALUE UNIT" into "--flag=VALUE UNIT" for every
// flag in pairs, so pflag sees one argument and a negative VALUE is not
// taken for a flag. Arguments after "--" are left alone.
func joinPairArgs(args []string, pairs map[string]bool) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}
		if pairs[a] && i+2 < len(args) {
			out = append(out, a+"="+args[i+1]+" "+args[i+2])
			i += 2
			continue
		}
		out = append(out, a)
	}
	return out
}

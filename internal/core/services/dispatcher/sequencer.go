package dispatcher

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
)

// Segment is one sub-command of a logical chain together with the operator
// that follows it ("" for the last one).
type Segment struct {
	Args []string
	Op   string
}

func isLogicalOperator(tok string) bool {
	return tok == command.OpAnd || tok == command.OpOr
}

// HasLogicalOperator reports whether any token is && or ||.
func HasLogicalOperator(args []string) bool {
	for _, a := range args {
		if isLogicalOperator(a) {
			return true
		}
	}
	return false
}

// Split partitions tokens into sub-commands at every && and ||.
func Split(args []string) []Segment {
	var segments []Segment
	current := []string{}
	for _, a := range args {
		if isLogicalOperator(a) {
			segments = append(segments, Segment{Args: current, Op: a})
			current = []string{}
			continue
		}
		current = append(current, a)
	}
	return append(segments, Segment{Args: current})
}

/*
sequence runs the sub-commands left to right. A sub-command counts as
successful if running it increased the succeeded counter. After a failed
sub-command followed by &&, or a successful one followed by ||, the rest of
the chain is skipped.
*/
func (s *service) sequence(args []string) int {
	total := 0
	for _, seg := range Split(args) {
		n := s.Dispatch(command.Join(seg.Args))
		total += n

		switch {
		case seg.Op == command.OpAnd && n == 0:
			logger.Printf("short-circuit after %q (&&)", command.Join(seg.Args))
			return total
		case seg.Op == command.OpOr && n > 0:
			logger.Printf("short-circuit after %q (||)", command.Join(seg.Args))
			return total
		}
	}
	return total
}

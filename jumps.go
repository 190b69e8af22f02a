package main

// JumpTable maps the index of every [ and ] in a Program to the index of its
// matching bracket. Entries for any other instruction are unused.
type JumpTable []uint

// BuildJumps pairs up the brackets in prog in one pass, returning an
// UnmatchedBracketError for the first bracket that has no partner.
func BuildJumps(prog Program) (JumpTable, error) {
	jumps := make(JumpTable, len(prog))
	var open []uint
	for pc, op := range prog {
		switch op {
		case OpLoop:
			open = append(open, uint(pc))
		case OpEnd:
			i := len(open) - 1
			if i < 0 {
				return nil, UnmatchedBracketError{uint(pc), OpEnd}
			}
			start := open[i]
			open = open[:i]
			jumps[start] = uint(pc)
			jumps[pc] = start
		}
	}
	if len(open) > 0 {
		// the outermost unclosed loop comes first in the program
		return nil, UnmatchedBracketError{open[0], OpLoop}
	}
	return jumps, nil
}

package shell

import "github.com/josephlewis42/lsh/core/logger"

// Execute resolves one token sequence to a builtin or an external
// program and runs it. An empty sequence is a no-op that continues the
// loop; builtins are consulted before the search for a program.
func (s *Shell) Execute(tokens []string) Signal {
	if len(tokens) == 0 {
		return Continue
	}

	if builtin, ok := s.builtins.Lookup(tokens[0]); ok {
		s.logEvent(logger.EventBuiltin, tokens, nil)
		return builtin.Main(s, tokens)
	}

	return s.Launch(tokens)
}

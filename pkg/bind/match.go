// match.go - the Flag Matcher.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

// VariadicStop is the sentinel [*Option] value [MatchFlag] returns
// when the token is the stand-alone "--" variadic-stop marker rather
// than any registered flag.
var VariadicStop = &Option{Name: "--"}

// MatchFlag reports which registered flagged option, if any, token
// names. It returns [VariadicStop] for the literal token "--", and nil
// if token matches no flag.
func MatchFlag(options []*Option, token string) *Option {
	if token == "--" {
		return VariadicStop
	}
	for _, opt := range options {
		if opt.Unflagged {
			continue
		}
		if opt.HasShort() && token == "-"+opt.Short {
			return opt
		}
		if opt.HasLong() && token == "--"+opt.Long {
			return opt
		}
	}
	return nil
}

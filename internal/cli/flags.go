package cli

import "ktr/internal/config"

// Flags holds command-line flags before they are folded into config.
type Flags struct {
	Number  int
	Range   []int
	Mode    int
	Workers int
}

// ToConfigFlags converts CLI flags to config flags.
func (f *Flags) ToConfigFlags() config.Flags {
	cf := config.Flags{
		Number:  f.Number,
		Mode:    f.Mode,
		Workers: f.Workers,
	}
	if len(f.Range) == 2 {
		cf.HasRange = true
		cf.RangeStart = f.Range[0]
		cf.RangeEnd = f.Range[1]
	}
	return cf
}

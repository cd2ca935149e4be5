package river

// NullProgramMessage is what running the empty program prints.
const NullProgramMessage = "In Homespring, the null program is not a quine."

// Program is either the empty program or a river parsed from source.
type Program struct {
	river *River
}

// EmptyProgram is the program with no nodes at all.
func EmptyProgram() *Program {
	return &Program{}
}

func NewProgram(r *River) *Program {
	return &Program{river: r}
}

// IsEmpty reports whether this is the empty program.
func (p *Program) IsEmpty() bool {
	return p.river == nil
}

// River returns the parsed river; ok is false for the empty program.
func (p *Program) River() (r *River, ok bool) {
	return p.river, p.river != nil
}
